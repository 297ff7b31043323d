package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Matches "tomorrow" and the misspellings users actually type.
var tomorrowPattern = regexp.MustCompile(`(?i)\b(tomor+ow|tomm?or?ow|tmrw)\b`)

var todayPattern = regexp.MustCompile(`(?i)\btoday\b`)

var inDurationPattern = regexp.MustCompile(`\bin (\d+) (day|days|week|weeks|month|months)\b`)

var weekdayPatterns = map[*regexp.Regexp]time.Weekday{
	regexp.MustCompile(`\bmonday\b`):    time.Monday,
	regexp.MustCompile(`\btuesday\b`):   time.Tuesday,
	regexp.MustCompile(`\bwednesday\b`): time.Wednesday,
	regexp.MustCompile(`\bthursday\b`):  time.Thursday,
	regexp.MustCompile(`\bfriday\b`):    time.Friday,
	regexp.MustCompile(`\bsaturday\b`):  time.Saturday,
	regexp.MustCompile(`\bsunday\b`):    time.Sunday,
}

// Parser resolves natural-language date references against a timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a date parser for the given IANA timezone string,
// e.g. "Europe/Berlin".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// MentionsTomorrow reports whether the text contains a tomorrow-like token,
// including common misspellings.
func MentionsTomorrow(text string) bool {
	return tomorrowPattern.MatchString(text)
}

// MentionsToday reports whether the text contains a "today" token.
func MentionsToday(text string) bool {
	return todayPattern.MatchString(text)
}

// InferDue extracts a due time from free text, using baseTime as "now".
// Returns nil when the text carries no recognizable date reference.
//
// "tomorrow" (and misspellings) resolves to midnight at the start of the next
// calendar day; "today" resolves to baseTime itself. "in N days/weeks/months"
// and weekday names resolve to the start of the target day.
func (p *Parser) InferDue(text string, baseTime time.Time) *time.Time {
	lower := strings.ToLower(text)

	if MentionsTomorrow(lower) {
		t := p.StartOfDay(baseTime.AddDate(0, 0, 1))
		return &t
	}
	if MentionsToday(lower) {
		t := baseTime.In(p.location)
		return &t
	}

	if matches := inDurationPattern.FindStringSubmatch(lower); len(matches) == 3 {
		amount, _ := strconv.Atoi(matches[1])
		var t time.Time
		switch {
		case strings.HasPrefix(matches[2], "day"):
			t = p.StartOfDay(baseTime.AddDate(0, 0, amount))
		case strings.HasPrefix(matches[2], "week"):
			t = p.StartOfDay(baseTime.AddDate(0, 0, amount*7))
		default:
			t = p.StartOfDay(baseTime.AddDate(0, amount, 0))
		}
		return &t
	}

	for pattern, target := range weekdayPatterns {
		if !pattern.MatchString(lower) {
			continue
		}
		daysUntil := int(target - baseTime.In(p.location).Weekday())
		if daysUntil <= 0 {
			daysUntil += 7
		}
		t := p.StartOfDay(baseTime.AddDate(0, 0, daysUntil))
		return &t
	}

	return nil
}

// StartOfDay returns midnight at the start of the given day in the parser's
// timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// SameDay reports whether two times fall on the same calendar day in the
// parser's timezone.
func (p *Parser) SameDay(a, b time.Time) bool {
	a, b = a.In(p.location), b.In(p.location)
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// MockSigner issues and verifies development session tokens. A token is
// base64url("<userID>:<unix-ms>:<hex hmac-sha256 of userID:unix-ms>"), so it
// stays valid across server restarts.
type MockSigner struct {
	secret []byte
	now    func() time.Time
}

func NewMockSigner(secret string) *MockSigner {
	return &MockSigner{secret: []byte(secret), now: time.Now}
}

// Sign creates a session token for the given user.
func (s *MockSigner) Sign(userID string) string {
	payload := fmt.Sprintf("%s:%d", userID, s.now().UnixMilli())
	return base64.RawURLEncoding.EncodeToString([]byte(payload + ":" + s.sign(payload)))
}

// Verify satisfies Verifier. Mock sessions carry no email claim; callers
// derive one from the user ID when needed.
func (s *MockSigner) Verify(raw string) (*Claims, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	parts := strings.Split(string(decoded), ":")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: malformed session", ErrInvalidToken)
	}
	payload := parts[0] + ":" + parts[1]
	if !hmac.Equal([]byte(parts[2]), []byte(s.sign(payload))) {
		return nil, fmt.Errorf("%w: bad signature", ErrInvalidToken)
	}
	return &Claims{UserID: parts[0]}, nil
}

func (s *MockSigner) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

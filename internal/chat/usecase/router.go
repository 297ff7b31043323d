package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"taskflow-server/internal/chat"
	"taskflow-server/internal/command"
	"taskflow-server/internal/model"
	"taskflow-server/internal/session"
	"taskflow-server/pkg/llm"
)

var (
	weatherPattern    = regexp.MustCompile(`(?i)\bweather\b`)
	taskIntentPattern = regexp.MustCompile(`(?i)\b(task|tasks|todo|list|add|remove|delete|complete|schedule)\b`)
	locationPattern   = regexp.MustCompile(`(?i)\b(in|at|of|for)\s+[A-Za-z]`)
)

func (uc *implUseCase) Command(ctx context.Context, sc model.Scope, input chat.CommandInput) (*chat.CommandOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, chat.ErrMissingText
	}
	toolID := input.ToolID
	if toolID == "" {
		toolID = llm.ToolOpenAI
	}

	// A weather question with no task intent never reaches the parser.
	if weatherPattern.MatchString(text) && !taskIntentPattern.MatchString(text) {
		if !locationPattern.MatchString(text) {
			uc.store.SetPendingGeneral(sc.UserID, &session.PendingGeneral{
				Kind:     "weather",
				Question: text,
			})
			return &chat.CommandOutput{Message: MsgWhichLocation}, nil
		}
		provider, err := uc.resolveProvider(ctx, sc.UserID, toolID)
		if err != nil {
			return nil, err
		}
		reply, err := provider.GeneralChat(ctx, text)
		if err != nil {
			return nil, err
		}
		return &chat.CommandOutput{Message: reply}, nil
	}

	// A parked general question consumes this message as its answer.
	if pending := uc.store.GetPendingGeneral(sc.UserID); pending != nil {
		uc.store.ClearPendingGeneral(sc.UserID)
		provider, err := uc.resolveProvider(ctx, sc.UserID, toolID)
		if err != nil {
			return nil, err
		}
		reply, err := provider.GeneralChat(ctx, pending.Question+" in "+text)
		if err != nil {
			return nil, err
		}
		return &chat.CommandOutput{Message: reply}, nil
	}

	// An open add flow intercepts everything until committed or abandoned.
	if pending := uc.store.GetPendingAdd(sc.UserID); pending != nil {
		out, abandoned, err := uc.continuePendingAdd(ctx, sc, pending, text)
		if err != nil {
			return nil, err
		}
		if !abandoned {
			return out, nil
		}
		// Google disconnected mid-flow; the text falls through as a
		// fresh command.
	}

	provider, err := uc.resolveProvider(ctx, sc.UserID, toolID)
	if err != nil {
		return nil, err
	}

	cmd, parseErr := command.ParseWithTool(ctx, provider, text)
	if parseErr != nil {
		switch command.KindOf(parseErr) {
		case command.KindProviderFailure:
			if taskIntentPattern.MatchString(text) {
				uc.l.Warnf(ctx, "chat.Command: provider %s failed, using naive parse: %v", provider.Name(), parseErr)
				cmd = command.NaiveParse(text)
			} else {
				return uc.chatFallback(ctx, provider, text)
			}
		case command.KindSchemaInvalid:
			// The provider answered, just not with a command. Treat the
			// text as conversation.
			return uc.chatFallback(ctx, provider, text)
		default:
			return nil, parseErr
		}
	}

	command.ApplyOverrides(cmd, text)
	if err := command.ApplyAddDefaults(cmd, text, uc.dm, uc.now()); err != nil {
		return nil, err
	}

	return uc.execute(ctx, sc, cmd, text, provider)
}

func (uc *implUseCase) chatFallback(ctx context.Context, provider llm.Provider, text string) (*chat.CommandOutput, error) {
	reply, err := provider.GeneralChat(ctx, text)
	if err != nil {
		return nil, err
	}
	return &chat.CommandOutput{Message: reply}, nil
}

// resolveProvider builds the adapter for toolID using the user's stored
// key. The process-level env key stands in for OpenAI only.
func (uc *implUseCase) resolveProvider(ctx context.Context, userID, toolID string) (llm.Provider, error) {
	if !llm.KnownTool(toolID) {
		return nil, fmt.Errorf("%w: %q", llm.ErrUnknownTool, toolID)
	}
	key, err := uc.credUC.GetAPIKey(ctx, userID, toolID)
	if err != nil {
		return nil, err
	}
	if key == "" && toolID == llm.ToolOpenAI {
		key = uc.openAIFallbackKey
	}
	if key == "" {
		return nil, &chat.KeyMissingError{Provider: toolID}
	}
	return uc.newProvider(toolID, key)
}

func (uc *implUseCase) TestKey(ctx context.Context, sc model.Scope, toolID string) error {
	if toolID == "" {
		toolID = llm.ToolOpenAI
	}
	provider, err := uc.resolveProvider(ctx, sc.UserID, toolID)
	if err != nil {
		return err
	}
	_, err = command.ParseWithTool(ctx, provider, "add test task tomorrow")
	return err
}

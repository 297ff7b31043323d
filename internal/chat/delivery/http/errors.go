package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"taskflow-server/internal/chat"
	"taskflow-server/internal/command"
	"taskflow-server/internal/tasks"
	"taskflow-server/pkg/llm"
	"taskflow-server/pkg/response"
)

// respondError translates use-case errors into the wire envelope. Client
// mistakes get 400, upstream (LLM vendor or Google) failures get 502, and
// anything unrecognized is a 500 without detail.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrMissingText),
		errors.Is(err, chat.ErrGoogleNotConnected),
		errors.Is(err, chat.ErrTaskIDRequired),
		errors.Is(err, chat.ErrDueRequired),
		errors.Is(err, command.ErrNoTitle),
		errors.Is(err, llm.ErrUnknownTool),
		errors.Is(err, tasks.ErrTaskNotFound),
		errors.Is(err, tasks.ErrListNotFound),
		errors.Is(err, tasks.ErrEmptyTitle):
		response.BadRequest(c, err)

	case errors.Is(err, tasks.ErrGoogleUpstream):
		response.BadGateway(c, err)

	default:
		var keyErr *chat.KeyMissingError
		if errors.As(err, &keyErr) {
			response.BadRequest(c, keyErr)
			return
		}
		var provErr *llm.ProviderError
		if errors.As(err, &provErr) {
			response.BadGateway(c, provErr)
			return
		}
		h.l.Errorf(c.Request.Context(), "chat.http: unhandled error: %v", err)
		response.InternalError(c)
	}
}

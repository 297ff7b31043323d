package http

import (
	"github.com/gin-gonic/gin"

	"taskflow-server/internal/chat"
)

// processCommandReq binds the command body. An unreadable or empty body is
// treated as missing text so the client sees the canonical message.
func (h *handler) processCommandReq(c *gin.Context) (commandReq, error) {
	var req commandReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, chat.ErrMissingText
	}
	return req, nil
}

func (h *handler) processSaveKeyReq(c *gin.Context) (saveKeyReq, error) {
	var req saveKeyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processTestKeyReq(c *gin.Context) (testKeyReq, error) {
	var req testKeyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		// Body is optional; default tool is decided by the use case.
		return testKeyReq{}, nil
	}
	return req, nil
}

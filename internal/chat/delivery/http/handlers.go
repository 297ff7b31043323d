package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"taskflow-server/internal/middleware"
	"taskflow-server/pkg/llm"
	"taskflow-server/pkg/response"
)

// Command godoc
// @Summary     Interpret a natural-language command
// @Description Parses free text with the selected LLM provider and executes the resulting task command.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body commandReq true "User message"
// @Success     200 {object} chat.CommandOutput
// @Failure     400 {object} response.ErrResp "Bad Request"
// @Failure     401 {object} response.ErrResp "Unauthorized"
// @Failure     502 {object} response.ErrResp "Upstream provider error"
// @Router      /ai/command [POST]
func (h *handler) Command(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processCommandReq(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	output, err := h.uc.Command(ctx, sc, req.toInput())
	if err != nil {
		h.l.Debugf(ctx, "uc.Command: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, output)
}

// Tools godoc
// @Summary     List available LLM providers
// @Tags        AI
// @Produce     json
// @Success     200 {array} llm.ToolInfo
// @Failure     401 {object} response.ErrResp "Unauthorized"
// @Router      /ai/tools [GET]
func (h *handler) Tools(c *gin.Context) {
	response.OK(c, llm.Tools())
}

// ListKeys godoc
// @Summary     List providers with a stored API key
// @Tags        AI
// @Produce     json
// @Success     200 {object} keysResp
// @Failure     401 {object} response.ErrResp "Unauthorized"
// @Router      /ai/keys [GET]
func (h *handler) ListKeys(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	providers, err := h.credUC.ListProviders(ctx, sc.UserID)
	if err != nil {
		h.l.Errorf(ctx, "credUC.ListProviders: %v", err)
		response.InternalError(c)
		return
	}
	if providers == nil {
		providers = []string{}
	}

	response.OK(c, keysResp{Providers: providers})
}

// SaveKey godoc
// @Summary     Store an API key for an LLM provider
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body saveKeyReq true "Provider and key"
// @Success     200 {object} okResp
// @Failure     400 {object} response.ErrResp "Bad Request"
// @Failure     401 {object} response.ErrResp "Unauthorized"
// @Router      /ai/keys [POST]
func (h *handler) SaveKey(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processSaveKeyReq(c)
	if err != nil {
		response.BadRequest(c, fmt.Errorf("toolId and apiKey are required"))
		return
	}
	if !llm.KnownTool(req.ToolID) {
		h.respondError(c, fmt.Errorf("%w: %q", llm.ErrUnknownTool, req.ToolID))
		return
	}

	if err := h.credUC.SaveAPIKey(ctx, sc.UserID, req.ToolID, req.APIKey); err != nil {
		h.l.Errorf(ctx, "credUC.SaveAPIKey: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, okResp{OK: true})
}

// DeleteKey godoc
// @Summary     Delete a stored provider API key
// @Tags        AI
// @Produce     json
// @Param       toolId query string true "Provider id"
// @Success     200 {object} okResp
// @Failure     400 {object} response.ErrResp "Bad Request"
// @Failure     401 {object} response.ErrResp "Unauthorized"
// @Router      /ai/keys [DELETE]
func (h *handler) DeleteKey(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	toolID := c.Query("toolId")
	if toolID == "" {
		response.BadRequest(c, fmt.Errorf("toolId is required"))
		return
	}

	if err := h.credUC.DeleteAPIKey(ctx, sc.UserID, toolID); err != nil {
		h.l.Errorf(ctx, "credUC.DeleteAPIKey: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, okResp{OK: true})
}

// TestKey godoc
// @Summary     Validate a stored provider key
// @Description Issues a canned parse against the provider to confirm the key works.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body testKeyReq false "Tool to test (defaults to openai)"
// @Success     200 {object} okResp
// @Failure     400 {object} response.ErrResp "Bad Request"
// @Failure     401 {object} response.ErrResp "Unauthorized"
// @Failure     502 {object} response.ErrResp "Upstream provider error"
// @Router      /ai/test [POST]
func (h *handler) TestKey(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, _ := h.processTestKeyReq(c)

	if err := h.uc.TestKey(ctx, sc, req.ToolID); err != nil {
		h.l.Debugf(ctx, "uc.TestKey: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, okResp{OK: true})
}

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskflow-server/internal/auth"
	"taskflow-server/internal/middleware"
	"taskflow-server/pkg/response"
)

type authURLResp struct {
	AuthURL string `json:"authUrl"`
}

type statusResp struct {
	Connected bool `json:"connected"`
}

type debugResp struct {
	Mode   string `json:"mode,omitempty"`
	OK     bool   `json:"ok"`
	UserID string `json:"userId,omitempty"`
	Email  string `json:"email,omitempty"`
	Error  string `json:"error,omitempty"`
}

// StartGoogle godoc
// @Summary     Begin the Google OAuth consent flow
// @Tags        Auth
// @Produce     json
// @Success     200 {object} authURLResp
// @Failure     400 {object} response.ErrResp "OAuth not configured"
// @Failure     401 {object} response.ErrResp "Unauthorized"
// @Router      /auth/google/start [POST]
func (h *handler) StartGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	authURL, err := h.uc.StartGoogleAuth(ctx, sc)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	response.OK(c, authURLResp{AuthURL: authURL})
}

// GoogleCallback godoc
// @Summary     Google OAuth redirect target
// @Description Exchanges the authorization code and redirects back to the web app.
// @Tags        Auth
// @Param       code  query string true "Authorization code"
// @Param       state query string true "Flow state"
// @Success     302
// @Failure     400 {object} response.ErrResp "Bad Request"
// @Router      /auth/google/callback [GET]
func (h *handler) GoogleCallback(c *gin.Context) {
	ctx := c.Request.Context()

	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		response.BadRequest(c, fmt.Errorf("Missing code or state"))
		return
	}

	redirect, err := h.uc.CompleteGoogleAuth(ctx, code, state)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidState) || errors.Is(err, auth.ErrExchangeFailed) {
			response.BadRequest(c, err)
			return
		}
		h.l.Errorf(ctx, "uc.CompleteGoogleAuth: %v", err)
		response.InternalError(c)
		return
	}

	c.Redirect(http.StatusFound, redirect)
}

// MockLogin godoc
// @Summary     Development login
// @Description In mock-auth mode returns a signed session for the demo user.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Success     200 {object} auth.LoginOutput
// @Failure     400 {object} response.ErrResp "Bad Request"
// @Router      /auth/google/callback [POST]
func (h *handler) MockLogin(c *gin.Context) {
	ctx := c.Request.Context()

	if h.mockMode {
		out, err := h.uc.MockLogin(ctx)
		if err != nil {
			response.BadRequest(c, err)
			return
		}
		response.OK(c, out)
		return
	}

	var body struct {
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Code == "" {
		response.BadRequest(c, fmt.Errorf("Missing code"))
		return
	}
	response.BadRequest(c, auth.ErrMockOnly)
}

// Me godoc
// @Summary     Current user
// @Tags        Auth
// @Produce     json
// @Success     200 {object} model.User
// @Failure     401 {object} response.ErrResp "Unauthorized"
// @Router      /me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	user, err := h.uc.Me(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Me: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, user)
}

// GoogleStatus godoc
// @Summary     Whether Google Tasks is connected
// @Tags        Auth
// @Produce     json
// @Success     200 {object} statusResp
// @Failure     401 {object} response.ErrResp "Unauthorized"
// @Router      /google/status [GET]
func (h *handler) GoogleStatus(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	connected, err := h.credUC.GoogleConnected(ctx, sc.UserID)
	if err != nil {
		h.l.Errorf(ctx, "credUC.GoogleConnected: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, statusResp{Connected: connected})
}

// Debug godoc
// @Summary     Token verification diagnostics
// @Tags        Auth
// @Produce     json
// @Success     200 {object} debugResp
// @Failure     401 {object} debugResp
// @Router      /auth/debug [GET]
func (h *handler) Debug(c *gin.Context) {
	raw := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
	if raw == "" {
		c.JSON(http.StatusUnauthorized, response.ErrResp{Error: "Missing bearer token"})
		return
	}

	mode := "supabase"
	if h.mockMode {
		mode = "mock"
	}

	claims, err := h.verifier.Verify(raw)
	if err != nil {
		c.JSON(http.StatusUnauthorized, debugResp{Mode: mode, OK: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, debugResp{Mode: mode, OK: true, UserID: claims.UserID, Email: claims.Email})
}

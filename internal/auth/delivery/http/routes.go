package http

import (
	"github.com/gin-gonic/gin"

	"taskflow-server/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The GET
// callback and the mock login POST are unauthenticated: the browser lands
// on them without a bearer token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/auth/google/start", mw.Auth(), h.StartGoogle)
	rg.GET("/auth/google/callback", h.GoogleCallback)
	rg.POST("/auth/google/callback", h.MockLogin)
	rg.GET("/auth/debug", h.Debug)
	rg.GET("/me", mw.Auth(), h.Me)
	rg.GET("/google/status", mw.Auth(), h.GoogleStatus)
}

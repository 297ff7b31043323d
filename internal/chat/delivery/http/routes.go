package http

import (
	"github.com/gin-gonic/gin"

	"taskflow-server/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	ai := rg.Group("/ai")
	{
		ai.POST("/command", mw.Auth(), h.Command)
		ai.GET("/tools", mw.Auth(), h.Tools)
		ai.GET("/keys", mw.Auth(), h.ListKeys)
		ai.POST("/keys", mw.Auth(), h.SaveKey)
		ai.DELETE("/keys", mw.Auth(), h.DeleteKey)
		ai.POST("/test", mw.Auth(), h.TestKey)
	}
}

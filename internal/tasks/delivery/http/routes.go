package http

import (
	"github.com/gin-gonic/gin"

	"taskflow-server/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/tasklists", mw.Auth(), h.Lists)
	rg.GET("/tasklists/:id/tasks", mw.Auth(), h.ListTasks)
	rg.POST("/tasks", mw.Auth(), h.Create)
	rg.PATCH("/tasks/:id", mw.Auth(), h.Update)
	rg.DELETE("/tasks/:id", mw.Auth(), h.Delete)
	rg.GET("/availability/now", mw.Auth(), h.AvailabilityNow)
}

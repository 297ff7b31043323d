package httpserver

import (
	"github.com/gin-gonic/gin"

	"taskflow-server/pkg/response"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{"status": "ok"})
}

// statusCheck reports which integrations are configured.
// @Summary Service Status
// @Description Reports database, Google OAuth, and Supabase configuration state
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Configuration status"
// @Router /status [get]
func (srv *HTTPServer) statusCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"server": "ok",
		"db": gin.H{
			"configured": srv.dbConfigured,
		},
		"google": gin.H{
			"clientIdConfigured": srv.googleConfigured,
		},
		"auth": gin.H{
			"supabaseConfigured": srv.supabaseConfigured,
		},
	})
}

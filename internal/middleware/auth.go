package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"taskflow-server/internal/model"
	"taskflow-server/pkg/response"
)

const scopeKey = "x-taskflow-scope"

// Auth requires a Bearer token and puts the verified identity into the gin
// context. Rejected requests get 401 {"error": "Unauthorized"}.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
		if raw == "" {
			response.Unauthorized(c, "Unauthorized")
			return
		}

		claims, err := m.verifier.Verify(raw)
		if err != nil {
			m.l.Debugf(c.Request.Context(), "auth: verify token: %v", err)
			response.Unauthorized(c, "Unauthorized")
			return
		}

		c.Set(scopeKey, model.Scope{UserID: claims.UserID, Email: claims.Email})
		c.Next()
	}
}

// GetScope returns the identity set by Auth. The second result is false on
// routes that skipped the middleware.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}

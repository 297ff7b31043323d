package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"taskflow-server/pkg/response"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit caps requests per client IP. Idle limiters are dropped after a
// few minutes to keep the map bounded.
func (m Middleware) RateLimit() gin.HandlerFunc {
	perMin := m.rateLimitPerMin
	if perMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	var (
		mu      sync.Mutex
		clients = make(map[string]*clientLimiter)
	)

	const idleTTL = 5 * time.Minute

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		cl, ok := clients[ip]
		if !ok {
			cl = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(float64(perMin)/60), perMin)}
			clients[ip] = cl
		}
		cl.lastSeen = now
		for key, other := range clients {
			if now.Sub(other.lastSeen) > idleTTL {
				delete(clients, key)
			}
		}
		allowed := cl.limiter.Allow()
		mu.Unlock()

		if !allowed {
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

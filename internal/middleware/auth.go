package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"crm-admin-gateway/pkg/response"
)

// Auth checks the bearer token against the configured gateway API token.
// When no token is configured the gateway runs open (local development).
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.cfg.APIToken == "" {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token != m.cfg.APIToken {
			m.l.Warnf(c.Request.Context(), "middleware.Auth rejected request to %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

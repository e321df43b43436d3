package http

import (
	"github.com/gin-gonic/gin"

	"crm-admin-gateway/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/tasks", mw.Auth(), h.Board)
	}
}

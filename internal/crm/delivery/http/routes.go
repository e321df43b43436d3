package http

import (
	"github.com/gin-gonic/gin"

	"crm-admin-gateway/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are protected by the Auth middleware by convention.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	crm := rg.Group("/crm")
	{
		crm.GET("", mw.Auth(), h.Sets)

		sets := crm.Group("/:set")
		{
			sets.GET("", mw.Auth(), h.List)
			sets.POST("", mw.Auth(), h.Create)
			sets.POST("/search", mw.Auth(), h.Search)
			sets.GET("/:id", mw.Auth(), h.Detail)
			sets.PATCH("/:id", mw.Auth(), h.Update)
			sets.DELETE("/:id", mw.Auth(), h.Delete)
		}
	}
}

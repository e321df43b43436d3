package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"crm-admin-gateway/internal/middleware"
	tbHTTP "crm-admin-gateway/internal/taskboard/delivery/http"
	tbUC "crm-admin-gateway/internal/taskboard/usecase"
)

// setupTaskboardDomain initializes the task dashboard domain and registers
// its routes.
func (srv HTTPServer) setupTaskboardDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. UseCase
	uc := tbUC.New(srv.repo, srv.l)

	// 2. HTTP Handler
	h := tbHTTP.New(srv.l, uc)

	// 3. Routes: registers /api/v1/dashboard/tasks
	tbHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Taskboard domain registered")
	return nil
}

package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	crmHTTP "crm-admin-gateway/internal/crm/delivery/http"
	crmUC "crm-admin-gateway/internal/crm/usecase"
	"crm-admin-gateway/internal/middleware"
)

// setupCRMDomain initializes the entity-set administration domain and
// registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(srv.repo, srv.l)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupCRMDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. UseCase
	uc := crmUC.New(srv.repo, srv.l)

	// 2. HTTP Handler
	h := crmHTTP.New(srv.l, uc, crmHTTP.Config{
		DefaultPageSize: srv.gateway.DefaultPageSize,
		MaxPageSize:     srv.gateway.MaxPageSize,
	})

	// 3. Routes: registers /api/v1/crm/:set
	crmHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "CRM domain registered")
	return nil
}

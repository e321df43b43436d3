package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"crm-admin-gateway/config"
	"crm-admin-gateway/internal/crm/repository"
	"crm-admin-gateway/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Backend repository shared by all domains
	repo repository.Repository

	// Gateway surface settings (auth token, limits, page sizes)
	gateway config.GatewayConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Repo    repository.Repository
	Gateway config.GatewayConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		repo:        cfg.Repo,
		gateway:     cfg.Gateway,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.repo == nil {
		return errors.New("repository is required")
	}
	return nil
}

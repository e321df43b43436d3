package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"crm-admin-gateway/config"
	_ "crm-admin-gateway/docs" // Swagger docs
	odataRepo "crm-admin-gateway/internal/crm/repository/odata"
	"crm-admin-gateway/internal/httpserver"
	"crm-admin-gateway/pkg/log"
)

// @title       CRM Admin Gateway API
// @description Administration console backend for an OData CRM: entity-set CRUD, saved list screens, and a due-date task dashboard.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting CRM Admin Gateway...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Backend: %s (auth: %s)", cfg.Backend.BaseURL, cfg.Backend.AuthMode)

	// 3. Backend client
	clientCfg := odataRepo.ClientConfig{
		BaseURL:     cfg.Backend.BaseURL,
		AccessToken: cfg.Backend.AccessToken,
		Timeout:     time.Duration(cfg.Backend.TimeoutSeconds) * time.Second,
	}
	if cfg.Backend.AuthMode == "oauth2" {
		clientCfg.AccessToken = ""
		clientCfg.OAuth = &clientcredentials.Config{
			ClientID:     cfg.Backend.OAuth2.ClientID,
			ClientSecret: cfg.Backend.OAuth2.ClientSecret,
			TokenURL:     cfg.Backend.OAuth2.TokenURL,
			Scopes:       cfg.Backend.OAuth2.Scopes,
		}
	}
	client := odataRepo.NewClient(clientCfg)

	// 4. Repository (with list cache)
	repo := odataRepo.New(
		client,
		logger,
		cfg.Cache.Size,
		time.Duration(cfg.Cache.ListTTLSec)*time.Second,
	)

	// 5. HTTP server — domains are wired inside mapHandlers
	srv, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Repo:        repo,
		Gateway:     cfg.Gateway,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create HTTP server: %v", err)
		return
	}

	if err := srv.Run(ctx); err != nil {
		logger.Fatalf(ctx, "HTTP server stopped: %v", err)
	}

	logger.Info(context.Background(), "Shutdown complete")
}

package http

import (
	"time"

	"crm-admin-gateway/internal/crm"
	"crm-admin-gateway/pkg/debounce"
	"crm-admin-gateway/pkg/log"
)

// Config holds delivery-layer tunables.
type Config struct {
	DefaultPageSize int
	MaxPageSize     int
	DebounceWindow  time.Duration
}

type handler struct {
	l  log.Logger
	uc crm.UseCase

	defaultPageSize int
	maxPageSize     int

	// Per-console-session pagers and search debouncers.
	sessions *sessionRegistry
}

// New creates a new HTTP handler for the crm domain.
func New(l log.Logger, uc crm.UseCase, cfg Config) *handler {
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 20
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = 100
	}
	if cfg.DebounceWindow <= 0 {
		cfg.DebounceWindow = debounce.DefaultWindow
	}

	return &handler{
		l:               l,
		uc:              uc,
		defaultPageSize: cfg.DefaultPageSize,
		maxPageSize:     cfg.MaxPageSize,
		sessions:        newSessionRegistry(cfg.DebounceWindow),
	}
}

package http

import (
	"crm-admin-gateway/internal/taskboard"
	"crm-admin-gateway/pkg/log"
)

type handler struct {
	l  log.Logger
	uc taskboard.UseCase
}

// New creates a new HTTP handler for the task dashboard.
func New(l log.Logger, uc taskboard.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

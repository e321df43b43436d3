package middleware

import (
	"crm-admin-gateway/config"
	"crm-admin-gateway/pkg/log"
)

type Middleware struct {
	l   log.Logger
	cfg config.GatewayConfig
}

func New(l log.Logger, cfg config.GatewayConfig) Middleware {
	return Middleware{
		l:   l,
		cfg: cfg,
	}
}

package usecase

import (
	"crm-admin-gateway/internal/crm/repository"
	"crm-admin-gateway/pkg/log"
)

// implUseCase is the private implementation of crm.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new crm UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}

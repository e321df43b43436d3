package usecase

import (
	"time"

	"crm-admin-gateway/internal/crm/repository"
	"crm-admin-gateway/pkg/log"
)

// implUseCase is the private implementation of taskboard.UseCase.
type implUseCase struct {
	tasks repository.TaskRepository
	l     log.Logger
	now   func() time.Time
}

// New creates a new taskboard UseCase implementation.
func New(tasks repository.TaskRepository, l log.Logger) *implUseCase {
	return &implUseCase{
		tasks: tasks,
		l:     l,
		now:   time.Now,
	}
}

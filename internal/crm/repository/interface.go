package repository

import (
	"context"

	"crm-admin-gateway/internal/crm"
	"crm-admin-gateway/internal/model"
)

// Repository is the composed interface for the CRM backend data store.
type Repository interface {
	EntityRepository
	TaskRepository
}

// EntityRepository defines generic data access for any entity set.
type EntityRepository interface {
	ListEntities(ctx context.Context, opt ListEntitiesOptions) ([]crm.Record, int, error)
	GetEntity(ctx context.Context, set model.EntitySet, id string) (crm.Record, error)
	CreateEntity(ctx context.Context, set model.EntitySet, payload crm.Record) (crm.Record, error)
	UpdateEntity(ctx context.Context, set model.EntitySet, id string, payload crm.Record) (crm.Record, error)
	DeleteEntity(ctx context.Context, set model.EntitySet, id string) error
}

// TaskRepository defines the typed access the dashboard needs.
type TaskRepository interface {
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
}

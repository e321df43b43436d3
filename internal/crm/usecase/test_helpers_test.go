package usecase_test

import (
	"context"
	"errors"

	"crm-admin-gateway/internal/crm"
	"crm-admin-gateway/internal/crm/repository"
	"crm-admin-gateway/internal/model"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Info(ctx context.Context, args ...any)                  {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Error(ctx context.Context, args ...any)                 {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                 {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any) {}

// mockRepo implements repository.Repository with overridable functions.
type mockRepo struct {
	listFunc      func(opt repository.ListEntitiesOptions) ([]crm.Record, int, error)
	getFunc       func(set model.EntitySet, id string) (crm.Record, error)
	createFunc    func(set model.EntitySet, payload crm.Record) (crm.Record, error)
	updateFunc    func(set model.EntitySet, id string, payload crm.Record) (crm.Record, error)
	deleteFunc    func(set model.EntitySet, id string) error
	listTasksFunc func(opt repository.ListTasksOptions) ([]model.Task, error)
}

func (m *mockRepo) ListEntities(ctx context.Context, opt repository.ListEntitiesOptions) ([]crm.Record, int, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, 0, nil
}

func (m *mockRepo) GetEntity(ctx context.Context, set model.EntitySet, id string) (crm.Record, error) {
	if m.getFunc != nil {
		return m.getFunc(set, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepo) CreateEntity(ctx context.Context, set model.EntitySet, payload crm.Record) (crm.Record, error) {
	if m.createFunc != nil {
		return m.createFunc(set, payload)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepo) UpdateEntity(ctx context.Context, set model.EntitySet, id string, payload crm.Record) (crm.Record, error) {
	if m.updateFunc != nil {
		return m.updateFunc(set, id, payload)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepo) DeleteEntity(ctx context.Context, set model.EntitySet, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(set, id)
	}
	return errors.New("not implemented")
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	if m.listTasksFunc != nil {
		return m.listTasksFunc(opt)
	}
	return nil, nil
}

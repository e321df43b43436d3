package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"crm-admin-gateway/internal/crm/repository"
	"crm-admin-gateway/internal/model"
	"crm-admin-gateway/internal/taskboard"
	"crm-admin-gateway/internal/taskboard/usecase"
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

type mockTaskRepo struct {
	listTasksFunc func(opt repository.ListTasksOptions) ([]model.Task, error)
}

func (m *mockTaskRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	return m.listTasksFunc(opt)
}

func TestBoard(t *testing.T) {
	day := func(offset int) string {
		return time.Now().AddDate(0, 0, offset).Format("2006-01-02")
	}

	fixture := []model.Task{
		{ID: "late", DueDate: day(-1)},
		{ID: "soon", DueDate: day(1)},
		{ID: "later", DueDate: day(30)},
		{ID: "done", Status: model.TaskStatusCompleted},
	}

	t.Run("Full Board", func(t *testing.T) {
		repo := &mockTaskRepo{
			listTasksFunc: func(opt repository.ListTasksOptions) ([]model.Task, error) {
				return fixture, nil
			},
		}
		uc := usecase.New(repo, mockLogger{})

		out, err := uc.Board(context.Background(), taskboard.BoardInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Total != 4 {
			t.Errorf("expected total 4, got %d", out.Total)
		}
		if len(out.Buckets.Overdue) != 1 || out.Buckets.Overdue[0].ID != "late" {
			t.Errorf("unexpected overdue bucket: %+v", out.Buckets.Overdue)
		}
		if len(out.Buckets.DueSoon) != 1 || out.Buckets.DueSoon[0].ID != "soon" {
			t.Errorf("unexpected dueSoon bucket: %+v", out.Buckets.DueSoon)
		}
		if out.Tasks != nil {
			t.Error("no bucket requested, Tasks should be nil")
		}
	})

	t.Run("Single Bucket Selection", func(t *testing.T) {
		repo := &mockTaskRepo{
			listTasksFunc: func(opt repository.ListTasksOptions) ([]model.Task, error) {
				return fixture, nil
			},
		}
		uc := usecase.New(repo, mockLogger{})

		out, err := uc.Board(context.Background(), taskboard.BoardInput{Bucket: taskboard.BucketCompleted})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Tasks) != 1 || out.Tasks[0].ID != "done" {
			t.Errorf("unexpected selection: %+v", out.Tasks)
		}
	})

	t.Run("All Meta Bucket", func(t *testing.T) {
		repo := &mockTaskRepo{
			listTasksFunc: func(opt repository.ListTasksOptions) ([]model.Task, error) {
				return fixture, nil
			},
		}
		uc := usecase.New(repo, mockLogger{})

		out, err := uc.Board(context.Background(), taskboard.BoardInput{Bucket: taskboard.BucketAll})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Tasks) != len(fixture) {
			t.Errorf("expected flattened set of %d, got %d", len(fixture), len(out.Tasks))
		}
	})

	t.Run("Unknown Bucket Error", func(t *testing.T) {
		repo := &mockTaskRepo{
			listTasksFunc: func(opt repository.ListTasksOptions) ([]model.Task, error) {
				return fixture, nil
			},
		}
		uc := usecase.New(repo, mockLogger{})

		_, err := uc.Board(context.Background(), taskboard.BoardInput{Bucket: "tomorrowish"})
		if !errors.Is(err, taskboard.ErrUnknownBucket) {
			t.Errorf("expected ErrUnknownBucket, got %v", err)
		}
	})

	t.Run("Owner Forwarded To Repository", func(t *testing.T) {
		var gotOwner string
		repo := &mockTaskRepo{
			listTasksFunc: func(opt repository.ListTasksOptions) ([]model.Task, error) {
				gotOwner = opt.Owner
				return nil, nil
			},
		}
		uc := usecase.New(repo, mockLogger{})

		if _, err := uc.Board(context.Background(), taskboard.BoardInput{Owner: "u-9"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotOwner != "u-9" {
			t.Errorf("expected owner to be forwarded, got %q", gotOwner)
		}
	})

	t.Run("Repository Error Propagates", func(t *testing.T) {
		repo := &mockTaskRepo{
			listTasksFunc: func(opt repository.ListTasksOptions) ([]model.Task, error) {
				return nil, errors.New("backend down")
			},
		}
		uc := usecase.New(repo, mockLogger{})

		if _, err := uc.Board(context.Background(), taskboard.BoardInput{}); err == nil {
			t.Error("expected backend error to propagate")
		}
	})
}

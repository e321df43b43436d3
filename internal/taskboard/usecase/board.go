package usecase

import (
	"context"

	repo "crm-admin-gateway/internal/crm/repository"
	"crm-admin-gateway/internal/taskboard"
)

// Board fetches the task window from the backend and partitions it into
// due-date buckets. Buckets are recomputed on every call, never stored.
func (uc *implUseCase) Board(ctx context.Context, input taskboard.BoardInput) (taskboard.BoardOutput, error) {
	tasks, err := uc.tasks.ListTasks(ctx, repo.ListTasksOptions{Owner: input.Owner})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Board ListTasks: %v", err)
		return taskboard.BoardOutput{}, err
	}

	buckets := taskboard.Classify(tasks, uc.now())

	out := taskboard.BoardOutput{
		Buckets: buckets,
		Total:   buckets.Total(),
	}

	if input.Bucket != "" {
		selected, ok := taskboard.Filter(buckets, input.Bucket)
		if !ok {
			return taskboard.BoardOutput{}, taskboard.ErrUnknownBucket
		}
		out.Tasks = selected
	}

	return out, nil
}

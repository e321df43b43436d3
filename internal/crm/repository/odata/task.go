package odata

import (
	"context"
	"encoding/json"
	"fmt"

	"crm-admin-gateway/internal/crm/repository"
	"crm-admin-gateway/internal/model"
	query "crm-admin-gateway/pkg/odata"
)

const defaultTaskFetchLimit = 500

// ListTasks pulls the task window the dashboard classifies. Completed and
// open tasks alike: the bucketer decides, not the backend. Not cached —
// the dashboard is recomputed on every call.
func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	limit := opt.Limit
	if limit <= 0 {
		limit = defaultTaskFetchLimit
	}

	spec, _ := model.LookupEntitySpec(string(model.EntityTasks))
	q := query.BuildQuery(query.QueryState{
		SortBy:        spec.DefaultOrderBy,
		Filters:       map[string]string{"OwnerId": opt.Owner},
		FilterOptions: spec.Filters,
		CurrentPage:   1,
		PageSize:      limit,
	})

	result, err := r.client.List(ctx, model.EntityTasks, q)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	tasks := make([]model.Task, 0, len(result.Items))
	for _, item := range result.Items {
		var task model.Task
		if err := json.Unmarshal(item, &task); err != nil {
			return nil, fmt.Errorf("decode task record: %w", err)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

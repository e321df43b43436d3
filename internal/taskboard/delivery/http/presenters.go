package http

import (
	"time"

	"crm-admin-gateway/internal/model"
	"crm-admin-gateway/internal/taskboard"
	"crm-admin-gateway/pkg/response"
)

type boardReq struct {
	Bucket string `form:"bucket"`
	Owner  string `form:"owner"`
}

func (req boardReq) toInput() taskboard.BoardInput {
	return taskboard.BoardInput{
		Bucket: taskboard.BucketKey(req.Bucket),
		Owner:  req.Owner,
	}
}

type bucketsResp struct {
	Overdue   []model.Task `json:"overdue"`
	DueSoon   []model.Task `json:"dueSoon"`
	Upcoming  []model.Task `json:"upcoming"`
	Completed []model.Task `json:"completed"`
}

type boardResp struct {
	Buckets     *bucketsResp      `json:"buckets,omitempty"`
	Tasks       []model.Task      `json:"tasks,omitempty"`
	Total       int               `json:"total"`
	GeneratedAt response.DateTime `json:"generated_at"`
}

func newBoardResp(out taskboard.BoardOutput, selected bool, now time.Time) boardResp {
	resp := boardResp{
		Total:       out.Total,
		GeneratedAt: response.DateTime(now),
	}
	if selected {
		resp.Tasks = out.Tasks
		if resp.Tasks == nil {
			resp.Tasks = []model.Task{}
		}
		return resp
	}
	resp.Buckets = &bucketsResp{
		Overdue:   emptyIfNil(out.Buckets.Overdue),
		DueSoon:   emptyIfNil(out.Buckets.DueSoon),
		Upcoming:  emptyIfNil(out.Buckets.Upcoming),
		Completed: emptyIfNil(out.Buckets.Completed),
	}
	return resp
}

func emptyIfNil(tasks []model.Task) []model.Task {
	if tasks == nil {
		return []model.Task{}
	}
	return tasks
}

package taskboard

import "crm-admin-gateway/internal/model"

// DueSoonWindowDays is the fixed due-soon window in calendar days.
const DueSoonWindowDays = 3

// BucketKey names one temporal partition of the task list.
type BucketKey string

const (
	BucketOverdue   BucketKey = "overdue"
	BucketDueSoon   BucketKey = "dueSoon"
	BucketUpcoming  BucketKey = "upcoming"
	BucketCompleted BucketKey = "completed"

	// BucketAll is a meta-key for callers wanting the unpartitioned set.
	BucketAll BucketKey = "all"
)

// Buckets is a mutually exclusive, exhaustive partition of the input list.
type Buckets struct {
	Overdue   []model.Task
	DueSoon   []model.Task
	Upcoming  []model.Task
	Completed []model.Task
}

// Total is the number of tasks across all buckets.
func (b Buckets) Total() int {
	return len(b.Overdue) + len(b.DueSoon) + len(b.Upcoming) + len(b.Completed)
}

// --- UseCase I/O ---

type BoardInput struct {
	Bucket BucketKey // empty means the full bucket map
	Owner  string    // optional OwnerId filter pushed to the backend
}

type BoardOutput struct {
	Buckets Buckets
	// Tasks holds the flattened selection when a single bucket (or "all")
	// was requested.
	Tasks []model.Task
	Total int
}

package model

// Task status codes as stored by the CRM backend.
const (
	TaskStatusOpen       = 0
	TaskStatusInProgress = 1
	TaskStatusDeferred   = 2
	TaskStatusCompleted  = 3
)

// Task is the CRM activity record consumed by the dashboard bucketer.
// Date fields are raw strings from the backend; they are parsed leniently
// and never cause an error downstream.
type Task struct {
	ID          string `json:"Id"`
	Subject     string `json:"Subject"`
	Description string `json:"Description,omitempty"`
	Status      int    `json:"Status"`
	Priority    int    `json:"Priority,omitempty"`
	OwnerID     string `json:"OwnerId,omitempty"`
	DueDate     string `json:"DueDate,omitempty"`
	CompletedAt string `json:"CompletedAt,omitempty"`
	CreatedAt   string `json:"CreatedAt,omitempty"`
	UpdatedAt   string `json:"UpdatedAt,omitempty"`
}

// Completed reports whether the task counts as done. Either signal alone
// is sufficient: a completed status code OR a completion timestamp.
func (t Task) Completed() bool {
	return t.Status == TaskStatusCompleted || t.CompletedAt != ""
}

package domain

import "time"

// TaskStatus is the lifecycle state of a duplication task. A task is
// terminal once completed or failed; it is never resurrected, only
// re-created.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusRunning   TaskStatus = "running"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusFailed    TaskStatus = "failed"
)

// DuplicationTask tracks the serial duplication of one source ad group.
// Progress is a percentage in [0,100], monotonically non-decreasing while
// the task is running. The task is mutated only by its own execution loop.
type DuplicationTask struct {
	ID              string       `json:"id"`
	SourceAdGroupID int64        `json:"source_ad_group_id"`
	RequestedCopies int          `json:"requested_copies"`
	CopiesCreated   int          `json:"copies_created"`
	Progress        int          `json:"progress"`
	Status          TaskStatus   `json:"status"`
	SlowWarning     bool         `json:"slow_warning,omitempty"`
	Error           string       `json:"error,omitempty"`
	Copies          []AdGroupCopy `json:"copies,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	StartedAt       *time.Time   `json:"started_at,omitempty"`
	CompletedAt     *time.Time   `json:"completed_at,omitempty"`
}

// AdGroupCopy records one successfully created duplicate.
type AdGroupCopy struct {
	AdGroupID int64     `json:"ad_group_id"`
	CreatedAt time.Time `json:"created_at"`
}

// BatchTaskRef links a source ad group to the task created for it.
type BatchTaskRef struct {
	SourceAdGroupID int64  `json:"source_ad_group_id"`
	TaskID          string `json:"task_id"`
}

// BatchGroupError records a source group for which no task could be started.
type BatchGroupError struct {
	SourceAdGroupID int64  `json:"source_ad_group_id"`
	Message         string `json:"message"`
}

// BatchResult aggregates the outcome of a multi-group duplication request.
// Tasks execute serially in submission order, so EstimatedDuration is the
// total requested copies multiplied by the inter-call delay.
type BatchResult struct {
	Tasks             []BatchTaskRef    `json:"tasks"`
	Errors            []BatchGroupError `json:"errors,omitempty"`
	TasksCreated      int               `json:"tasks_created"`
	TotalCopies       int               `json:"total_copies"`
	EstimatedDuration time.Duration     `json:"estimated_duration_ns"`
}

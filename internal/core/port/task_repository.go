package port

import (
	"context"
	"errors"

	"adpilot/internal/core/domain"
)

var (
	// ErrTaskNotFound is returned when no task exists for the given id.
	ErrTaskNotFound = errors.New("task not found")
	// ErrTaskRunning is returned when deleting a task that is mid-flight.
	ErrTaskRunning = errors.New("task is running")
)

// TaskRepository is the durable store for duplication tasks. Tasks run for
// minutes, so their state must survive process restarts. Implementations
// must be concurrency-safe: the HTTP layer reads tasks while execution
// loops update them.
type TaskRepository interface {
	// Create persists a freshly accepted task in pending state.
	Create(ctx context.Context, task *domain.DuplicationTask) error
	// Get returns a task with its created-copy records, or ErrTaskNotFound.
	Get(ctx context.Context, id string) (*domain.DuplicationTask, error)
	// ListByStatus returns all tasks in the given status, oldest first,
	// without their copy records.
	ListByStatus(ctx context.Context, status domain.TaskStatus) ([]domain.DuplicationTask, error)
	// UpdateStatus persists status, progress, copy count, error message and
	// timestamps of the task. Returns ErrTaskNotFound if the task row is
	// gone (deleted while still pending).
	UpdateStatus(ctx context.Context, task *domain.DuplicationTask) error
	// RecordCopy appends one successfully created duplicate to the task.
	RecordCopy(ctx context.Context, taskID string, copy domain.AdGroupCopy) error
	// Delete removes a task and its copy records.
	Delete(ctx context.Context, id string) error
}

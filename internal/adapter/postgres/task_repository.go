package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// TaskRepository implements port.TaskRepository using pgxpool for
// PostgreSQL. Tasks and their created copies live in separate tables so the
// execution loop can append copies without rewriting the task row.
type TaskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository returns a new repository instance.
func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

// Create persists a freshly accepted task.
func (r *TaskRepository) Create(ctx context.Context, task *domain.DuplicationTask) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO tasks
    (id, source_ad_group_id, requested_copies, copies_created, progress, status, slow_warning, error, created_at, started_at, completed_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		task.ID, task.SourceAdGroupID, task.RequestedCopies, task.CopiesCreated, task.Progress,
		task.Status, task.SlowWarning, task.Error, task.CreatedAt, task.StartedAt, task.CompletedAt)
	return err
}

// Get returns a task with its created-copy records.
func (r *TaskRepository) Get(ctx context.Context, id string) (*domain.DuplicationTask, error) {
	var task domain.DuplicationTask
	err := r.pool.QueryRow(ctx, `SELECT id, source_ad_group_id, requested_copies, copies_created, progress, status, slow_warning, error, created_at, started_at, completed_at
FROM tasks WHERE id = $1`, id).
		Scan(&task.ID, &task.SourceAdGroupID, &task.RequestedCopies, &task.CopiesCreated, &task.Progress,
			&task.Status, &task.SlowWarning, &task.Error, &task.CreatedAt, &task.StartedAt, &task.CompletedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `SELECT ad_group_id, created_at FROM task_copies WHERE task_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	task.Copies, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AdGroupCopy, error) {
		var c domain.AdGroupCopy
		err = row.Scan(&c.AdGroupID, &c.CreatedAt)
		return c, err
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByStatus returns all tasks in the given status, oldest first. Copy
// records are not loaded; callers needing them fetch tasks individually.
func (r *TaskRepository) ListByStatus(ctx context.Context, status domain.TaskStatus) ([]domain.DuplicationTask, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, source_ad_group_id, requested_copies, copies_created, progress, status, slow_warning, error, created_at, started_at, completed_at
FROM tasks WHERE status = $1 ORDER BY created_at`, status)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DuplicationTask, error) {
		var t domain.DuplicationTask
		err = row.Scan(&t.ID, &t.SourceAdGroupID, &t.RequestedCopies, &t.CopiesCreated, &t.Progress,
			&t.Status, &t.SlowWarning, &t.Error, &t.CreatedAt, &t.StartedAt, &t.CompletedAt)
		return t, err
	})
}

// UpdateStatus persists the mutable execution state of the task.
func (r *TaskRepository) UpdateStatus(ctx context.Context, task *domain.DuplicationTask) error {
	tag, err := r.pool.Exec(ctx, `UPDATE tasks
SET copies_created = $1, progress = $2, status = $3, error = $4, started_at = $5, completed_at = $6
WHERE id = $7`,
		task.CopiesCreated, task.Progress, task.Status, task.Error, task.StartedAt, task.CompletedAt, task.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrTaskNotFound
	}
	return nil
}

// RecordCopy appends one successfully created duplicate to the task.
func (r *TaskRepository) RecordCopy(ctx context.Context, taskID string, copy domain.AdGroupCopy) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO task_copies (task_id, ad_group_id, created_at) VALUES ($1,$2,$3)`,
		taskID, copy.AdGroupID, copy.CreatedAt)
	return err
}

// Delete removes a task; its copy records go with it via ON DELETE CASCADE.
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrTaskNotFound
	}
	return nil
}

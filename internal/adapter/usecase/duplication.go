package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

const (
	// maxCopiesPerTask is a hard validation limit.
	maxCopiesPerTask = 15
	// warnCopiesPerTask is the threshold above which a task is accepted but
	// flagged to the caller as slow.
	warnCopiesPerTask = 10
)

// DuplicationService implements port.DuplicationUseCase. Each task body is
// strictly sequential: one duplication call per copy with a fixed delay in
// between, which is the only rate-limiting device against the platform.
// Batches run their tasks one at a time in submission order for the same
// reason.
type DuplicationService struct {
	tasks     port.TaskRepository
	tokens    port.TokenSource
	newClient func(token string) port.PlatformAPI
	delay     time.Duration
	logger    *slog.Logger

	// synchronous makes Duplicate/DuplicateMany run task bodies inline
	// instead of in a background goroutine. Used by tests.
	synchronous bool
}

func NewDuplicationService(tasks port.TaskRepository, tokens port.TokenSource, newClient func(token string) port.PlatformAPI, delay time.Duration, logger *slog.Logger) *DuplicationService {
	return &DuplicationService{
		tasks:     tasks,
		tokens:    tokens,
		newClient: newClient,
		delay:     delay,
		logger:    logger,
	}
}

// Duplicate accepts one duplication task and starts executing it. The
// returned task is a pending snapshot; poll GetTask for progress.
func (s *DuplicationService) Duplicate(ctx context.Context, accountID, adGroupID int64, copies int) (*domain.DuplicationTask, error) {
	if err := validateCopies(copies); err != nil {
		return nil, err
	}

	token, err := s.tokens.Token(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("resolve access token: %w", err)
	}
	api := s.newClient(token)

	if _, err = api.GetAdGroup(ctx, adGroupID); err != nil {
		return nil, fmt.Errorf("source ad group %d: %w", adGroupID, err)
	}

	task := newTask(adGroupID, copies)
	if err = s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("persist task: %w", err)
	}

	s.launch(api, *task)
	return task, nil
}

// DuplicateMany fans the request out into one task per source group. Groups
// that cannot be probed on the platform are reported as per-group errors
// and do not abort the batch. All created tasks then execute serially in
// submission order.
func (s *DuplicationService) DuplicateMany(ctx context.Context, accountID int64, adGroupIDs []int64, copies int) (*domain.BatchResult, error) {
	if err := validateCopies(copies); err != nil {
		return nil, err
	}
	if len(adGroupIDs) == 0 {
		return nil, domain.NewValidationError("ad_group_ids", "at least one source ad group is required")
	}

	token, err := s.tokens.Token(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("resolve access token: %w", err)
	}
	api := s.newClient(token)

	// Tasks is non-nil so an all-failed batch serializes as an empty list.
	result := &domain.BatchResult{Tasks: []domain.BatchTaskRef{}}
	var accepted []domain.DuplicationTask
	for _, groupID := range adGroupIDs {
		if _, err = api.GetAdGroup(ctx, groupID); err != nil {
			result.Errors = append(result.Errors, domain.BatchGroupError{
				SourceAdGroupID: groupID,
				Message:         err.Error(),
			})
			continue
		}

		task := newTask(groupID, copies)
		if err = s.tasks.Create(ctx, task); err != nil {
			result.Errors = append(result.Errors, domain.BatchGroupError{
				SourceAdGroupID: groupID,
				Message:         fmt.Sprintf("persist task: %v", err),
			})
			continue
		}

		accepted = append(accepted, *task)
		result.Tasks = append(result.Tasks, domain.BatchTaskRef{SourceAdGroupID: groupID, TaskID: task.ID})
		result.TasksCreated++
		result.TotalCopies += copies
	}
	result.EstimatedDuration = time.Duration(result.TotalCopies) * s.delay

	s.launch(api, accepted...)
	return result, nil
}

// FailInterrupted marks tasks left running by a previous process as failed.
// Called once at startup. An interrupted loop cannot be resumed: the copies
// already created are recorded, but the platform offers no way to verify
// which in-flight call, if any, succeeded after the crash.
func (s *DuplicationService) FailInterrupted(ctx context.Context) error {
	orphaned, err := s.tasks.ListByStatus(ctx, domain.TaskStatusRunning)
	if err != nil {
		return fmt.Errorf("list running tasks: %w", err)
	}

	for i := range orphaned {
		task := &orphaned[i]
		task.Status = domain.TaskStatusFailed
		task.Error = fmt.Sprintf("interrupted by service restart after %d of %d copies", task.CopiesCreated, task.RequestedCopies)
		now := time.Now().UTC()
		task.CompletedAt = &now
		if err = s.tasks.UpdateStatus(ctx, task); err != nil {
			return fmt.Errorf("fail interrupted task %s: %w", task.ID, err)
		}
		s.logger.Warn("failed interrupted duplication task",
			slog.String("task_id", task.ID),
			slog.Int64("source_ad_group_id", task.SourceAdGroupID),
			slog.Int("copies_created", task.CopiesCreated),
		)
	}
	return nil
}

// GetTask returns a task with its created-copy records.
func (s *DuplicationService) GetTask(ctx context.Context, id string) (*domain.DuplicationTask, error) {
	return s.tasks.Get(ctx, id)
}

// DeleteTask removes a task unless it is mid-flight. A running task cannot
// be cancelled; it runs to natural completion or failure.
func (s *DuplicationService) DeleteTask(ctx context.Context, id string) error {
	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		return err
	}
	if task.Status == domain.TaskStatusRunning {
		return port.ErrTaskRunning
	}
	return s.tasks.Delete(ctx, id)
}

// launch executes the task bodies, serially, detached from the request
// context: tasks run for minutes and must outlive the HTTP call that
// accepted them.
func (s *DuplicationService) launch(api port.PlatformAPI, tasks ...domain.DuplicationTask) {
	if s.synchronous {
		for i := range tasks {
			s.run(context.Background(), api, &tasks[i])
		}
		return
	}
	go func() {
		for i := range tasks {
			s.run(context.Background(), api, &tasks[i])
		}
	}()
}

// run is the task execution loop: copy by copy, one duplication call each,
// waiting the configured delay between calls to respect the platform's
// rate limit. The first failed copy halts the task; copies already created
// are kept, the platform has no atomic multi-create to roll back with.
func (s *DuplicationService) run(ctx context.Context, api port.PlatformAPI, task *domain.DuplicationTask) {
	now := time.Now().UTC()
	task.Status = domain.TaskStatusRunning
	task.StartedAt = &now
	if err := s.tasks.UpdateStatus(ctx, task); err != nil {
		// Task row gone: deleted while still pending. Nothing to execute.
		s.logger.Warn("task vanished before start", slog.String("task_id", task.ID), slog.Any("error", err))
		return
	}

	for i := 0; i < task.RequestedCopies; i++ {
		if i > 0 {
			time.Sleep(s.delay)
		}

		newID, err := api.DuplicateAdGroup(ctx, task.SourceAdGroupID)
		if err != nil {
			task.Status = domain.TaskStatusFailed
			task.Error = fmt.Sprintf("copy %d of %d: %v", i+1, task.RequestedCopies, err)
			s.finish(ctx, task)
			return
		}

		copyRec := domain.AdGroupCopy{AdGroupID: newID, CreatedAt: time.Now().UTC()}
		task.Copies = append(task.Copies, copyRec)
		task.CopiesCreated++
		task.Progress = task.CopiesCreated * 100 / task.RequestedCopies
		if err = s.tasks.RecordCopy(ctx, task.ID, copyRec); err != nil {
			s.logger.Error("record copy", slog.String("task_id", task.ID), slog.Any("error", err))
		}
		if err = s.tasks.UpdateStatus(ctx, task); err != nil {
			s.logger.Error("update task progress", slog.String("task_id", task.ID), slog.Any("error", err))
		}
	}

	task.Status = domain.TaskStatusCompleted
	task.Progress = 100
	s.finish(ctx, task)
}

func (s *DuplicationService) finish(ctx context.Context, task *domain.DuplicationTask) {
	now := time.Now().UTC()
	task.CompletedAt = &now
	if err := s.tasks.UpdateStatus(ctx, task); err != nil {
		s.logger.Error("update task status", slog.String("task_id", task.ID), slog.Any("error", err))
	}
	s.logger.Info("duplication task finished",
		slog.String("task_id", task.ID),
		slog.Int64("source_ad_group_id", task.SourceAdGroupID),
		slog.String("status", string(task.Status)),
		slog.Int("copies_created", task.CopiesCreated),
	)
}

func newTask(adGroupID int64, copies int) *domain.DuplicationTask {
	return &domain.DuplicationTask{
		ID:              uuid.NewString(),
		SourceAdGroupID: adGroupID,
		RequestedCopies: copies,
		Status:          domain.TaskStatusPending,
		SlowWarning:     copies > warnCopiesPerTask,
		CreatedAt:       time.Now().UTC(),
	}
}

func validateCopies(copies int) error {
	if copies < 1 {
		return domain.NewValidationError("copies", "at least one copy must be requested")
	}
	if copies > maxCopiesPerTask {
		return domain.NewValidationError("copies", fmt.Sprintf("at most %d copies per task, got %d", maxCopiesPerTask, copies))
	}
	return nil
}

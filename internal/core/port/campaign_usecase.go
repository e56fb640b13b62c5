package port

import (
	"context"
	"errors"

	"adpilot/internal/core/domain"
)

// ErrUnsupportedObjective is returned by the strategy factory for objective
// keys that have no registered strategy.
var ErrUnsupportedObjective = errors.New("unsupported objective")

// CampaignUseCase is the primary port for campaign construction. The account
// id selects the advertising account whose access token is used; zero picks
// the configured default account.
type CampaignUseCase interface {
	// CreateCampaign builds the nested platform payload for the given
	// objective, submits it and returns the created campaign with its child
	// ids. Validation failures surface as *domain.ValidationError without
	// any remote call; platform rejections as *domain.RemoteError.
	CreateCampaign(ctx context.Context, accountID int64, objective domain.Objective, req domain.CampaignRequest) (*domain.CampaignResult, error)
}

// DuplicationUseCase is the primary port for bulk ad-group duplication.
type DuplicationUseCase interface {
	// Duplicate accepts a task to create `copies` duplicates of one ad
	// group. The task is returned in pending state and executes in the
	// background; poll GetTask for progress.
	Duplicate(ctx context.Context, accountID, adGroupID int64, copies int) (*domain.DuplicationTask, error)

	// DuplicateMany fans a multi-group request out into independent tasks
	// executed one at a time in submission order. A group for which no task
	// could be started is reported as a per-group error and does not abort
	// the batch.
	DuplicateMany(ctx context.Context, accountID int64, adGroupIDs []int64, copies int) (*domain.BatchResult, error)

	// GetTask returns a task with its created-copy records.
	GetTask(ctx context.Context, id string) (*domain.DuplicationTask, error)

	// DeleteTask removes a task that is not currently running. A running
	// task cannot be cancelled mid-flight and yields ErrTaskRunning.
	DeleteTask(ctx context.Context, id string) error
}

// TokenSource supplies the platform access token for an advertising
// account. Token issuance and refresh happen outside this engine.
type TokenSource interface {
	Token(ctx context.Context, accountID int64) (string, error)
}

// CreativeResolver maps internal creative ids to platform content ids. The
// default implementation is the identity mapping.
type CreativeResolver interface {
	ContentID(creativeID int64) int64
}

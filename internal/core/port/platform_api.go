package port

import (
	"context"
	"errors"

	"adpilot/internal/core/domain"
)

// ErrMissingCampaignID means the platform accepted the submission but
// returned no campaign id, leaving the engine unable to proceed.
var ErrMissingCampaignID = errors.New("platform response missing campaign id")

// ErrMissingDestinationID means a URL object was created but the platform
// returned no id for it.
var ErrMissingDestinationID = errors.New("platform response missing url object id")

// CreatedAdGroup is one ad group as reported by the platform, either inline
// in the ad-plan creation response or through the reconciliation listing.
type CreatedAdGroup struct {
	ID      int64
	Banners []int64
}

// AdPlanResponse is the decoded result of POST ad_plans.json. AdGroups may
// be empty: the platform sometimes omits child objects from the creation
// response.
type AdPlanResponse struct {
	ID       int64
	AdGroups []CreatedAdGroup
}

// AdGroupInfo is the minimal read model of an existing ad group, used to
// probe that a duplication source exists.
type AdGroupInfo struct {
	ID       int64
	Name     string
	AdPlanID int64
}

// PlatformAPI is the outbound port to the advertising platform's REST API.
// Implementations are bound to a single access token. All calls observe the
// configured request timeout; none retry automatically.
type PlatformAPI interface {
	// ListURLObjects lists existing destination URL objects of the given
	// type, up to limit entries (single page, best effort).
	ListURLObjects(ctx context.Context, objectType string, limit int) ([]domain.UrlObject, error)

	// CreateURLObject registers a new destination URL object.
	CreateURLObject(ctx context.Context, obj domain.UrlObject) (*domain.UrlObject, error)

	// CreateAdPlan submits a campaign with nested ad groups and banners.
	CreateAdPlan(ctx context.Context, plan domain.AdPlan) (*AdPlanResponse, error)

	// ListAdGroups lists ad groups of a plan with their banner ids. Used as
	// the reconciliation fallback when the creation response omits them.
	ListAdGroups(ctx context.Context, adPlanID int64, limit int) ([]CreatedAdGroup, error)

	// GetAdGroup fetches one ad group by id.
	GetAdGroup(ctx context.Context, adGroupID int64) (*AdGroupInfo, error)

	// DuplicateAdGroup creates one duplicate of the source ad group and
	// returns the new group's id.
	DuplicateAdGroup(ctx context.Context, adGroupID int64) (int64, error)
}

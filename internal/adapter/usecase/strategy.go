package usecase

import (
	"context"
	"fmt"
	"strings"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// Strategy builds and submits campaigns for one objective. A strategy is
// created uninitialized; Initialize binds it to an access token by
// constructing its platform client. After that the instance is reusable for
// further CreateCampaign calls, whether they succeed or fail.
type Strategy interface {
	Initialize(token string)
	CreateCampaign(ctx context.Context, req domain.CampaignRequest) (*domain.CampaignResult, error)
}

// strategyBase carries the state and helpers shared by all objective
// strategies: the bound platform client, objective defaults, URL-object
// dedup and the submit/reconcile step.
type strategyBase struct {
	cfg       ObjectiveConfig
	regions   []int64
	resolver  port.CreativeResolver
	newClient func(token string) port.PlatformAPI
	api       port.PlatformAPI
}

func (s *strategyBase) Initialize(token string) {
	s.api = s.newClient(token)
}

// validateCreatives enforces the creative count invariant shared by every
// objective.
func (s *strategyBase) validateCreatives(req domain.CampaignRequest) error {
	if len(req.Creatives) == 0 {
		return domain.NewValidationError("creatives", "at least one creative is required")
	}
	if len(req.Creatives) > 10 {
		return domain.NewValidationError("creatives", fmt.Sprintf("at most 10 creatives allowed, got %d", len(req.Creatives)))
	}
	return nil
}

// contentID resolves the platform content id for a creative, honouring an
// explicit override.
func (s *strategyBase) contentID(override, creativeID int64) int64 {
	if override != 0 {
		return override
	}
	return s.resolver.ContentID(creativeID)
}

// resolveURLObject reuses an existing destination URL object or creates a
// new one. An entry matches when its URL equals destURL exactly, or, when a
// bundle id is supplied, contains the bundle id as a substring. The lookup
// reads a single page and is best effort: it prevents most duplicate
// destinations but is not exclusive under concurrent calls.
func (s *strategyBase) resolveURLObject(ctx context.Context, destURL, bundleID, objectType string) (int64, error) {
	existing, err := s.api.ListURLObjects(ctx, objectType, urlListPageSize)
	if err != nil {
		return 0, fmt.Errorf("list url objects: %w", err)
	}
	for _, obj := range existing {
		if obj.URL == destURL {
			return obj.ID, nil
		}
		if bundleID != "" && strings.Contains(obj.URL, bundleID) {
			return obj.ID, nil
		}
	}

	created, err := s.api.CreateURLObject(ctx, domain.UrlObject{
		URL:           destURL,
		URLObjectType: objectType,
		URLObjectID:   bundleID,
	})
	if err != nil {
		return 0, fmt.Errorf("create url object: %w", err)
	}
	return created.ID, nil
}

// submit posts the assembled plan and reconciles child ids. When the
// creation response omits ad groups, one follow-up listing scoped to the new
// campaign recovers them; if that too yields nothing the result carries
// empty id lists — the campaign itself was created, so this degrades rather
// than fails.
func (s *strategyBase) submit(ctx context.Context, plan domain.AdPlan) (*domain.CampaignResult, error) {
	resp, err := s.api.CreateAdPlan(ctx, plan)
	if err != nil {
		return nil, err
	}
	if resp.ID == 0 {
		return nil, port.ErrMissingCampaignID
	}

	groups := resp.AdGroups
	if len(groups) == 0 {
		groups, err = s.api.ListAdGroups(ctx, resp.ID, reconcilePageSize)
		if err != nil {
			return nil, fmt.Errorf("reconcile ad groups of plan %d: %w", resp.ID, err)
		}
	}

	result := &domain.CampaignResult{CampaignID: resp.ID}
	for _, g := range groups {
		result.AdGroupIDs = append(result.AdGroupIDs, g.ID)
		result.BannerIDs = append(result.BannerIDs, g.Banners...)
	}
	return result, nil
}

// buildTargeting constructs the per-group targeting from request hints and
// strategy defaults. Called once per ad group; the result shares no state
// across groups.
func (s *strategyBase) buildTargeting(req domain.CampaignRequest) domain.TargetingSpec {
	from, to := req.AgeFrom, req.AgeTo
	if from == 0 {
		from = defaultAgeFrom
	}
	if to == 0 {
		to = defaultAgeTo
	}
	regions := req.GeoRegions
	if len(regions) == 0 {
		regions = s.regions
	}

	t := domain.TargetingSpec{
		Age:      domain.AgeTargeting{AgeList: ageList(from, to)},
		Fulltime: fulltime(scheduleFromHour, scheduleToHour),
		Geo:      domain.GeoTargeting{Regions: regions},
	}
	if len(req.Segments) > 0 {
		t.Segments = req.Segments
	}
	if len(req.Interests) > 0 {
		t.Interests = req.Interests
	}
	if len(req.Placements) > 0 {
		t.Pads = req.Placements
	}
	return t
}

// newAdGroup fills the attributes fixed for every group of this objective.
func (s *strategyBase) newAdGroup(req domain.CampaignRequest, index int, banner domain.BannerSpec, targeting domain.TargetingSpec) domain.AdGroupSpec {
	return domain.AdGroupSpec{
		Name:            groupName(req.GroupName, index, len(req.Creatives)),
		PackageID:       s.cfg.PackageID,
		Objective:       s.cfg.Objective,
		BudgetLimitDay:  req.DailyBudget,
		AutobiddingMode: "second_price_mean",
		AgeRestrictions: "18+",
		Targetings:      targeting,
		Banners:         []domain.BannerSpec{banner},
	}
}

// newAdPlan assembles the top-level campaign payload around the groups.
func (s *strategyBase) newAdPlan(req domain.CampaignRequest, groups []domain.AdGroupSpec) domain.AdPlan {
	plan := domain.AdPlan{
		Name:      req.Name,
		Status:    "active",
		Objective: s.cfg.Objective,
		AdGroups:  groups,
	}
	if req.StartDate != nil {
		plan.DateStart = req.StartDate.Format("2006-01-02")
	}
	return plan
}

// groupName derives the ad group name. An explicit template gets a 1-based
// index appended only when more than one creative is selected; without a
// template groups are named "группа N", or "группа 1" for a single one.
func groupName(template string, index, total int) string {
	if template != "" {
		if total > 1 {
			return fmt.Sprintf("%s %d", template, index+1)
		}
		return template
	}
	if total > 1 {
		return fmt.Sprintf("группа %d", index+1)
	}
	return "группа 1"
}

// bodyText picks the banner body text source: long description preferred,
// else short description.
func bodyText(req domain.CampaignRequest) string {
	if req.LongDescription != "" {
		return req.LongDescription
	}
	return req.ShortDescription
}

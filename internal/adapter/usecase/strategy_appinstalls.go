package usecase

import (
	"context"

	"adpilot/internal/core/domain"
)

const (
	appInstallsTitleLimit = 25
	appInstallsTextLimit  = 90

	urlObjectTypeTracker = "tracker_url"
)

// defaultOSVersions is the platform's stock OS-version id list applied when
// the request supplies no device filter.
var defaultOSVersions = []int64{76, 137, 184, 209, 255}

// appInstallsStrategy builds campaigns for the app-install objective: one ad
// group per creative, each banner pointing at the app tracker URL.
type appInstallsStrategy struct {
	strategyBase
}

func (s *appInstallsStrategy) CreateCampaign(ctx context.Context, req domain.CampaignRequest) (*domain.CampaignResult, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	urlID, err := s.resolveURLObject(ctx, req.TrackerURL, req.BundleID, urlObjectTypeTracker)
	if err != nil {
		return nil, err
	}

	groups := make([]domain.AdGroupSpec, 0, len(req.Creatives))
	for i, cr := range req.Creatives {
		groups = append(groups, s.buildAdGroup(req, i, cr, urlID))
	}
	return s.submit(ctx, s.newAdPlan(req, groups))
}

func (s *appInstallsStrategy) validate(req domain.CampaignRequest) error {
	if req.TrackerURL == "" {
		return domain.NewValidationError("tracker_url", "required for app-install campaigns")
	}
	return s.validateCreatives(req)
}

func (s *appInstallsStrategy) buildAdGroup(req domain.CampaignRequest, index int, cr domain.CreativeRef, urlID int64) domain.AdGroupSpec {
	content := map[string]domain.ContentRef{
		"icon_256x256":  {ID: s.contentID(cr.IconID, cr.ID)},
		"image_600x600": {ID: s.contentID(cr.ImageID, cr.ID)},
	}

	textblocks := map[string]domain.Textblock{
		"title_25":      {Text: truncate(req.Title, appInstallsTitleLimit)},
		"text_90":       {Text: truncate(bodyText(req), appInstallsTextLimit)},
		"cta_apps_full": {Text: resolveCTA(req.CTA)},
	}
	if about := aboutCompany(req.AdvertiserName, req.AdvertiserINN); about != "" {
		textblocks["about_company_115"] = domain.Textblock{Text: about}
	}

	banner := domain.BannerSpec{
		Content:    content,
		Textblocks: textblocks,
		URLs:       map[string]domain.URLRef{"primary": {ID: urlID}},
	}

	targeting := s.buildTargeting(req)
	// Users who already installed the app are excluded.
	targeting.MobileApps = "not_installed"
	targeting.MobileTypes = []string{"smartphones"}
	osVersions := req.OSVersions
	if len(osVersions) == 0 {
		osVersions = defaultOSVersions
	}
	targeting.MobileOperationSystems = osVersions

	return s.newAdGroup(req, index, banner, targeting)
}

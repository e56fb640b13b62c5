package usecase

import (
	"context"

	"adpilot/internal/core/domain"
)

const (
	socialTitleLimit = 25
	socialTextLimit  = 220

	urlObjectTypeCommunity = "community_url"
)

// socialEngagementStrategy builds campaigns that drive users to a community
// page. It shares the app-install shape (validate, resolve destination,
// one group per creative, submit) but uses the social package's textblock
// keys and longer body limit, allows video creatives and applies no mobile
// device filter.
type socialEngagementStrategy struct {
	strategyBase
}

func (s *socialEngagementStrategy) CreateCampaign(ctx context.Context, req domain.CampaignRequest) (*domain.CampaignResult, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	urlID, err := s.resolveURLObject(ctx, req.PageURL, "", urlObjectTypeCommunity)
	if err != nil {
		return nil, err
	}

	groups := make([]domain.AdGroupSpec, 0, len(req.Creatives))
	for i, cr := range req.Creatives {
		groups = append(groups, s.buildAdGroup(req, i, cr, urlID))
	}
	return s.submit(ctx, s.newAdPlan(req, groups))
}

func (s *socialEngagementStrategy) validate(req domain.CampaignRequest) error {
	if req.PageURL == "" {
		return domain.NewValidationError("page_url", "required for social-engagement campaigns")
	}
	return s.validateCreatives(req)
}

func (s *socialEngagementStrategy) buildAdGroup(req domain.CampaignRequest, index int, cr domain.CreativeRef, urlID int64) domain.AdGroupSpec {
	content := map[string]domain.ContentRef{
		"icon_256x256": {ID: s.contentID(cr.IconID, cr.ID)},
	}
	if cr.IsVideo {
		content["video_portrait"] = domain.ContentRef{ID: s.contentID(cr.ImageID, cr.ID)}
	} else {
		content["image_600x600"] = domain.ContentRef{ID: s.contentID(cr.ImageID, cr.ID)}
	}

	textblocks := map[string]domain.Textblock{
		"title_25":        {Text: truncate(req.Title, socialTitleLimit)},
		"text_220":        {Text: truncate(bodyText(req), socialTextLimit)},
		"cta_social_full": {Text: resolveCTA(req.CTA)},
	}
	if about := aboutCompany(req.AdvertiserName, req.AdvertiserINN); about != "" {
		textblocks["about_company_115"] = domain.Textblock{Text: about}
	}

	banner := domain.BannerSpec{
		Content:    content,
		Textblocks: textblocks,
		URLs:       map[string]domain.URLRef{"primary": {ID: urlID}},
	}

	return s.newAdGroup(req, index, banner, s.buildTargeting(req))
}

package usecase

import (
	"context"
	"fmt"

	"adpilot/internal/core/domain"
)

const (
	leadAdsTitleLimit = 25
	leadAdsTextLimit  = 220
)

// leadAdsStrategy builds lead-generation campaigns. The banner references
// the lead form directly instead of a URL object, the icon is sourced from
// the form by the platform (so no icon content is sent) and video creatives
// are not accepted by the lead-ads package.
type leadAdsStrategy struct {
	strategyBase
}

func (s *leadAdsStrategy) CreateCampaign(ctx context.Context, req domain.CampaignRequest) (*domain.CampaignResult, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	groups := make([]domain.AdGroupSpec, 0, len(req.Creatives))
	for i, cr := range req.Creatives {
		groups = append(groups, s.buildAdGroup(req, i, cr))
	}
	return s.submit(ctx, s.newAdPlan(req, groups))
}

func (s *leadAdsStrategy) validate(req domain.CampaignRequest) error {
	if req.LeadFormID == 0 {
		return domain.NewValidationError("lead_form_id", "required for lead-generation campaigns")
	}
	if err := s.validateCreatives(req); err != nil {
		return err
	}
	for i, cr := range req.Creatives {
		if cr.IsVideo {
			return &domain.ValidationError{
				Field:         "creatives",
				Reason:        fmt.Sprintf("video creative %d is not allowed for lead-generation campaigns", cr.ID),
				CreativeIndex: i,
			}
		}
	}
	return nil
}

func (s *leadAdsStrategy) buildAdGroup(req domain.CampaignRequest, index int, cr domain.CreativeRef) domain.AdGroupSpec {
	content := map[string]domain.ContentRef{
		"image_600x600": {ID: s.contentID(cr.ImageID, cr.ID)},
	}

	textblocks := map[string]domain.Textblock{
		"title_25":       {Text: truncate(req.Title, leadAdsTitleLimit)},
		"text_220":       {Text: truncate(bodyText(req), leadAdsTextLimit)},
		"cta_leads_full": {Text: resolveCTA(req.CTA)},
	}
	if about := aboutCompany(req.AdvertiserName, req.AdvertiserINN); about != "" {
		textblocks["about_company_115"] = domain.Textblock{Text: about}
	}

	banner := domain.BannerSpec{
		Content:    content,
		Textblocks: textblocks,
		URLs:       map[string]domain.URLRef{"lead_form": {ID: req.LeadFormID}},
	}

	return s.newAdGroup(req, index, banner, s.buildTargeting(req))
}

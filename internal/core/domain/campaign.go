package domain

import "time"

// Objective identifies a supported campaign objective. Each objective maps
// to a structurally different "package" schema on the advertising platform,
// so payload construction is dispatched per objective.
type Objective string

const (
	ObjectiveAppInstalls      Objective = "appinstalls"
	ObjectiveSocialEngagement Objective = "socialengagement"
	ObjectiveLeadAds          Objective = "leadads"
)

// CreativeRef points at one uploaded creative. Icon and image ids may be
// overridden explicitly; when zero the creative id itself is used as the
// platform content id.
type CreativeRef struct {
	ID      int64 `json:"id"`
	IconID  int64 `json:"icon_id,omitempty"`
	ImageID int64 `json:"image_id,omitempty"`
	IsVideo bool  `json:"is_video,omitempty"`
}

// CampaignRequest captures a user's high-level campaign intent. Budgets are
// stored in integer currency units (e.g. kopecks). The HTTP layer constructs
// this struct from request data and passes it into the usecase.
type CampaignRequest struct {
	Name        string        `json:"name"`
	DailyBudget int64         `json:"daily_budget"`
	Creatives   []CreativeRef `json:"creatives"`

	Title            string `json:"title"`
	ShortDescription string `json:"short_description,omitempty"`
	LongDescription  string `json:"long_description,omitempty"`
	CTA              string `json:"cta,omitempty"`

	// Destination fields. TrackerURL is required for app-install campaigns,
	// PageURL for social-engagement, LeadFormID for lead ads.
	TrackerURL string `json:"tracker_url,omitempty"`
	BundleID   string `json:"bundle_id,omitempty"`
	PageURL    string `json:"page_url,omitempty"`
	LeadFormID int64  `json:"lead_form_id,omitempty"`

	// Targeting hints. Zero values fall back to strategy defaults.
	AgeFrom    int     `json:"age_from,omitempty"`
	AgeTo      int     `json:"age_to,omitempty"`
	GeoRegions []int64 `json:"geo_regions,omitempty"`
	Segments   []int64 `json:"segments,omitempty"`
	Interests  []int64 `json:"interests,omitempty"`
	Placements []int64 `json:"placements,omitempty"`
	OSVersions []int64 `json:"os_versions,omitempty"`

	AdvertiserName string `json:"advertiser_name,omitempty"`
	AdvertiserINN  string `json:"advertiser_inn,omitempty"`

	StartDate *time.Time `json:"start_date,omitempty"`
	GroupName string     `json:"group_name,omitempty"`
}

// CampaignResult is returned once per successful campaign creation. When the
// platform omits child ids from the creation response, AdGroupIDs and
// BannerIDs are recovered through a follow-up listing call; on that fallback
// path their order follows the platform listing and does not necessarily
// match the creative order of the request.
type CampaignResult struct {
	CampaignID int64   `json:"campaign_id"`
	AdGroupIDs []int64 `json:"ad_group_ids"`
	BannerIDs  []int64 `json:"banner_ids"`
}

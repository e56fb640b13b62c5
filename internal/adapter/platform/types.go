package platform

import "adpilot/internal/core/domain"

// Response envelopes for the advertising platform API. List endpoints wrap
// items in {"count": N, "items": [...]}; errors arrive either as a nested
// {"error": {...}} object or as top-level code/message fields.

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error   *errorBody `json:"error"`
	Code    string     `json:"code"`
	Message string     `json:"message"`
}

type urlObjectList struct {
	Count int                `json:"count"`
	Items []domain.UrlObject `json:"items"`
}

type bannerRef struct {
	ID int64 `json:"id"`
}

type adGroupItem struct {
	ID       int64       `json:"id"`
	Name     string      `json:"name"`
	AdPlanID int64       `json:"ad_plan_id"`
	Banners  []bannerRef `json:"banners"`
}

type adGroupList struct {
	Count int           `json:"count"`
	Items []adGroupItem `json:"items"`
}

type adPlanCreated struct {
	ID       int64         `json:"id"`
	AdGroups []adGroupItem `json:"ad_groups"`
}

type adGroupCreated struct {
	ID int64 `json:"id"`
}

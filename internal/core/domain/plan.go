package domain

// Wire-format structures for campaign submission. Field names follow the
// advertising platform's JSON schema, so these types marshal directly into
// the request body of POST ad_plans.json.

// AdPlan is the top-level campaign payload.
type AdPlan struct {
	Name      string        `json:"name"`
	Status    string        `json:"status"`
	Objective string        `json:"objective"`
	AdGroups  []AdGroupSpec `json:"ad_groups"`
	DateStart string        `json:"date_start,omitempty"`
}

// AdGroupSpec describes one ad group nested in an AdPlan. One group is
// produced per creative of the request, each carrying exactly one banner.
type AdGroupSpec struct {
	Name            string        `json:"name"`
	PackageID       int64         `json:"package_id"`
	Objective       string        `json:"objective"`
	BudgetLimitDay  int64         `json:"budget_limit_day"`
	AutobiddingMode string        `json:"autobidding_mode"`
	AgeRestrictions string        `json:"age_restrictions"`
	Targetings      TargetingSpec `json:"targetings"`
	Banners         []BannerSpec  `json:"banners"`
}

// BannerSpec nests inside an AdGroupSpec. Content keys are package-specific
// (e.g. icon_256x256, image_600x600, video_portrait).
type BannerSpec struct {
	Content    map[string]ContentRef `json:"content"`
	Textblocks map[string]Textblock  `json:"textblocks"`
	URLs       map[string]URLRef     `json:"urls,omitempty"`
}

// ContentRef references an uploaded content object by platform id.
type ContentRef struct {
	ID int64 `json:"id"`
}

// Textblock carries one text field of a banner.
type Textblock struct {
	Text string `json:"text"`
}

// URLRef references a UrlObject (or a lead form for lead-ads packages).
type URLRef struct {
	ID int64 `json:"id"`
}

// TargetingSpec is built fresh per ad group; no state is shared across
// groups of the same plan.
type TargetingSpec struct {
	Age                    AgeTargeting `json:"age"`
	Fulltime               Fulltime     `json:"fulltime"`
	Geo                    GeoTargeting `json:"geo"`
	MobileApps             string       `json:"mobile_apps,omitempty"`
	MobileTypes            []string     `json:"mobile_types,omitempty"`
	MobileOperationSystems []int64      `json:"mobile_operation_systems,omitempty"`
	Segments               []int64      `json:"segments,omitempty"`
	Interests              []int64      `json:"interests,omitempty"`
	Pads                   []int64      `json:"pads,omitempty"`
}

// AgeTargeting enumerates every targeted age explicitly; the platform does
// not accept range descriptors.
type AgeTargeting struct {
	AgeList []int `json:"age_list"`
}

// GeoTargeting lists targeted region ids.
type GeoTargeting struct {
	Regions []int64 `json:"regions"`
}

// Fulltime is the weekly display schedule: an hour list per weekday plus
// display flags controlling timezone and holiday handling.
type Fulltime struct {
	Mon   []int    `json:"mon"`
	Tue   []int    `json:"tue"`
	Wed   []int    `json:"wed"`
	Thu   []int    `json:"thu"`
	Fri   []int    `json:"fri"`
	Sat   []int    `json:"sat"`
	Sun   []int    `json:"sun"`
	Flags []string `json:"flags"`
}

// UrlObject is a remote destination URL entity, owned by the platform and
// referenced here only by id. URLObjectID optionally carries an app bundle
// identifier used for substring dedup.
type UrlObject struct {
	ID            int64  `json:"id,omitempty"`
	URL           string `json:"url"`
	URLObjectType string `json:"url_object_type,omitempty"`
	URLObjectID   string `json:"url_object_id,omitempty"`
}

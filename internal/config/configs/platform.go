package configs

import "time"

// Platform holds configuration for the advertising platform API client.
// BaseURL points at the platform's REST API root and Token is the default
// bearer token used when a request names no advertising account. Timeout
// bounds every outgoing HTTP call.
type Platform struct {
	// BaseURL is the platform API root. A trailing slash is optional.
	BaseURL string `env:"BASE_URL" envDefault:"https://ads.vk.com/api/v2/"`
	// Token is the fallback access token. Requests addressed to a concrete
	// account resolve their token from storage instead.
	Token string `env:"TOKEN"`
	// Timeout applies to every platform API call.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
	// DefaultRegions is the geo targeting applied when a campaign request
	// names no regions. Defaults to country-wide Russia.
	DefaultRegions []int64 `env:"DEFAULT_REGIONS" envDefault:"188" envSeparator:","`
}

package usecase

import (
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// ObjectiveConfig carries the platform-specific defaults of one objective:
// the objective string sent on the wire and the "package" format code.
type ObjectiveConfig struct {
	Objective string
	PackageID int64
}

// objectiveConfigs is the registry of supported objectives. Each objective
// maps 1:1 to a remote package schema with its own textblock keys, media
// rules and field limits, so dispatch happens here rather than by branching
// inside a shared builder.
var objectiveConfigs = map[domain.Objective]ObjectiveConfig{
	domain.ObjectiveAppInstalls:      {Objective: "appinstalls", PackageID: 1085},
	domain.ObjectiveSocialEngagement: {Objective: "socialengagement", PackageID: 2163},
	domain.ObjectiveLeadAds:          {Objective: "leadads", PackageID: 3790},
}

// StrategyFactory maps objective keys to strategy variants bound to shared
// defaults (default geo regions, creative resolver, platform client
// constructor).
type StrategyFactory struct {
	newClient      func(token string) port.PlatformAPI
	resolver       port.CreativeResolver
	defaultRegions []int64
}

// NewStrategyFactory creates a factory. A nil resolver falls back to the
// identity mapping (platform content id equals the internal creative id).
func NewStrategyFactory(newClient func(token string) port.PlatformAPI, resolver port.CreativeResolver, defaultRegions []int64) *StrategyFactory {
	if resolver == nil {
		resolver = identityResolver{}
	}
	return &StrategyFactory{
		newClient:      newClient,
		resolver:       resolver,
		defaultRegions: defaultRegions,
	}
}

// Strategy returns a fresh, uninitialized strategy for the objective, or
// port.ErrUnsupportedObjective for unknown keys.
func (f *StrategyFactory) Strategy(objective domain.Objective) (Strategy, error) {
	cfg, ok := objectiveConfigs[objective]
	if !ok {
		return nil, port.ErrUnsupportedObjective
	}

	base := strategyBase{
		cfg:       cfg,
		regions:   f.defaultRegions,
		resolver:  f.resolver,
		newClient: f.newClient,
	}
	switch objective {
	case domain.ObjectiveAppInstalls:
		return &appInstallsStrategy{strategyBase: base}, nil
	case domain.ObjectiveSocialEngagement:
		return &socialEngagementStrategy{strategyBase: base}, nil
	case domain.ObjectiveLeadAds:
		return &leadAdsStrategy{strategyBase: base}, nil
	}
	return nil, port.ErrUnsupportedObjective
}

// ObjectiveConfig returns the platform defaults for the objective, or
// port.ErrUnsupportedObjective for unknown keys.
func (f *StrategyFactory) ObjectiveConfig(objective domain.Objective) (ObjectiveConfig, error) {
	cfg, ok := objectiveConfigs[objective]
	if !ok {
		return ObjectiveConfig{}, port.ErrUnsupportedObjective
	}
	return cfg, nil
}

// identityResolver maps every creative id to itself.
type identityResolver struct{}

func (identityResolver) ContentID(creativeID int64) int64 { return creativeID }

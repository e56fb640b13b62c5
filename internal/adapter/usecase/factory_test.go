package usecase

import (
	"errors"
	"testing"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

func TestFactoryKnownObjectives(t *testing.T) {
	factory := NewStrategyFactory(func(string) port.PlatformAPI { return nil }, nil, nil)

	for _, objective := range []domain.Objective{
		domain.ObjectiveAppInstalls,
		domain.ObjectiveSocialEngagement,
		domain.ObjectiveLeadAds,
	} {
		st, err := factory.Strategy(objective)
		if err != nil {
			t.Fatalf("Strategy(%q) error: %v", objective, err)
		}
		if st == nil {
			t.Fatalf("Strategy(%q) returned nil", objective)
		}
	}
}

func TestFactoryUnknownObjective(t *testing.T) {
	factory := NewStrategyFactory(func(string) port.PlatformAPI { return nil }, nil, nil)

	if _, err := factory.Strategy("branding"); !errors.Is(err, port.ErrUnsupportedObjective) {
		t.Fatalf("expected ErrUnsupportedObjective, got %v", err)
	}
	if _, err := factory.ObjectiveConfig("branding"); !errors.Is(err, port.ErrUnsupportedObjective) {
		t.Fatalf("expected ErrUnsupportedObjective, got %v", err)
	}
}

func TestFactoryObjectiveConfig(t *testing.T) {
	factory := NewStrategyFactory(func(string) port.PlatformAPI { return nil }, nil, nil)

	cfg, err := factory.ObjectiveConfig(domain.ObjectiveAppInstalls)
	if err != nil {
		t.Fatalf("ObjectiveConfig error: %v", err)
	}
	if cfg.Objective != "appinstalls" || cfg.PackageID != 1085 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

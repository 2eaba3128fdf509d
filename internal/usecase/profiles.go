package usecase

import (
	"fmt"

	"FormationImporter/internal/config"
)

// NewProfile resolves a profile by name with its configuration applied.
func NewProfile(name string, cfg config.ImportsConfig) (Profile, error) {
	switch name {
	case "evaluations":
		return NewEvaluationProfile(cfg.Evaluations), nil
	case "projects":
		return NewProjectProfile(cfg.Projects), nil
	default:
		return nil, fmt.Errorf("unknown import profile %q", name)
	}
}

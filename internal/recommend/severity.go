package recommend

import (
	"frictionlens/internal/config"
	"frictionlens/internal/model"
)

// Classifier bands field scores by severity.
type Classifier struct {
	cfg *config.Config
}

// NewClassifier creates a severity classifier for one configuration.
func NewClassifier(cfg *config.Config) *Classifier {
	return &Classifier{cfg: cfg}
}

// Severity bands a scale-range percentage. Lower percent means more friction.
func (c *Classifier) Severity(percent float64) model.Severity {
	switch {
	case percent < c.cfg.Thresholds.SeverityHighPercent:
		return model.SeverityHigh
	case percent < c.cfg.Thresholds.SeverityLowPercent:
		return model.SeverityMedium
	default:
		return model.SeverityLow
	}
}

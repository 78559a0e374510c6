package scoring

import (
	"math"

	"github.com/montanaflynn/stats"

	"frictionlens/internal/config"
	"frictionlens/internal/model"
)

// Dispersion measures response spread within one field and role. High spread
// signals intra-group disagreement; it feeds the prioritizer as a tie-breaker,
// not as a standalone severity signal.
type Dispersion struct {
	cfg *config.Config
}

// NewDispersion creates a dispersion analyzer for one scale configuration.
func NewDispersion(cfg *config.Config) *Dispersion {
	return &Dispersion{cfg: cfg}
}

// Spread returns the population standard deviation for one field within one
// role, rounded to two decimals. Fewer than two responses yield sigma 0 by
// policy, so downstream classification never branches on "N/A".
func (d *Dispersion) Spread(field model.Field, role model.Role, normalized []model.NormalizedResponse) model.Spread {
	values := adjustedValues(normalized, field, role)
	sigma := 0.0
	if len(values) >= 2 {
		raw, _ := stats.StandardDeviationPopulation(values)
		sigma = math.Round(raw*100) / 100
	}
	return model.Spread{
		Field:         field,
		Role:          role,
		Sigma:         sigma,
		Band:          d.band(sigma),
		ResponseCount: len(values),
	}
}

func (d *Dispersion) band(sigma float64) model.SpreadBand {
	r := d.cfg.Range()
	switch {
	case sigma < d.cfg.Thresholds.SpreadMedium*r:
		return model.SpreadLow
	case sigma < d.cfg.Thresholds.SpreadHigh*r:
		return model.SpreadMedium
	default:
		return model.SpreadHigh
	}
}

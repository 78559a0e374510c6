package scoring

import (
	"github.com/montanaflynn/stats"

	"frictionlens/internal/config"
	"frictionlens/internal/model"
)

// Aggregator groups normalized responses into per-field, per-role means.
// Every response counts equally: no weighting, no outlier trimming.
type Aggregator struct {
	cfg *config.Config
}

// NewAggregator creates an aggregator for one scale configuration.
func NewAggregator(cfg *config.Config) *Aggregator {
	return &Aggregator{cfg: cfg}
}

// FieldScore computes the aggregate for one field within one role. With zero
// matching responses it returns the no-data sentinel instead of dividing by
// zero.
func (a *Aggregator) FieldScore(field model.Field, role model.Role, normalized []model.NormalizedResponse) model.FieldScore {
	values := adjustedValues(normalized, field, role)
	if len(values) == 0 {
		return model.FieldScore{Field: field, Role: role}
	}
	mean, _ := stats.Mean(values)
	return model.FieldScore{
		Field:         field,
		Role:          role,
		Mean:          mean,
		Percent:       a.cfg.Percent(mean),
		ResponseCount: len(values),
	}
}

// ScoreTable computes aggregates for every field within one role, in
// canonical field order.
func (a *Aggregator) ScoreTable(role model.Role, normalized []model.NormalizedResponse) []model.FieldScore {
	scores := make([]model.FieldScore, 0, len(model.FieldOrder))
	for _, field := range model.FieldOrder {
		scores = append(scores, a.FieldScore(field, role, normalized))
	}
	return scores
}

func adjustedValues(normalized []model.NormalizedResponse, field model.Field, role model.Role) []float64 {
	var values []float64
	for _, r := range normalized {
		if r.Field == field && r.Role == role {
			values = append(values, float64(r.Adjusted))
		}
	}
	return values
}

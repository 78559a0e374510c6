package recommend

import (
	"frictionlens/internal/config"
	"frictionlens/internal/model"
)

// Profiler maps the four field means to one categorical label. The rules are
// an ordered priority list, evaluated top to bottom: the first match wins.
type Profiler struct {
	cfg *config.Config
}

// NewProfiler creates a profiler for one configuration.
func NewProfiler(cfg *config.Config) *Profiler {
	return &Profiler{cfg: cfg}
}

// Classify labels a full four-field score vector. Every field needs at least
// one response; otherwise the vector cannot be labeled and the insufficient
// data profile is returned.
func (p *Profiler) Classify(scores []model.FieldScore) model.Profile {
	byField := make(map[model.Field]model.FieldScore, len(scores))
	for _, s := range scores {
		if s.HasData() {
			byField[s.Field] = s
		}
	}
	for _, field := range model.FieldOrder {
		if _, ok := byField[field]; !ok {
			return model.ProfileInsufficientData
		}
	}

	t := p.cfg.Thresholds

	// Rule 1: any single field below the high-friction line names the label.
	for _, field := range model.FieldOrder {
		if byField[field].Percent < t.SeverityHighPercent {
			return model.DeficitProfile(field)
		}
	}

	// Rule 2: large absolute mean split. The cutoff is in scale points, not
	// percent, mirroring the source framework; it is configurable because
	// the framework never says which scale it was tuned for.
	minMean, maxMean := byField[model.FieldOrder[0]].Mean, byField[model.FieldOrder[0]].Mean
	for _, field := range model.FieldOrder[1:] {
		m := byField[field].Mean
		if m < minMean {
			minMean = m
		}
		if m > maxMean {
			maxMean = m
		}
	}
	if maxMean-minMean > t.UnbalancedGapPoints {
		return model.ProfileUnbalanced
	}

	// Rules 3-5: uniform bands.
	allBelowAcceptable := true
	allAcceptable := true
	allHigh := true
	for _, field := range model.FieldOrder {
		pct := byField[field].Percent
		if pct >= t.SeverityLowPercent {
			allBelowAcceptable = false
		}
		if pct < t.SeverityLowPercent {
			allAcceptable = false
		}
		if pct < t.HighPerformingPercent {
			allHigh = false
		}
	}
	switch {
	case allBelowAcceptable:
		return model.ProfileDeveloping
	case allHigh:
		return model.ProfileHighPerforming
	case allAcceptable:
		return model.ProfileWellFunctioning
	}

	// Reachable: e.g. one field just under the acceptable line while another
	// sits above it, with no deficit and no large split.
	return model.ProfileMixed
}

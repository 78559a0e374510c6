package recommend

import (
	"math"
	"sort"

	"frictionlens/internal/config"
	"frictionlens/internal/model"
)

// Prioritizer selects the field (or tied fields) to act on first. The
// algorithm is deterministic: rerunning it on the same scores always yields
// the same outcome.
type Prioritizer struct {
	cfg        *config.Config
	classifier *Classifier
}

// NewPrioritizer creates a prioritizer for one configuration.
func NewPrioritizer(cfg *config.Config) *Prioritizer {
	return &Prioritizer{cfg: cfg, classifier: NewClassifier(cfg)}
}

// standing couples everything ranking needs to know about one field.
type standing struct {
	field    model.Field
	mean     float64
	percent  float64
	severity model.Severity
	sigma    float64
}

// Prioritize ranks one role's field scores. Fields with zero responses are
// excluded from ranking entirely: absent, not HIGH. With no data at all it
// returns an explicit insufficient-data result; with every field in the
// acceptable band it returns no-action.
func (p *Prioritizer) Prioritize(scores []model.FieldScore, spreads map[model.Field]model.Spread) model.RecommendationResult {
	var standings []standing
	anyData := false
	for _, s := range scores {
		if !s.HasData() {
			continue
		}
		anyData = true
		severity := p.classifier.Severity(s.Percent)
		if severity == model.SeverityLow {
			continue
		}
		standings = append(standings, standing{
			field:    s.Field,
			mean:     s.Mean,
			percent:  s.Percent,
			severity: severity,
			sigma:    spreads[s.Field].Sigma,
		})
	}
	if !anyData {
		return model.RecommendationResult{Status: model.RecommendationInsufficientData}
	}
	if len(standings) == 0 {
		return model.RecommendationResult{Status: model.RecommendationNoAction}
	}

	if p.indistinguishable(standings) {
		sort.SliceStable(standings, func(i, j int) bool {
			a, b := standings[i], standings[j]
			if a.severity != b.severity {
				return a.severity.MoreSevereThan(b.severity)
			}
			if a.sigma != b.sigma {
				return a.sigma > b.sigma
			}
			return a.field.OrderIndex() < b.field.OrderIndex()
		})
		return model.RecommendationResult{
			Status:          model.RecommendationTied,
			Recommendations: p.recommendations(standings),
		}
	}

	best := standings[0]
	for _, candidate := range standings[1:] {
		if p.outranks(candidate, best) {
			best = candidate
		}
	}
	return model.RecommendationResult{
		Status:          model.RecommendationSingle,
		Recommendations: p.recommendations([]standing{best}),
	}
}

// indistinguishable reports whether the restricted fields' means sit inside
// the tie range, in which case no single pick would be defensible.
func (p *Prioritizer) indistinguishable(standings []standing) bool {
	low, high := standings[0].mean, standings[0].mean
	for _, s := range standings[1:] {
		low = math.Min(low, s.mean)
		high = math.Max(high, s.mean)
	}
	return high-low < p.cfg.Thresholds.TieRange*p.cfg.Range()
}

// outranks is the pairwise selection rule: severity first; within a mean
// cluster the bigger disagreement wins (disagreement is itself actionable);
// across clusters the worst mean wins; canonical field order settles the
// rest.
func (p *Prioritizer) outranks(a, b standing) bool {
	if a.severity != b.severity {
		return a.severity.MoreSevereThan(b.severity)
	}
	if math.Abs(a.mean-b.mean) < p.cfg.Thresholds.MeanCluster*p.cfg.Range() {
		if a.sigma != b.sigma {
			return a.sigma > b.sigma
		}
		return a.field.OrderIndex() < b.field.OrderIndex()
	}
	if a.mean != b.mean {
		return a.mean < b.mean
	}
	return a.field.OrderIndex() < b.field.OrderIndex()
}

func (p *Prioritizer) recommendations(standings []standing) []model.Recommendation {
	out := make([]model.Recommendation, 0, len(standings))
	for _, s := range standings {
		out = append(out, model.Recommendation{
			Field:      s.field,
			Severity:   s.severity,
			Mean:       s.mean,
			Percent:    s.percent,
			Sigma:      s.sigma,
			Governance: GovernanceFor(s.field),
			Template:   TemplateFor(s.field),
		})
	}
	return out
}

package diagnose

import (
	"math"

	"frictionlens/internal/config"
	"frictionlens/internal/model"
)

// GapAnalyzer compares two roles' aggregate score for the same field.
type GapAnalyzer struct {
	cfg *config.Config
}

// NewGapAnalyzer creates a gap analyzer for one scale configuration.
func NewGapAnalyzer(cfg *config.Config) *GapAnalyzer {
	return &GapAnalyzer{cfg: cfg}
}

// Compare measures the distance between two aggregates. The two scores must
// cover the same field and different roles; anything else is a caller
// contract violation. A side with zero responses makes the gap not
// applicable rather than failing the report.
func (g *GapAnalyzer) Compare(a, b model.FieldScore) (model.Gap, error) {
	if a.Field != b.Field {
		return model.Gap{}, model.NewInvalidInputError("gap requires one field, got %q and %q", a.Field, b.Field)
	}
	if a.Role == b.Role {
		return model.Gap{}, model.NewInvalidInputError("gap requires two distinct roles, got %q twice", a.Role)
	}
	gap := model.Gap{Field: a.Field, RoleA: a.Role, RoleB: b.Role}
	if !a.HasData() || !b.HasData() {
		gap.Severity = model.GapNotApplicable
		return gap, nil
	}

	distance := math.Round(math.Abs(a.Mean-b.Mean)*100) / 100
	gap.Gap = distance
	gap.GapPercent = math.Round(distance/g.cfg.Range()*1000) / 10
	gap.Severity = g.band(distance)
	gap.Applicable = true
	switch {
	case a.Mean > b.Mean:
		gap.HigherRole = a.Role
	case b.Mean > a.Mean:
		gap.HigherRole = b.Role
	}
	return gap, nil
}

// LeaderBlocked derives the shared-friction flag for one field: the leader's
// own score and the group's score both sit below the acceptable band, so the
// leader cannot be expected to resolve the friction for the group.
func (g *GapAnalyzer) LeaderBlocked(participant, leaderSelf model.FieldScore) model.LeaderBlocked {
	flag := model.LeaderBlocked{Field: participant.Field}
	if !participant.HasData() || !leaderSelf.HasData() {
		return flag
	}
	acceptable := g.cfg.Thresholds.SeverityLowPercent
	flag.Applicable = true
	flag.Blocked = participant.Percent < acceptable && leaderSelf.Percent < acceptable
	return flag
}

func (g *GapAnalyzer) band(distance float64) model.GapSeverity {
	r := g.cfg.Range()
	switch {
	case distance < g.cfg.Thresholds.GapModerate*r:
		return model.GapNone
	case distance < g.cfg.Thresholds.GapSignificant*r:
		return model.GapModerate
	default:
		return model.GapSignificant
	}
}

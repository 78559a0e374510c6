package report

import (
	"context"

	"go.uber.org/zap"

	"frictionlens/internal/config"
	"frictionlens/internal/diagnose"
	"frictionlens/internal/model"
	"frictionlens/internal/recommend"
	"frictionlens/internal/scoring"
)

// Scope bounds one analysis request: one assessment for one organizational
// unit, or an aggregated subtree. The engine treats it as opaque; the
// response source decides what it selects.
type Scope struct {
	AssessmentID string `json:"assessmentId"`
	Unit         string `json:"unit,omitempty"`
}

// ResponseSource yields the response snapshot for one scope. The snapshot
// must not change mid-computation; a consistent read is the source's
// responsibility, not the engine's.
type ResponseSource interface {
	Responses(ctx context.Context, scope Scope) ([]model.Response, error)
}

// ReportService runs the full scoring pipeline: normalize, aggregate,
// diagnose, recommend, profile. It holds no mutable state, so one service
// may be shared by any number of concurrent callers.
type ReportService struct {
	cfg           *config.Config
	questionnaire *config.Questionnaire
	source        ResponseSource

	normalizer   *scoring.Normalizer
	aggregator   *scoring.Aggregator
	dispersion   *scoring.Dispersion
	gaps         *diagnose.GapAnalyzer
	substitution *diagnose.SubstitutionDetector
	prioritizer  *recommend.Prioritizer
	profiler     *recommend.Profiler

	logger *zap.Logger
}

// NewReportService wires the pipeline. A bad configuration, such as an
// invalid scale or a bias map referencing unknown questions, fails here before any
// respondent is processed.
func NewReportService(cfg *config.Config, questionnaire *config.Questionnaire, biasMap *config.BiasMap, source ResponseSource, logger *zap.Logger) (*ReportService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	detector, err := diagnose.NewSubstitutionDetector(cfg, questionnaire, biasMap)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		cfg:           cfg,
		questionnaire: questionnaire,
		source:        source,
		normalizer:    scoring.NewNormalizer(cfg),
		aggregator:    scoring.NewAggregator(cfg),
		dispersion:    scoring.NewDispersion(cfg),
		gaps:          diagnose.NewGapAnalyzer(cfg),
		substitution:  detector,
		prioritizer:   recommend.NewPrioritizer(cfg),
		profiler:      recommend.NewProfiler(cfg),
		logger:        logger,
	}, nil
}

// roles lists every role in report order.
var roles = []model.Role{model.RoleParticipant, model.RoleLeaderAssessing, model.RoleLeaderSelf}

// Generate computes one assessment report. It is a pure function of the
// source's snapshot: identical responses yield an identical report. A
// failure here is scoped to this invocation and never poisons other
// assessments.
func (s *ReportService) Generate(ctx context.Context, scope Scope) (*model.AssessmentReport, error) {
	responses, err := s.source.Responses(ctx, scope)
	if err != nil {
		return nil, err
	}

	normalized, err := s.normalizer.NormalizeAll(s.questionnaire, responses)
	if err != nil {
		s.logger.Warn("assessment rejected",
			zap.String("assessment", scope.AssessmentID),
			zap.Error(err))
		return nil, err
	}

	report := &model.AssessmentReport{
		AssessmentID: scope.AssessmentID,
		ScalePoints:  s.cfg.ScalePoints,
	}

	byRole := make(map[model.Role][]model.FieldScore, len(roles))
	spreadsByField := make(map[model.Field]model.Spread, len(model.FieldOrder))
	for _, role := range roles {
		scores := s.aggregator.ScoreTable(role, normalized)
		byRole[role] = scores
		report.FieldScores = append(report.FieldScores, scores...)
		for _, field := range model.FieldOrder {
			spread := s.dispersion.Spread(field, role, normalized)
			report.Spreads = append(report.Spreads, spread)
			if role == model.RoleParticipant {
				spreadsByField[field] = spread
			}
		}
	}

	for i, field := range model.FieldOrder {
		participant := byRole[model.RoleParticipant][i]
		for _, leaderRole := range []model.Role{model.RoleLeaderAssessing, model.RoleLeaderSelf} {
			gap, err := s.gaps.Compare(participant, scoreFor(byRole[leaderRole], field))
			if err != nil {
				return nil, err
			}
			report.Gaps = append(report.Gaps, gap)
		}
		report.LeaderBlocked = append(report.LeaderBlocked,
			s.gaps.LeaderBlocked(participant, scoreFor(byRole[model.RoleLeaderSelf], field)))
	}

	report.Substitution = s.substitution.Detect(normalized)
	report.Recommendation = s.prioritizer.Prioritize(byRole[model.RoleParticipant], spreadsByField)
	report.Profile = s.profiler.Classify(byRole[model.RoleParticipant])

	s.logger.Info("assessment analyzed",
		zap.String("assessment", scope.AssessmentID),
		zap.Int("responses", len(responses)),
		zap.String("recommendation", string(report.Recommendation.Status)),
		zap.String("profile", string(report.Profile)))
	return report, nil
}

func scoreFor(scores []model.FieldScore, field model.Field) model.FieldScore {
	for _, s := range scores {
		if s.Field == field {
			return s
		}
	}
	return model.FieldScore{Field: field}
}

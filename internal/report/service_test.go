package report

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frictionlens/internal/config"
	"frictionlens/internal/model"
)

type sliceSource struct {
	responses []model.Response
}

func (s *sliceSource) Responses(_ context.Context, _ Scope) ([]model.Response, error) {
	return s.responses, nil
}

func testQuestionnaire(t *testing.T) *config.Questionnaire {
	t.Helper()
	q, err := config.NewQuestionnaire("test", []model.Question{
		{ID: "m1", Field: model.FieldMeaning},
		{ID: "s1", Field: model.FieldSafety},
		{ID: "c1", Field: model.FieldCapability},
		{ID: "h1", Field: model.FieldHassle},
		{ID: "h2", Field: model.FieldHassle, ReverseScored: true},
	})
	require.NoError(t, err)
	return q
}

func testBiasMap() *config.BiasMap {
	return &config.BiasMap{
		ScarcityQuestion:    "h1",
		MechanicalQuestions: []string{"h2"},
		UnderlyingQuestions: []string{"m1", "s1", "c1"},
	}
}

func answers(respondent string, role model.Role, raws map[string]int) []model.Response {
	out := make([]model.Response, 0, len(raws))
	for _, qid := range []string{"m1", "s1", "c1", "h1", "h2"} {
		if raw, ok := raws[qid]; ok {
			out = append(out, model.Response{
				RespondentID: respondent, QuestionID: qid, RawScore: raw, Role: role,
			})
		}
	}
	return out
}

func sampleResponses() []model.Response {
	var rs []model.Response
	rs = append(rs, answers("p1", model.RoleParticipant,
		map[string]int{"m1": 2, "s1": 3, "c1": 4, "h1": 5, "h2": 3})...)
	rs = append(rs, answers("p2", model.RoleParticipant,
		map[string]int{"m1": 3, "s1": 3, "c1": 5, "h1": 6, "h2": 2})...)
	rs = append(rs, answers("lead", model.RoleLeaderAssessing,
		map[string]int{"m1": 5, "s1": 5, "c1": 5, "h1": 5, "h2": 3})...)
	rs = append(rs, answers("lead", model.RoleLeaderSelf,
		map[string]int{"m1": 3, "s1": 6, "c1": 6, "h1": 6, "h2": 2})...)
	return rs
}

func newService(t *testing.T, responses []model.Response) *ReportService {
	t.Helper()
	svc, err := NewReportService(config.Default(), testQuestionnaire(t), testBiasMap(),
		&sliceSource{responses: responses}, nil)
	require.NoError(t, err)
	return svc
}

func TestGenerate_FullPipeline(t *testing.T) {
	svc := newService(t, sampleResponses())
	report, err := svc.Generate(context.Background(), Scope{AssessmentID: "a-1"})
	require.NoError(t, err)

	assert.Equal(t, "a-1", report.AssessmentID)
	assert.Equal(t, 7, report.ScalePoints)
	assert.Len(t, report.FieldScores, 12) // 4 fields × 3 roles
	assert.Len(t, report.Spreads, 12)
	assert.Len(t, report.Gaps, 8) // 4 fields × 2 leader comparisons
	assert.Len(t, report.LeaderBlocked, 4)

	// Participants put MEANING at mean 2.5 = 25%: the worst field.
	participantMeaning := report.FieldScores[0]
	assert.Equal(t, model.FieldMeaning, participantMeaning.Field)
	assert.Equal(t, model.RoleParticipant, participantMeaning.Role)
	assert.InDelta(t, 2.5, participantMeaning.Mean, 1e-9)
	assert.InDelta(t, 25.0, participantMeaning.Percent, 1e-9)

	require.Equal(t, model.RecommendationSingle, report.Recommendation.Status)
	require.Len(t, report.Recommendation.Recommendations, 1)
	top := report.Recommendation.Recommendations[0]
	assert.Equal(t, model.FieldMeaning, top.Field)
	assert.Equal(t, model.SeverityHigh, top.Severity)
	assert.Equal(t, model.GovernanceDirection, top.Governance)
	assert.NotEmpty(t, top.Template.Actions)

	assert.Equal(t, model.ProfileMeaningDeficit, report.Profile)

	// The leader's own MEANING sits below acceptable too.
	assert.True(t, report.LeaderBlocked[0].Applicable)
	assert.True(t, report.LeaderBlocked[0].Blocked)
	assert.False(t, report.LeaderBlocked[1].Blocked)

	// Leadership sees the group's MEANING far rosier than the group does.
	meaningGap := report.Gaps[0]
	assert.Equal(t, model.FieldMeaning, meaningGap.Field)
	assert.Equal(t, model.RoleLeaderAssessing, meaningGap.RoleB)
	assert.Equal(t, model.GapSignificant, meaningGap.Severity)
	assert.Equal(t, model.RoleLeaderAssessing, meaningGap.HigherRole)

	assert.Equal(t, 2, report.Substitution.Evaluated)
	assert.Zero(t, report.Substitution.Flagged)
	assert.False(t, report.Substitution.Warning)
}

func TestGenerate_Idempotent(t *testing.T) {
	svc := newService(t, sampleResponses())

	first, err := svc.Generate(context.Background(), Scope{AssessmentID: "a-1"})
	require.NoError(t, err)
	second, err := svc.Generate(context.Background(), Scope{AssessmentID: "a-1"})
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(first, second))
}

func TestGenerate_EmptySnapshotDegradesGracefully(t *testing.T) {
	svc := newService(t, nil)
	report, err := svc.Generate(context.Background(), Scope{AssessmentID: "empty"})
	require.NoError(t, err)

	assert.Equal(t, model.RecommendationInsufficientData, report.Recommendation.Status)
	assert.Equal(t, model.ProfileInsufficientData, report.Profile)
	assert.Zero(t, report.Substitution.Evaluated)
	for _, gap := range report.Gaps {
		assert.Equal(t, model.GapNotApplicable, gap.Severity)
	}
	for _, flag := range report.LeaderBlocked {
		assert.False(t, flag.Applicable)
	}
	for _, score := range report.FieldScores {
		assert.False(t, score.HasData())
	}
}

func TestGenerate_InvalidResponseFailsOnlyThisScope(t *testing.T) {
	bad := append(sampleResponses(), model.Response{
		RespondentID: "p3", QuestionID: "m1", RawScore: 9, Role: model.RoleParticipant,
	})
	svc := newService(t, bad)

	_, err := svc.Generate(context.Background(), Scope{AssessmentID: "a-1"})
	require.Error(t, err)
	assert.True(t, model.IsInvalidInput(err))

	// The same service keeps working for a clean snapshot.
	clean := newService(t, sampleResponses())
	_, err = clean.Generate(context.Background(), Scope{AssessmentID: "a-2"})
	assert.NoError(t, err)
}

func TestNewReportService_BadSetupFailsFast(t *testing.T) {
	t.Run("bias map referencing a removed question", func(t *testing.T) {
		m := testBiasMap()
		m.ScarcityQuestion = "gone"
		_, err := NewReportService(config.Default(), testQuestionnaire(t), m, &sliceSource{}, nil)
		require.Error(t, err)
		assert.True(t, model.IsConfiguration(err))
	})

	t.Run("broken scale", func(t *testing.T) {
		cfg := config.Default()
		cfg.ScalePoints = 0
		_, err := NewReportService(cfg, testQuestionnaire(t), testBiasMap(), &sliceSource{}, nil)
		require.Error(t, err)
		assert.True(t, model.IsConfiguration(err))
	})
}

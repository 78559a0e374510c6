package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frictionlens/internal/config"
	"frictionlens/internal/model"
)

func sevenPoint() *config.Config {
	cfg := config.Default()
	cfg.ScalePoints = 7
	return cfg
}

func TestAdjust_ReverseScoring(t *testing.T) {
	n := NewNormalizer(sevenPoint())

	t.Run("identity without reverse flag", func(t *testing.T) {
		for raw := 1; raw <= 7; raw++ {
			got, err := n.Adjust(raw, false)
			require.NoError(t, err)
			assert.Equal(t, raw, got)
		}
	})

	t.Run("mirror with reverse flag", func(t *testing.T) {
		got, err := n.Adjust(6, true)
		require.NoError(t, err)
		assert.Equal(t, 2, got)

		got, err = n.Adjust(1, true)
		require.NoError(t, err)
		assert.Equal(t, 7, got)

		got, err = n.Adjust(7, true)
		require.NoError(t, err)
		assert.Equal(t, 1, got)
	})

	t.Run("stays in range for every raw score", func(t *testing.T) {
		for raw := 1; raw <= 7; raw++ {
			got, err := n.Adjust(raw, true)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got, 1)
			assert.LessOrEqual(t, got, 7)
		}
	})
}

func TestAdjust_OutOfRange(t *testing.T) {
	n := NewNormalizer(sevenPoint())
	for _, raw := range []int{0, -3, 8, 100} {
		_, err := n.Adjust(raw, false)
		require.Error(t, err)
		assert.True(t, model.IsInvalidInput(err))
	}
}

func TestNormalizeAll(t *testing.T) {
	questionnaire, err := config.NewQuestionnaire("test", []model.Question{
		{ID: "q1", Field: model.FieldMeaning},
		{ID: "q2", Field: model.FieldHassle, ReverseScored: true},
	})
	require.NoError(t, err)
	n := NewNormalizer(sevenPoint())

	t.Run("resolves field and applies reverse scoring", func(t *testing.T) {
		out, err := n.NormalizeAll(questionnaire, []model.Response{
			{RespondentID: "a", QuestionID: "q1", RawScore: 4, Role: model.RoleParticipant},
			{RespondentID: "a", QuestionID: "q2", RawScore: 6, Role: model.RoleParticipant},
		})
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, model.FieldMeaning, out[0].Field)
		assert.Equal(t, 4, out[0].Adjusted)
		assert.Equal(t, model.FieldHassle, out[1].Field)
		assert.Equal(t, 2, out[1].Adjusted)
	})

	t.Run("unknown question fails the batch", func(t *testing.T) {
		_, err := n.NormalizeAll(questionnaire, []model.Response{
			{RespondentID: "a", QuestionID: "nope", RawScore: 4, Role: model.RoleParticipant},
		})
		require.Error(t, err)
		assert.True(t, model.IsInvalidInput(err))
	})

	t.Run("unknown role fails the batch", func(t *testing.T) {
		_, err := n.NormalizeAll(questionnaire, []model.Response{
			{RespondentID: "a", QuestionID: "q1", RawScore: 4, Role: "OBSERVER"},
		})
		require.Error(t, err)
		assert.True(t, model.IsInvalidInput(err))
	})
}

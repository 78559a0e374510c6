package scoring

import (
	"frictionlens/internal/config"
	"frictionlens/internal/model"
)

// Normalizer applies reverse-scoring against a fixed scale bound so that a
// higher adjusted score always means less friction.
type Normalizer struct {
	cfg *config.Config
}

// NewNormalizer creates a normalizer for one scale configuration.
func NewNormalizer(cfg *config.Config) *Normalizer {
	return &Normalizer{cfg: cfg}
}

// Adjust maps a raw score to its adjusted value. Out-of-range raw scores are
// a caller contract violation and return InvalidInputError, never a clamped
// value, since clamping would corrupt severity classification downstream.
func (n *Normalizer) Adjust(raw int, reverseScored bool) (int, error) {
	if raw < 1 || raw > n.cfg.ScalePoints {
		return 0, model.NewInvalidInputError("raw score %d outside scale [1, %d]", raw, n.cfg.ScalePoints)
	}
	if reverseScored {
		return n.cfg.ScalePoints + 1 - raw, nil
	}
	return raw, nil
}

// NormalizeAll resolves every response against the questionnaire and adjusts
// it. The first invalid response fails the whole batch.
func (n *Normalizer) NormalizeAll(questionnaire *config.Questionnaire, responses []model.Response) ([]model.NormalizedResponse, error) {
	out := make([]model.NormalizedResponse, 0, len(responses))
	for _, r := range responses {
		question, ok := questionnaire.Lookup(r.QuestionID)
		if !ok {
			return nil, model.NewInvalidInputError("response from %q references unknown question %q", r.RespondentID, r.QuestionID)
		}
		if !r.Role.Valid() {
			return nil, model.NewInvalidInputError("response from %q has unknown role %q", r.RespondentID, r.Role)
		}
		adjusted, err := n.Adjust(r.RawScore, question.ReverseScored)
		if err != nil {
			return nil, err
		}
		out = append(out, model.NormalizedResponse{
			Response: r,
			Field:    question.Field,
			Adjusted: adjusted,
		})
	}
	return out, nil
}

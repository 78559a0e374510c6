package diagnose

import (
	"sort"

	"github.com/montanaflynn/stats"

	"frictionlens/internal/config"
	"frictionlens/internal/model"
)

// SubstitutionDetector flags a known cognitive-substitution pattern:
// respondents who are dissatisfied on a harder-to-articulate dimension
// over-report "lack of time" instead. The tell is a contradiction: a high
// scarcity score next to a low mechanical-friction score, while the
// designated underlying-satisfaction questions still land in the acceptable
// band.
type SubstitutionDetector struct {
	cfg     *config.Config
	biasMap *config.BiasMap

	mechanical map[string]bool
	underlying map[string]bool
}

// NewSubstitutionDetector validates the bias question map against the
// questionnaire so a broken mapping fails at setup, not halfway through a
// respondent loop.
func NewSubstitutionDetector(cfg *config.Config, questionnaire *config.Questionnaire, biasMap *config.BiasMap) (*SubstitutionDetector, error) {
	if err := biasMap.Validate(questionnaire); err != nil {
		return nil, err
	}
	d := &SubstitutionDetector{
		cfg:        cfg,
		biasMap:    biasMap,
		mechanical: make(map[string]bool, len(biasMap.MechanicalQuestions)),
		underlying: make(map[string]bool, len(biasMap.UnderlyingQuestions)),
	}
	for _, id := range biasMap.MechanicalQuestions {
		d.mechanical[id] = true
	}
	for _, id := range biasMap.UnderlyingQuestions {
		d.underlying[id] = true
	}
	return d, nil
}

// Detect evaluates every PARTICIPANT respondent in the normalized set. A
// respondent must have answered the scarcity question, at least one
// mechanical question and at least one underlying question to be evaluated;
// anyone else is counted as skipped, never guessed at.
func (d *SubstitutionDetector) Detect(normalized []model.NormalizedResponse) model.SubstitutionResult {
	byRespondent := make(map[string][]model.NormalizedResponse)
	for _, r := range normalized {
		if r.Role != model.RoleParticipant {
			continue
		}
		byRespondent[r.RespondentID] = append(byRespondent[r.RespondentID], r)
	}

	ids := make([]string, 0, len(byRespondent))
	for id := range byRespondent {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	result := model.SubstitutionResult{}
	for _, id := range ids {
		bias, ok := d.evaluate(id, byRespondent[id])
		if !ok {
			result.Skipped++
			continue
		}
		result.Evaluated++
		if bias.Flagged {
			result.Flagged++
		}
		result.Respondents = append(result.Respondents, bias)
	}
	if result.Evaluated > 0 {
		result.Proportion = float64(result.Flagged) / float64(result.Evaluated)
	}
	result.Warning = result.Flagged >= d.cfg.Thresholds.MinFlaggedRespondents
	return result
}

func (d *SubstitutionDetector) evaluate(id string, responses []model.NormalizedResponse) (model.RespondentBias, bool) {
	var scarcity, mechanical, underlying []float64
	for _, r := range responses {
		v := float64(r.Adjusted)
		switch {
		case r.QuestionID == d.biasMap.ScarcityQuestion:
			scarcity = append(scarcity, v)
		case d.mechanical[r.QuestionID]:
			mechanical = append(mechanical, v)
		case d.underlying[r.QuestionID]:
			underlying = append(underlying, v)
		}
	}
	if len(scarcity) == 0 || len(mechanical) == 0 || len(underlying) == 0 {
		return model.RespondentBias{}, false
	}

	// Corrections are new responses, so a question may appear more than once
	// for one respondent; each index averages its question's answers.
	scarcityIndex, _ := stats.Mean(scarcity)
	mechanicalIndex, _ := stats.Mean(mechanical)
	latentIndex, _ := stats.Max(underlying)

	delta := scarcityIndex - mechanicalIndex
	deltaFloor := d.cfg.Thresholds.BiasDelta * d.cfg.Range()
	latentFloor := d.cfg.Thresholds.BiasLatent*float64(d.cfg.ScalePoints-1) + 1

	return model.RespondentBias{
		RespondentID: id,
		Scarcity:     scarcityIndex,
		Mechanical:   mechanicalIndex,
		Delta:        delta,
		Latent:       latentIndex,
		Flagged:      delta >= deltaFloor && latentIndex >= latentFloor,
	}, true
}

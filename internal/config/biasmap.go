package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"frictionlens/internal/model"
)

// BiasMap pins the substitution-bias detector to concrete question IDs. It is
// configuration, not computation, and must be versioned alongside the
// questionnaire: renaming a question without updating this map would silently
// break the detector, so Validate cross-checks every ID up front.
type BiasMap struct {
	// ScarcityQuestion is the single designated "lack of time" question.
	ScarcityQuestion string `yaml:"scarcity_question"`

	// MechanicalQuestions are the designated process-friction questions whose
	// mean forms the mechanical friction index.
	MechanicalQuestions []string `yaml:"mechanical_questions"`

	// UnderlyingQuestions are the designated underlying-satisfaction
	// questions, one per field that loads on meaning, safety or capability.
	// The latent dissatisfaction index is the max adjusted score among them.
	UnderlyingQuestions []string `yaml:"underlying_questions"`
}

// LoadBiasMap reads a bias question map from a YAML file. Validation against
// the questionnaire happens separately, once both are loaded.
func LoadBiasMap(path string) (*BiasMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bias map: %w", err)
	}
	var m BiasMap
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse bias map: %w", err)
	}
	return &m, nil
}

// Validate cross-checks the map against the questionnaire.
func (m *BiasMap) Validate(q *Questionnaire) error {
	if m.ScarcityQuestion == "" {
		return model.NewConfigurationError("bias map has no scarcity question")
	}
	if len(m.MechanicalQuestions) == 0 {
		return model.NewConfigurationError("bias map has no mechanical friction questions")
	}
	if len(m.UnderlyingQuestions) == 0 {
		return model.NewConfigurationError("bias map has no underlying satisfaction questions")
	}
	if _, ok := q.Lookup(m.ScarcityQuestion); !ok {
		return model.NewConfigurationError("scarcity question %q is not in the questionnaire", m.ScarcityQuestion)
	}
	for _, id := range m.MechanicalQuestions {
		if _, ok := q.Lookup(id); !ok {
			return model.NewConfigurationError("mechanical friction question %q is not in the questionnaire", id)
		}
	}
	for _, id := range m.UnderlyingQuestions {
		if _, ok := q.Lookup(id); !ok {
			return model.NewConfigurationError("underlying satisfaction question %q is not in the questionnaire", id)
		}
	}
	return nil
}

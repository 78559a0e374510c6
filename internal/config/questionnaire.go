package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"frictionlens/internal/model"
)

// Questionnaire is the versioned question set an assessment runs against.
type Questionnaire struct {
	Version   string           `yaml:"version"`
	Questions []model.Question `yaml:"questions"`

	byID map[string]model.Question
}

// LoadQuestionnaire reads and validates a questionnaire from a YAML file.
func LoadQuestionnaire(path string) (*Questionnaire, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read questionnaire: %w", err)
	}
	var q Questionnaire
	if err := yaml.Unmarshal(data, &q); err != nil {
		return nil, fmt.Errorf("parse questionnaire: %w", err)
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return &q, nil
}

// NewQuestionnaire builds a questionnaire from an in-memory question set.
func NewQuestionnaire(version string, questions []model.Question) (*Questionnaire, error) {
	q := &Questionnaire{Version: version, Questions: questions}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return q, nil
}

// Validate checks IDs and field tags and rebuilds the lookup index.
func (q *Questionnaire) Validate() error {
	if len(q.Questions) == 0 {
		return model.NewConfigurationError("questionnaire has no questions")
	}
	q.byID = make(map[string]model.Question, len(q.Questions))
	for _, item := range q.Questions {
		if item.ID == "" {
			return model.NewConfigurationError("questionnaire contains a question without an id")
		}
		if _, dup := q.byID[item.ID]; dup {
			return model.NewConfigurationError("duplicate question id %q", item.ID)
		}
		if !item.Field.Valid() {
			return model.NewConfigurationError("question %q has unknown field %q", item.ID, item.Field)
		}
		if item.Layer != "" && item.Layer != model.LayerOuter && item.Layer != model.LayerInner {
			return model.NewConfigurationError("question %q has unknown layer %q", item.ID, item.Layer)
		}
		q.byID[item.ID] = item
	}
	return nil
}

// Lookup returns the question with the given ID.
func (q *Questionnaire) Lookup(id string) (model.Question, bool) {
	item, ok := q.byID[id]
	return item, ok
}

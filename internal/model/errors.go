package model

import (
	"errors"
	"fmt"
)

// InvalidInputError reports a caller contract violation: a raw score outside
// the scale, an unknown field or role tag, or a response referencing a
// question that is not in the questionnaire. It always fails the whole
// analysis for that scope. Scores are never silently clamped.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

// NewInvalidInputError builds an InvalidInputError with a formatted reason.
func NewInvalidInputError(format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}

// IsInvalidInput reports whether err is (or wraps) an InvalidInputError.
func IsInvalidInput(err error) bool {
	var e *InvalidInputError
	return errors.As(err, &e)
}

// ConfigurationError reports a broken engine setup, such as a bias question
// map referencing a question ID absent from the questionnaire. It is raised
// at construction time, never inside a respondent loop.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// NewConfigurationError builds a ConfigurationError with a formatted reason.
func NewConfigurationError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// IsConfiguration reports whether err is (or wraps) a ConfigurationError.
func IsConfiguration(err error) bool {
	var e *ConfigurationError
	return errors.As(err, &e)
}

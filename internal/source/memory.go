package source

import (
	"context"

	"frictionlens/internal/model"
	"frictionlens/internal/report"
)

// MemorySource serves a fixed in-memory response set. The engine never
// mutates what it is given, so the same source can back any number of
// concurrent analyses.
type MemorySource struct {
	responses []model.Response
}

// NewMemorySource creates a source over a fixed response slice.
func NewMemorySource(responses []model.Response) *MemorySource {
	return &MemorySource{responses: responses}
}

// Responses returns the snapshot unchanged, regardless of scope.
func (s *MemorySource) Responses(_ context.Context, _ report.Scope) ([]model.Response, error) {
	return s.responses, nil
}

// Package source provides ResponseSource implementations for callers that do
// not bring their own: a JSON snapshot file for the CLI and an in-memory
// slice for tests and embedders. Anything heavier, such as a database or a
// warehouse export, belongs to the surrounding application.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"frictionlens/internal/model"
	"frictionlens/internal/report"
)

// Snapshot is the on-disk shape of a response set: one assessment's
// responses, frozen at export time.
type Snapshot struct {
	AssessmentID string           `json:"assessmentId"`
	Unit         string           `json:"unit,omitempty"`
	Responses    []model.Response `json:"responses"`
}

// FileSource reads a response snapshot from a JSON file.
type FileSource struct {
	path string
}

// NewFileSource creates a source backed by a snapshot file.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Responses loads the snapshot and checks it against the requested scope. A
// scope naming a different assessment than the file holds is a caller error.
func (s *FileSource) Responses(_ context.Context, scope report.Scope) ([]model.Response, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	if scope.AssessmentID != "" && scope.AssessmentID != snapshot.AssessmentID {
		return nil, model.NewInvalidInputError("snapshot holds assessment %q, scope asked for %q", snapshot.AssessmentID, scope.AssessmentID)
	}
	return snapshot.Responses, nil
}

// WriteSnapshot saves a snapshot as indented JSON.
func WriteSnapshot(path string, snapshot *Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

package source

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frictionlens/internal/model"
	"frictionlens/internal/report"
)

func TestFileSource_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	snapshot := &Snapshot{
		AssessmentID: "a-42",
		Responses: []model.Response{
			{RespondentID: "p1", QuestionID: "q1", RawScore: 4, Role: model.RoleParticipant},
			{RespondentID: "p1", QuestionID: "q2", RawScore: 6, Role: model.RoleParticipant},
		},
	}
	require.NoError(t, WriteSnapshot(path, snapshot))

	got, err := NewFileSource(path).Responses(context.Background(), report.Scope{AssessmentID: "a-42"})
	require.NoError(t, err)
	assert.Equal(t, snapshot.Responses, got)
}

func TestFileSource_ScopeMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, WriteSnapshot(path, &Snapshot{AssessmentID: "a-1"}))

	src := NewFileSource(path)

	_, err := src.Responses(context.Background(), report.Scope{AssessmentID: "other"})
	require.Error(t, err)
	assert.True(t, model.IsInvalidInput(err))

	// An empty scope accepts whatever assessment the file holds.
	_, err = src.Responses(context.Background(), report.Scope{})
	assert.NoError(t, err)
}

func TestFileSource_MissingFile(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "absent.json")).
		Responses(context.Background(), report.Scope{})
	assert.Error(t, err)
}

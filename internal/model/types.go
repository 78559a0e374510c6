package model

// Field is one of the four latent constructs an assessment measures.
type Field string

const (
	FieldMeaning    Field = "MEANING"
	FieldSafety     Field = "SAFETY"
	FieldCapability Field = "CAPABILITY"
	FieldHassle     Field = "HASSLE"
)

// FieldOrder is the canonical field order, used for presentation and as the
// final tie-break in ranking.
var FieldOrder = []Field{FieldMeaning, FieldSafety, FieldCapability, FieldHassle}

// Valid reports whether f is a known field.
func (f Field) Valid() bool {
	switch f {
	case FieldMeaning, FieldSafety, FieldCapability, FieldHassle:
		return true
	}
	return false
}

// OrderIndex returns f's position in the canonical field order.
func (f Field) OrderIndex() int {
	for i, other := range FieldOrder {
		if f == other {
			return i
		}
	}
	return len(FieldOrder)
}

// Role identifies who answered a question.
type Role string

const (
	RoleParticipant     Role = "PARTICIPANT"
	RoleLeaderAssessing Role = "LEADER_ASSESSING_GROUP"
	RoleLeaderSelf      Role = "LEADER_SELF"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleParticipant, RoleLeaderAssessing, RoleLeaderSelf:
		return true
	}
	return false
}

// Layer tags whether a question probes the visible process (outer) or the
// lived experience behind it (inner).
type Layer string

const (
	LayerOuter Layer = "outer"
	LayerInner Layer = "inner"
)

// Question is one item in the questionnaire.
type Question struct {
	ID            string `json:"id" yaml:"id"`
	Field         Field  `json:"field" yaml:"field"`
	ReverseScored bool   `json:"reverseScored" yaml:"reverse_scored"`
	Layer         Layer  `json:"layer,omitempty" yaml:"layer,omitempty"`
	Prompt        string `json:"prompt,omitempty" yaml:"prompt,omitempty"`
}

// Response is one recorded answer. Responses are append-only: a correction is
// a new response, never an edit to an existing one.
type Response struct {
	RespondentID string `json:"respondentId"`
	QuestionID   string `json:"questionId"`
	RawScore     int    `json:"rawScore"`
	Role         Role   `json:"role"`
}

// NormalizedResponse is a response with reverse-scoring applied. A higher
// adjusted score always means less friction, regardless of field.
type NormalizedResponse struct {
	Response
	Field    Field `json:"field"`
	Adjusted int   `json:"adjusted"`
}

// FieldScore is the aggregate score for one field within one role.
// ResponseCount 0 is the "no data" sentinel; Mean and Percent are zero and
// must not be read as real scores in that case.
type FieldScore struct {
	Field         Field   `json:"field"`
	Role          Role    `json:"role"`
	Mean          float64 `json:"mean"`
	Percent       float64 `json:"percent"`
	ResponseCount int     `json:"responseCount"`
}

// HasData reports whether the score was computed from at least one response.
func (s FieldScore) HasData() bool {
	return s.ResponseCount > 0
}

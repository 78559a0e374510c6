package model

// AssessmentReport is the fully materialized output of one analysis
// invocation. It carries no timestamps and no identity beyond the scope it
// was computed for, so re-running the pipeline on an unchanged response set
// yields an identical report.
type AssessmentReport struct {
	AssessmentID string `json:"assessmentId"`
	ScalePoints  int    `json:"scalePoints"`

	// FieldScores holds one entry per (field, role) pair in canonical field
	// order, including no-data sentinels.
	FieldScores []FieldScore `json:"fieldScores"`

	// Spreads holds the per-role dispersion for every field.
	Spreads []Spread `json:"spreads"`

	// Gaps compares PARTICIPANT against each leader role per field.
	Gaps []Gap `json:"gaps"`

	// LeaderBlocked flags fields where the leader shares the group's friction.
	LeaderBlocked []LeaderBlocked `json:"leaderBlocked"`

	Substitution   SubstitutionResult   `json:"substitution"`
	Recommendation RecommendationResult `json:"recommendation"`
	Profile        Profile              `json:"profile"`
}

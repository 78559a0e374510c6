package model

// SpreadBand classifies intra-group disagreement.
type SpreadBand string

const (
	SpreadLow    SpreadBand = "LOW"
	SpreadMedium SpreadBand = "MEDIUM"
	SpreadHigh   SpreadBand = "HIGH"
)

// Spread is the response dispersion for one field within one role. Sigma is
// the population standard deviation rounded to two decimals; fewer than two
// responses yield sigma 0 by policy so downstream ranking never branches on
// a missing value.
type Spread struct {
	Field         Field      `json:"field"`
	Role          Role       `json:"role"`
	Sigma         float64    `json:"sigma"`
	Band          SpreadBand `json:"band"`
	ResponseCount int        `json:"responseCount"`
}

// GapSeverity classifies the distance between two roles' aggregates.
type GapSeverity string

const (
	GapNone          GapSeverity = "NONE"
	GapModerate      GapSeverity = "MODERATE"
	GapSignificant   GapSeverity = "SIGNIFICANT"
	GapNotApplicable GapSeverity = "NOT_APPLICABLE"
)

// Gap compares two roles' aggregate score for the same field. Gap is the
// unsigned distance; HigherRole keeps the sign so the caller can tell whether
// leadership under- or overestimates the problem. Applicable is false when
// either side has no responses.
type Gap struct {
	Field      Field       `json:"field"`
	RoleA      Role        `json:"roleA"`
	RoleB      Role        `json:"roleB"`
	Gap        float64     `json:"gap"`
	GapPercent float64     `json:"gapPercent"`
	Severity   GapSeverity `json:"severity"`
	HigherRole Role        `json:"higherRole,omitempty"`
	Applicable bool        `json:"applicable"`
}

// LeaderBlocked marks a field where the leader reports the same friction as
// the group and is therefore structurally unable to help resolve it.
type LeaderBlocked struct {
	Field      Field `json:"field"`
	Blocked    bool  `json:"blocked"`
	Applicable bool  `json:"applicable"`
}

// RespondentBias holds the per-respondent substitution indices.
type RespondentBias struct {
	RespondentID string  `json:"respondentId"`
	Scarcity     float64 `json:"scarcity"`
	Mechanical   float64 `json:"mechanical"`
	Delta        float64 `json:"delta"`
	Latent       float64 `json:"latent"`
	Flagged      bool    `json:"flagged"`
}

// SubstitutionResult aggregates substitution-bias flags across a group.
// Evaluated counts respondents with enough answers to compute the indices;
// Skipped counts those without. Warning is informational only; suppression
// thresholds belong to the presentation layer.
type SubstitutionResult struct {
	Evaluated   int              `json:"evaluated"`
	Skipped     int              `json:"skipped"`
	Flagged     int              `json:"flagged"`
	Proportion  float64          `json:"proportion"`
	Warning     bool             `json:"warning"`
	Respondents []RespondentBias `json:"respondents,omitempty"`
}

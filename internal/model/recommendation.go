package model

// Severity bands a field's aggregate score. HIGH means the most friction.
type Severity string

const (
	SeverityHigh   Severity = "HIGH"
	SeverityMedium Severity = "MEDIUM"
	SeverityLow    Severity = "LOW"
)

// rank orders severities for sorting; lower is more severe.
func (s Severity) rank() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	default:
		return 2
	}
}

// MoreSevereThan reports whether s outranks other.
func (s Severity) MoreSevereThan(other Severity) bool {
	return s.rank() < other.rank()
}

// GovernanceArea groups recommendations under a fixed four-value governance
// framework. It is presentation grouping only and plays no part in ranking.
type GovernanceArea string

const (
	GovernanceDirection    GovernanceArea = "DIRECTION"
	GovernanceCoordination GovernanceArea = "COORDINATION"
	GovernanceCommitment   GovernanceArea = "COMMITMENT"
)

// ActionTemplate is the structured action plan attached to a recommendation.
type ActionTemplate struct {
	Problem  string   `json:"problem"`
	Actions  []string `json:"actions"`
	FollowUp string   `json:"followUp"`
}

// Recommendation is one prioritized field with its action plan.
type Recommendation struct {
	Field      Field          `json:"field"`
	Severity   Severity       `json:"severity"`
	Mean       float64        `json:"mean"`
	Percent    float64        `json:"percent"`
	Sigma      float64        `json:"sigma"`
	Governance GovernanceArea `json:"governance"`
	Template   ActionTemplate `json:"template"`
}

// RecommendationStatus describes the shape of a prioritization outcome.
type RecommendationStatus string

const (
	// RecommendationSingle means one clear top recommendation was selected.
	RecommendationSingle RecommendationStatus = "SINGLE"
	// RecommendationTied means the restricted fields are indistinguishable;
	// the caller should render "choose based on context".
	RecommendationTied RecommendationStatus = "TIED"
	// RecommendationNoAction means every field scored in the acceptable band.
	RecommendationNoAction RecommendationStatus = "NO_ACTION"
	// RecommendationInsufficientData means no field had any responses.
	RecommendationInsufficientData RecommendationStatus = "INSUFFICIENT_DATA"
)

// RecommendationResult is the prioritizer output: a single recommendation, a
// tied list, or one of the two empty outcomes.
type RecommendationResult struct {
	Status          RecommendationStatus `json:"status"`
	Recommendations []Recommendation     `json:"recommendations,omitempty"`
}

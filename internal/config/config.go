package config

import (
	"math"
	"os"
	"strconv"

	"frictionlens/internal/model"
)

// Thresholds expresses every classification cutoff as a fraction of the scale
// range R = S-1, so one threshold set works unchanged on 5- and 7-point
// scales. The unbalanced-profile cutoff is the one exception: the source
// framework defines it as an absolute point difference, so it stays absolute
// and configurable here.
type Thresholds struct {
	// Dispersion bands (fraction of R).
	SpreadMedium float64 `yaml:"spread_medium"`
	SpreadHigh   float64 `yaml:"spread_high"`

	// Gap bands (fraction of R).
	GapModerate    float64 `yaml:"gap_moderate"`
	GapSignificant float64 `yaml:"gap_significant"`

	// Substitution bias: minimum scarcity-mechanical delta (fraction of R)
	// and the latent-satisfaction floor (fraction of S-1, offset by 1).
	BiasDelta  float64 `yaml:"bias_delta"`
	BiasLatent float64 `yaml:"bias_latent"`

	// MinFlaggedRespondents is the flagged count at which the group-level
	// substitution warning is raised.
	MinFlaggedRespondents int `yaml:"min_flagged_respondents"`

	// Prioritizer: the all-indistinguishable range (fraction of R) and the
	// mean-cluster width inside which spread breaks ties (fraction of R).
	TieRange    float64 `yaml:"tie_range"`
	MeanCluster float64 `yaml:"mean_cluster"`

	// Severity band edges, in percent of the scale range.
	SeverityHighPercent float64 `yaml:"severity_high_percent"`
	SeverityLowPercent  float64 `yaml:"severity_low_percent"`

	// Profile classifier: the all-fields floor for "high performing"
	// (percent) and the absolute max-min mean difference for "unbalanced"
	// (scale points).
	HighPerformingPercent float64 `yaml:"high_performing_percent"`
	UnbalancedGapPoints   float64 `yaml:"unbalanced_gap_points"`
}

// DefaultThresholds returns the stock threshold set.
func DefaultThresholds() Thresholds {
	return Thresholds{
		SpreadMedium:          0.10,
		SpreadHigh:            0.20,
		GapModerate:           0.12,
		GapSignificant:        0.20,
		BiasDelta:             0.12,
		BiasLatent:            0.70,
		MinFlaggedRespondents: 1,
		TieRange:              0.08,
		MeanCluster:           0.06,
		SeverityHighPercent:   50,
		SeverityLowPercent:    70,
		HighPerformingPercent: 80,
		UnbalancedGapPoints:   1.5,
	}
}

// Config is the immutable engine configuration passed into every component.
// All responses in one invocation share the same scale bound; mixed-scale
// input is a caller error.
type Config struct {
	ScalePoints int        `yaml:"scale_points"`
	Thresholds  Thresholds `yaml:"thresholds"`
}

// Default returns a 7-point configuration with stock thresholds.
func Default() *Config {
	return &Config{
		ScalePoints: 7,
		Thresholds:  DefaultThresholds(),
	}
}

// Load reads engine settings from the environment, falling back to defaults.
func Load() *Config {
	cfg := Default()
	if v := os.Getenv("SCALE_POINTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ScalePoints = n
		}
	}
	return cfg
}

// Validate checks scale and threshold sanity.
func (c *Config) Validate() error {
	if c.ScalePoints < 2 {
		return model.NewConfigurationError("scale_points must be at least 2, got %d", c.ScalePoints)
	}
	t := c.Thresholds
	if t.SpreadMedium <= 0 || t.SpreadHigh <= t.SpreadMedium {
		return model.NewConfigurationError("spread bands must satisfy 0 < spread_medium < spread_high")
	}
	if t.GapModerate <= 0 || t.GapSignificant <= t.GapModerate {
		return model.NewConfigurationError("gap bands must satisfy 0 < gap_moderate < gap_significant")
	}
	if t.SeverityHighPercent <= 0 || t.SeverityLowPercent <= t.SeverityHighPercent {
		return model.NewConfigurationError("severity bands must satisfy 0 < severity_high_percent < severity_low_percent")
	}
	if t.BiasLatent < 0 || t.BiasLatent > 1 {
		return model.NewConfigurationError("bias_latent must be within [0, 1], got %v", t.BiasLatent)
	}
	if t.MinFlaggedRespondents < 1 {
		return model.NewConfigurationError("min_flagged_respondents must be at least 1, got %d", t.MinFlaggedRespondents)
	}
	return nil
}

// Range returns the scale range R = S-1.
func (c *Config) Range() float64 {
	return float64(c.ScalePoints - 1)
}

// Percent maps a mean adjusted score onto the 0-100 scale-range percentage,
// rounded to one decimal.
func (c *Config) Percent(mean float64) float64 {
	return round1((mean - 1) / c.Range() * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

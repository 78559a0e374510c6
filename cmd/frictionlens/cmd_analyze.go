package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"frictionlens/internal/config"
	"frictionlens/internal/report"
	"frictionlens/internal/source"
)

var analyzeFlags struct {
	questionnaire string
	biasMap       string
	responses     string
	out           string
	assessmentID  string
	unit          string
	scalePoints   int
	verbose       bool
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full scoring pipeline over a response snapshot",
	Long: `Analyze a response snapshot against a questionnaire and emit the full
assessment report as JSON: field scores per role, spread and gap diagnostics,
the substitution-bias check, the prioritized recommendation and the profile
label.

Usage:
  frictionlens analyze --questionnaire q.yaml --bias-map bias.yaml --responses snapshot.json

The scale bound defaults to the SCALE_POINTS environment variable (7 if
unset) and can be overridden with --scale.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFlags.questionnaire, "questionnaire", "q", "", "questionnaire YAML file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeFlags.biasMap, "bias-map", "b", "", "substitution-bias question map YAML file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeFlags.responses, "responses", "r", "", "response snapshot JSON file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeFlags.out, "out", "o", "", "write the report to this file instead of stdout")
	analyzeCmd.Flags().StringVar(&analyzeFlags.assessmentID, "assessment", "", "assessment ID the snapshot must match")
	analyzeCmd.Flags().StringVar(&analyzeFlags.unit, "unit", "", "organizational unit label for the report")
	analyzeCmd.Flags().IntVar(&analyzeFlags.scalePoints, "scale", 0, "scale bound S, e.g. 5 or 7 (overrides SCALE_POINTS)")
	analyzeCmd.Flags().BoolVarP(&analyzeFlags.verbose, "verbose", "v", false, "debug logging")
	_ = analyzeCmd.MarkFlagRequired("questionnaire")
	_ = analyzeCmd.MarkFlagRequired("bias-map")
	_ = analyzeCmd.MarkFlagRequired("responses")
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(analyzeFlags.verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	cfg := config.Load()
	if analyzeFlags.scalePoints > 0 {
		cfg.ScalePoints = analyzeFlags.scalePoints
	}

	questionnaire, err := config.LoadQuestionnaire(analyzeFlags.questionnaire)
	if err != nil {
		return err
	}
	biasMap, err := config.LoadBiasMap(analyzeFlags.biasMap)
	if err != nil {
		return err
	}

	svc, err := report.NewReportService(cfg, questionnaire, biasMap, source.NewFileSource(analyzeFlags.responses), logger)
	if err != nil {
		return err
	}

	scope := report.Scope{AssessmentID: analyzeFlags.assessmentID, Unit: analyzeFlags.unit}
	result, err := svc.Generate(cmd.Context(), scope)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if analyzeFlags.out != "" {
		return os.WriteFile(analyzeFlags.out, data, 0o644)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
	return err
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zcfg.Build()
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"frictionlens/internal/config"
)

var validateFlags struct {
	questionnaire string
	biasMap       string
	scalePoints   int
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a questionnaire and bias map without running an analysis",
	Long: `Validate loads the questionnaire and the substitution-bias question map
and runs the same fail-fast checks the engine runs at setup: duplicate or
missing question IDs, unknown field tags, and bias-map references to
questions that do not exist. It exits non-zero on the first problem.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateFlags.questionnaire, "questionnaire", "q", "", "questionnaire YAML file (required)")
	validateCmd.Flags().StringVarP(&validateFlags.biasMap, "bias-map", "b", "", "substitution-bias question map YAML file")
	validateCmd.Flags().IntVar(&validateFlags.scalePoints, "scale", 0, "scale bound S to validate against (overrides SCALE_POINTS)")
	_ = validateCmd.MarkFlagRequired("questionnaire")
}

func runValidate(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if validateFlags.scalePoints > 0 {
		cfg.ScalePoints = validateFlags.scalePoints
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	questionnaire, err := config.LoadQuestionnaire(validateFlags.questionnaire)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "questionnaire %s: %d questions ok\n", questionnaire.Version, len(questionnaire.Questions))

	if validateFlags.biasMap != "" {
		biasMap, err := config.LoadBiasMap(validateFlags.biasMap)
		if err != nil {
			return err
		}
		if err := biasMap.Validate(questionnaire); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "bias map ok")
	}
	return nil
}

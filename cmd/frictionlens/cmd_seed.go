package main

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"frictionlens/internal/config"
	"frictionlens/internal/model"
	"frictionlens/internal/source"
)

var seedFlags struct {
	questionnaire string
	out           string
	assessmentID  string
	participants  int
	leaders       int
	rngSeed       int64
	scalePoints   int
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate a synthetic response snapshot for local testing",
	Long: `Seed generates a random but reproducible response snapshot against a
questionnaire: every participant answers every question, and every leader
answers every question twice, once assessing the group and once about
themselves. Use --rng-seed to regenerate an identical snapshot.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFlags.questionnaire, "questionnaire", "q", "", "questionnaire YAML file (required)")
	seedCmd.Flags().StringVarP(&seedFlags.out, "out", "o", "responses.json", "snapshot output file")
	seedCmd.Flags().StringVar(&seedFlags.assessmentID, "assessment", "", "assessment ID to stamp on the snapshot (random if empty)")
	seedCmd.Flags().IntVar(&seedFlags.participants, "participants", 8, "number of participant respondents")
	seedCmd.Flags().IntVar(&seedFlags.leaders, "leaders", 1, "number of leader respondents")
	seedCmd.Flags().Int64Var(&seedFlags.rngSeed, "rng-seed", 1, "random seed")
	seedCmd.Flags().IntVar(&seedFlags.scalePoints, "scale", 0, "scale bound S (overrides SCALE_POINTS)")
	_ = seedCmd.MarkFlagRequired("questionnaire")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if seedFlags.scalePoints > 0 {
		cfg.ScalePoints = seedFlags.scalePoints
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	questionnaire, err := config.LoadQuestionnaire(seedFlags.questionnaire)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(seedFlags.rngSeed))
	assessmentID := seedFlags.assessmentID
	if assessmentID == "" {
		assessmentID = uuid.Must(uuid.NewRandomFromReader(rng)).String()
	}

	snapshot := &source.Snapshot{AssessmentID: assessmentID}
	for i := 0; i < seedFlags.participants; i++ {
		respondent := uuid.Must(uuid.NewRandomFromReader(rng)).String()
		snapshot.Responses = append(snapshot.Responses,
			answerAll(rng, cfg, questionnaire, respondent, model.RoleParticipant)...)
	}
	for i := 0; i < seedFlags.leaders; i++ {
		respondent := uuid.Must(uuid.NewRandomFromReader(rng)).String()
		snapshot.Responses = append(snapshot.Responses,
			answerAll(rng, cfg, questionnaire, respondent, model.RoleLeaderAssessing)...)
		snapshot.Responses = append(snapshot.Responses,
			answerAll(rng, cfg, questionnaire, respondent, model.RoleLeaderSelf)...)
	}

	if err := source.WriteSnapshot(seedFlags.out, snapshot); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d responses for assessment %s to %s\n",
		len(snapshot.Responses), assessmentID, seedFlags.out)
	return nil
}

func answerAll(rng *rand.Rand, cfg *config.Config, questionnaire *config.Questionnaire, respondent string, role model.Role) []model.Response {
	out := make([]model.Response, 0, len(questionnaire.Questions))
	for _, q := range questionnaire.Questions {
		out = append(out, model.Response{
			RespondentID: respondent,
			QuestionID:   q.ID,
			RawScore:     1 + rng.Intn(cfg.ScalePoints),
			Role:         role,
		})
	}
	return out
}

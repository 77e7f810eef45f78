package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-engine/internal/ingestion"
	"github.com/jonathan/career-engine/internal/observability"
	"github.com/jonathan/career-engine/internal/types"
)

var scoreResumeCmd = &cobra.Command{
	Use:   "score-resume",
	Short: "Score a parsed resume against a role",
	Long:  "Scores a parsed resume JSON file against a catalog role. With --user-id the score is recorded and the change since the first recorded score is reported.",
	RunE:  runScoreResume,
}

var (
	scoreResumeFile   string
	scoreResumeSkills []string
	scoreResumeRole   string
	scoreResumeUserID string
	scoreResumeOutput string
)

type scoreResumeResult struct {
	RoleID        string                    `json:"roleId"`
	Score         types.ResumeStrengthScore `json:"score"`
	LegacyScores  map[string]int            `json:"legacySections"`
	ProgressDelta *int                      `json:"progressDelta,omitempty"`
}

func init() {
	scoreResumeCmd.Flags().StringVarP(&scoreResumeFile, "resume", "r", "", "Path to parsed resume JSON file (required)")
	scoreResumeCmd.Flags().StringSliceVarP(&scoreResumeSkills, "skills", "s", nil, "Additional comma-separated resume skills")
	scoreResumeCmd.Flags().StringVar(&scoreResumeRole, "role", "", "Target role id (default: first catalog role)")
	scoreResumeCmd.Flags().StringVarP(&scoreResumeUserID, "user-id", "u", "", "User UUID; records the score in the configured store")
	scoreResumeCmd.Flags().StringVarP(&scoreResumeOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	markRequired(scoreResumeCmd, "resume")
	rootCmd.AddCommand(scoreResumeCmd)
}

func runScoreResume(cmd *cobra.Command, _ []string) error {
	content, err := readFile(scoreResumeFile, "resume")
	if err != nil {
		return err
	}
	resume, err := ingestion.CoerceResume(content)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	ctx := cmd.Context()
	e, deps, err := buildEngine(ctx, cfg, scoreResumeUserID != "")
	if err != nil {
		return err
	}
	defer deps.close()

	role := e.Role(scoreResumeRole)
	score := e.ScoreResumeStrength(resume, scoreResumeSkills, role.ID)
	result := scoreResumeResult{
		RoleID:       role.ID,
		Score:        score,
		LegacyScores: score.Sections.LegacyAliases(),
	}

	if scoreResumeUserID != "" {
		if err := e.RecordResumeScore(ctx, scoreResumeUserID, role.ID, score); err != nil {
			return err
		}
		delta, err := e.ProgressDeltaForUser(ctx, scoreResumeUserID, role.ID)
		if err != nil {
			return err
		}
		result.ProgressDelta = &delta
	}

	if verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintStrengthScore(score)
	}
	return writeOutput(cmd.OutOrStdout(), scoreResumeOutput, result)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-engine/internal/ingestion"
	"github.com/jonathan/career-engine/internal/observability"
)

var scoreMatchCmd = &cobra.Command{
	Use:   "score-match",
	Short: "Score a candidate's skills against a job posting",
	Long:  "Scores skills against a job JSON file. Configured remote or LLM scorers are tried first; the local scorer is always the fallback.",
	RunE:  runScoreMatch,
}

var (
	scoreMatchSkills []string
	scoreMatchJob    string
	scoreMatchOutput string
)

func init() {
	scoreMatchCmd.Flags().StringSliceVarP(&scoreMatchSkills, "skills", "s", nil, "Comma-separated candidate skills")
	scoreMatchCmd.Flags().StringVarP(&scoreMatchJob, "job", "j", "", "Path to job JSON file (required)")
	scoreMatchCmd.Flags().StringVarP(&scoreMatchOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	markRequired(scoreMatchCmd, "job")
	rootCmd.AddCommand(scoreMatchCmd)
}

func runScoreMatch(cmd *cobra.Command, _ []string) error {
	content, err := readFile(scoreMatchJob, "job")
	if err != nil {
		return err
	}
	job, err := ingestion.CoerceJob(content)
	if err != nil {
		return fmt.Errorf("failed to load job: %w", err)
	}

	e, deps, err := buildEngine(cmd.Context(), cfg, false)
	if err != nil {
		return err
	}
	defer deps.close()

	result := e.ScoreMatch(cmd.Context(), scoreMatchSkills, job)
	if verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintMatchResult(result)
	}
	return writeOutput(cmd.OutOrStdout(), scoreMatchOutput, result)
}

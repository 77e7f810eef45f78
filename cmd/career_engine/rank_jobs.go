package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-engine/internal/ingestion"
	"github.com/jonathan/career-engine/internal/observability"
)

var rankJobsCmd = &cobra.Command{
	Use:   "rank-jobs",
	Short: "Rank job postings for a candidate",
	Long:  "Scores every job in a JSON array against the candidate's skills concurrently and prints them best match first.",
	RunE:  runRankJobs,
}

var (
	rankJobsSkills []string
	rankJobsFile   string
	rankJobsOutput string
)

func init() {
	rankJobsCmd.Flags().StringSliceVarP(&rankJobsSkills, "skills", "s", nil, "Comma-separated candidate skills")
	rankJobsCmd.Flags().StringVarP(&rankJobsFile, "jobs", "j", "", "Path to JSON array of jobs (required)")
	rankJobsCmd.Flags().StringVarP(&rankJobsOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	markRequired(rankJobsCmd, "jobs")
	rootCmd.AddCommand(rankJobsCmd)
}

func runRankJobs(cmd *cobra.Command, _ []string) error {
	content, err := readFile(rankJobsFile, "jobs")
	if err != nil {
		return err
	}
	jobs, err := ingestion.CoerceJobs(content)
	if err != nil {
		return fmt.Errorf("failed to load jobs: %w", err)
	}

	e, deps, err := buildEngine(cmd.Context(), cfg, false)
	if err != nil {
		return err
	}
	defer deps.close()

	ranked, err := e.RankJobs(cmd.Context(), rankJobsSkills, jobs)
	if err != nil {
		return fmt.Errorf("failed to rank jobs: %w", err)
	}
	if verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintRankedJobs(ranked)
	}
	return writeOutput(cmd.OutOrStdout(), rankJobsOutput, map[string]any{"matches": ranked})
}

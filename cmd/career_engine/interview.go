package main

import (
	"github.com/spf13/cobra"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Generate a mock interview pack for a role",
	RunE:  runInterview,
}

var (
	interviewRole   string
	interviewOutput string
)

func init() {
	interviewCmd.Flags().StringVar(&interviewRole, "role", "", "Target role id (default: first catalog role)")
	interviewCmd.Flags().StringVarP(&interviewOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	rootCmd.AddCommand(interviewCmd)
}

func runInterview(cmd *cobra.Command, _ []string) error {
	e, deps, err := buildEngine(cmd.Context(), cfg, false)
	if err != nil {
		return err
	}
	defer deps.close()

	return writeOutput(cmd.OutOrStdout(), interviewOutput, e.MockInterview(interviewRole))
}

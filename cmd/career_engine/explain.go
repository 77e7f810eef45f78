package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/career-engine/internal/explain"
	"github.com/jonathan/career-engine/internal/types"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Explain how resume skills cover required skills",
	Long:  "Summarizes matched skills and the impact of learning each missing skill. Required skills come from --required, or from the role when none are given.",
	RunE:  runExplain,
}

var (
	explainSkills   []string
	explainRequired []string
	explainRole     string
	explainRaw      bool
	explainOutput   string
)

func init() {
	explainCmd.Flags().StringSliceVarP(&explainSkills, "skills", "s", nil, "Comma-separated resume skills")
	explainCmd.Flags().StringSliceVar(&explainRequired, "required", nil, "Comma-separated required skills")
	explainCmd.Flags().StringVar(&explainRole, "role", "", "Role id whose required skills are used when --required is empty")
	explainCmd.Flags().BoolVar(&explainRaw, "raw", false, "Report unclamped impact values")
	explainCmd.Flags().StringVarP(&explainOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, _ []string) error {
	e, deps, err := buildEngine(cmd.Context(), cfg, false)
	if err != nil {
		return err
	}
	defer deps.close()

	var result types.RecommendationExplanation
	if len(explainRequired) > 0 {
		result = e.ExplainRecommendation(explainSkills, explainRequired)
	} else {
		result = e.ExplainForRole(explainSkills, explainRole)
	}
	if !explainRaw {
		result = explain.ForDisplay(result)
	}
	return writeOutput(cmd.OutOrStdout(), explainOutput, result)
}

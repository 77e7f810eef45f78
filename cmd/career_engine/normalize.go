package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/career-engine/internal/skills"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Normalize a list of skills",
	Long:  "Trims, lower-cases and de-duplicates skills, keeping first-occurrence order, and reports each skill's display form.",
	RunE:  runNormalize,
}

var (
	normalizeSkills []string
	normalizeOutput string
)

type normalizedSkill struct {
	Key     string `json:"key"`
	Display string `json:"display"`
}

func init() {
	normalizeCmd.Flags().StringSliceVarP(&normalizeSkills, "skills", "s", nil, "Comma-separated skills (required)")
	normalizeCmd.Flags().StringVarP(&normalizeOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	markRequired(normalizeCmd, "skills")
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, _ []string) error {
	keys := skills.Normalize(normalizeSkills)
	out := make([]normalizedSkill, len(keys))
	for i, key := range keys {
		out[i] = normalizedSkill{Key: key, Display: skills.ToDisplay(key)}
	}
	return writeOutput(cmd.OutOrStdout(), normalizeOutput, map[string]any{"skills": out})
}

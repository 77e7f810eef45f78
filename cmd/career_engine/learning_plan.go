package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/career-engine/internal/observability"
	"github.com/jonathan/career-engine/internal/types"
)

var learningPlanCmd = &cobra.Command{
	Use:   "learning-plan",
	Short: "Generate a 30 or 60 day learning plan for a role",
	RunE:  runLearningPlan,
}

var (
	learningPlanRole   string
	learningPlanSkills []string
	learningPlanDays   int
	learningPlanUserID string
	learningPlanID     string
	learningPlanOutput string
)

func init() {
	learningPlanCmd.Flags().StringVar(&learningPlanRole, "role", "", "Target role id (default: first catalog role)")
	learningPlanCmd.Flags().StringSliceVarP(&learningPlanSkills, "skills", "s", nil, "Comma-separated resume skills")
	learningPlanCmd.Flags().IntVarP(&learningPlanDays, "days", "d", 30, "Plan length in days (30 or 60)")
	learningPlanCmd.Flags().StringVarP(&learningPlanUserID, "user-id", "u", "", "User UUID; applies recorded progress and stores the plan")
	learningPlanCmd.Flags().StringVar(&learningPlanID, "id", "", "Load a previously stored plan instead of generating one")
	learningPlanCmd.Flags().StringVarP(&learningPlanOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	rootCmd.AddCommand(learningPlanCmd)
}

func runLearningPlan(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	withStores := learningPlanUserID != "" || learningPlanID != ""
	e, deps, err := buildEngine(ctx, cfg, withStores)
	if err != nil {
		return err
	}
	defer deps.close()

	if learningPlanID != "" {
		plan, err := e.LearningPlan(ctx, learningPlanID)
		if err != nil {
			return err
		}
		return writeOutput(cmd.OutOrStdout(), learningPlanOutput, plan)
	}

	plan, err := e.LearningPlanForUser(ctx, types.LearningPlanRequest{
		UserID:       learningPlanUserID,
		RoleID:       e.Role(learningPlanRole).ID,
		DurationDays: learningPlanDays,
		ResumeSkills: learningPlanSkills,
	})
	if err != nil {
		return err
	}
	if verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintLearningPlan(plan)
	}
	return writeOutput(cmd.OutOrStdout(), learningPlanOutput, plan)
}

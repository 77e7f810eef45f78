package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/career-engine/internal/ingestion"
	"github.com/jonathan/career-engine/internal/observability"
	"github.com/jonathan/career-engine/internal/types"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Build a skill roadmap for a role",
	Long:  "Classifies each required skill of a role as completed, in progress or missing and assigns a difficulty level. With --user-id, recorded progress overrides resume skills; a --progress file overrides both.",
	RunE:  runRoadmap,
}

var (
	roadmapRole     string
	roadmapSkills   []string
	roadmapUserID   string
	roadmapProgress string
	roadmapPlanner  bool
	roadmapOutput   string
)

type roadmapResult struct {
	RoleID  string                   `json:"roleId"`
	Items   []types.SkillRoadmapItem `json:"roadmap"`
	Planner []types.WeeklyPlannerDay `json:"weeklyPlanner,omitempty"`
}

func init() {
	roadmapCmd.Flags().StringVar(&roadmapRole, "role", "", "Target role id (default: first catalog role)")
	roadmapCmd.Flags().StringSliceVarP(&roadmapSkills, "skills", "s", nil, "Comma-separated resume skills")
	roadmapCmd.Flags().StringVarP(&roadmapUserID, "user-id", "u", "", "User UUID whose recorded progress applies")
	roadmapCmd.Flags().StringVarP(&roadmapProgress, "progress", "p", "", "Path to a JSON list of {skillName, status} overrides")
	roadmapCmd.Flags().BoolVar(&roadmapPlanner, "planner", false, "Include a three-day weekly planner")
	roadmapCmd.Flags().StringVarP(&roadmapOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	rootCmd.AddCommand(roadmapCmd)
}

func runRoadmap(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	var overrides []types.ProgressOverride
	if roadmapProgress != "" {
		content, err := readFile(roadmapProgress, "progress")
		if err != nil {
			return err
		}
		if overrides, err = ingestion.CoerceProgress(content); err != nil {
			return err
		}
	}

	e, deps, err := buildEngine(ctx, cfg, roadmapUserID != "")
	if err != nil {
		return err
	}
	defer deps.close()

	role := e.Role(roadmapRole)
	items, err := e.RoadmapForUser(ctx, roadmapUserID, role.ID, roadmapSkills, overrides...)
	if err != nil {
		return err
	}

	if verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintRoadmap(items)
	}

	result := roadmapResult{RoleID: role.ID, Items: items}
	if roadmapPlanner {
		result.Planner = e.WeeklyPlanner(items)
	}
	return writeOutput(cmd.OutOrStdout(), roadmapOutput, result)
}

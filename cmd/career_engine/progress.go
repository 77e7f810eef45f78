package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-engine/internal/types"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Manage recorded skill progress",
}

var progressSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Record a user's status for one skill of a role",
	RunE:  runProgressSet,
}

var (
	progressUserID string
	progressRole   string
	progressSkill  string
	progressStatus string
)

func init() {
	progressSetCmd.Flags().StringVarP(&progressUserID, "user-id", "u", "", "User UUID (required)")
	progressSetCmd.Flags().StringVar(&progressRole, "role", "", "Role id (required)")
	progressSetCmd.Flags().StringVar(&progressSkill, "skill", "", "Skill name (required)")
	progressSetCmd.Flags().StringVar(&progressStatus, "status", "", "completed, in_progress or missing (required)")
	markRequired(progressSetCmd, "user-id", "role", "skill", "status")

	progressCmd.AddCommand(progressSetCmd)
	rootCmd.AddCommand(progressCmd)
}

func runProgressSet(cmd *cobra.Command, _ []string) error {
	req := types.ProgressUpdateRequest{
		UserID:    progressUserID,
		RoleID:    progressRole,
		SkillName: progressSkill,
		Status:    types.SkillStatus(progressStatus),
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid progress update: %w", err)
	}

	ctx := cmd.Context()
	e, deps, err := buildEngine(ctx, cfg, true)
	if err != nil {
		return err
	}
	defer deps.close()

	if err := e.RecordProgress(ctx, req); err != nil {
		return err
	}
	slog.Debug("progress recorded", slog.String("role", progressRole), slog.String("skill", progressSkill))

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s as %s for role %s\n", progressSkill, progressStatus, progressRole)
	return nil
}

package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonathan/career-engine/internal/strength"
	"github.com/jonathan/career-engine/internal/types"
)

// RecordProgress stores a user's status for one skill.
func (e *Engine) RecordProgress(ctx context.Context, req types.ProgressUpdateRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid progress update: %w", err)
	}
	if e.progress == nil {
		return fmt.Errorf("record progress: %w", ErrNoStore)
	}
	userID, err := parseUserID(req.UserID)
	if err != nil {
		return err
	}
	role := e.catalog.RoleOrDefault(req.RoleID)
	if err := e.progress.UpsertProgress(ctx, userID, role.ID, req.Override()); err != nil {
		return fmt.Errorf("record progress: %w", err)
	}
	return nil
}

// RoadmapForUser builds a roadmap using the user's stored progress. When the store is
// missing or fails, the roadmap is built from resume skills alone.
// Extra overrides apply after the stored ones and win on conflict.
func (e *Engine) RoadmapForUser(ctx context.Context, userID, roleID string, resumeSkills []string, extra ...types.ProgressOverride) ([]types.SkillRoadmapItem, error) {
	role := e.catalog.RoleOrDefault(roleID)
	overrides, err := e.loadOverrides(ctx, userID, role.ID)
	if err != nil {
		return nil, err
	}
	overrides = append(overrides, extra...)
	return e.BuildRoadmap(role.ID, resumeSkills, overrides), nil
}

func (e *Engine) loadOverrides(ctx context.Context, userID, roleID string) ([]types.ProgressOverride, error) {
	if userID == "" || e.progress == nil {
		return nil, nil
	}
	id, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}
	overrides, err := e.progress.ListProgress(ctx, id, roleID)
	if err != nil {
		e.logger.Warn("progress store unavailable, ignoring saved progress",
			slog.String("role", roleID),
			slog.Any("error", err),
		)
		return nil, nil
	}
	return overrides, nil
}

// RecordResumeScore appends a score to the user's history.
func (e *Engine) RecordResumeScore(ctx context.Context, userID, roleID string, score types.ResumeStrengthScore) error {
	if e.scores == nil {
		return fmt.Errorf("record resume score: %w", ErrNoStore)
	}
	id, err := parseUserID(userID)
	if err != nil {
		return err
	}
	snapshot := types.ScoreSnapshot{
		Score:     score.OverallScore,
		RoleID:    e.catalog.RoleOrDefault(roleID).ID,
		CreatedAt: e.now().UTC(),
	}
	if err := e.scores.SaveResumeScore(ctx, id, snapshot); err != nil {
		return fmt.Errorf("record resume score: %w", err)
	}
	return nil
}

// ProgressDeltaForUser returns the change between the user's earliest and latest
// resume scores. An empty roleID considers every role.
func (e *Engine) ProgressDeltaForUser(ctx context.Context, userID, roleID string) (int, error) {
	if e.scores == nil {
		return 0, fmt.Errorf("progress delta: %w", ErrNoStore)
	}
	id, err := parseUserID(userID)
	if err != nil {
		return 0, err
	}
	history, err := e.scores.ListResumeScores(ctx, id, roleID)
	if err != nil {
		return 0, fmt.Errorf("progress delta: %w", err)
	}
	return strength.ProgressDelta(history), nil
}

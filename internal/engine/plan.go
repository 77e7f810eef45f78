package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jonathan/career-engine/internal/types"
)

// LearningPlanForUser builds the roadmap for a request, then returns a cached plan for
// the same pending skills or generates, stores and caches a new one.
func (e *Engine) LearningPlanForUser(ctx context.Context, req types.LearningPlanRequest) (*types.LearningPlan, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid learning plan request: %w", err)
	}

	role := e.catalog.RoleOrDefault(req.RoleID)
	items, err := e.RoadmapForUser(ctx, req.UserID, role.ID, req.ResumeSkills)
	if err != nil {
		return nil, err
	}

	var key string
	if e.cache != nil {
		key = e.cacheKey(req.UserID, role.ID, req.DurationDays, pendingSkills(items))
		cached, err := e.cache.Get(ctx, key)
		if err != nil {
			e.logger.Warn("plan cache read failed", slog.Any("error", err))
		} else if cached != nil {
			return cached, nil
		}
	}

	plan, err := e.GenerateLearningPlan(role.ID, items, req.DurationDays)
	if err != nil {
		return nil, err
	}

	if e.plans != nil {
		userID := uuid.Nil
		if req.UserID != "" {
			// already validated as a uuid
			userID = uuid.MustParse(req.UserID)
		}
		if _, err := e.plans.SaveLearningPlan(ctx, userID, plan); err != nil {
			e.logger.Warn("failed to store learning plan", slog.Any("error", err))
		}
	}

	if e.cache != nil {
		if err := e.cache.Set(ctx, key, plan); err != nil {
			e.logger.Warn("plan cache write failed", slog.Any("error", err))
		}
	}

	return plan, nil
}

// LearningPlan loads a previously stored plan.
func (e *Engine) LearningPlan(ctx context.Context, planID string) (*types.LearningPlan, error) {
	if e.plans == nil {
		return nil, fmt.Errorf("load learning plan: %w", ErrNoStore)
	}
	return e.plans.GetLearningPlan(ctx, planID)
}

func pendingSkills(items []types.SkillRoadmapItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item.Status != types.StatusCompleted {
			out = append(out, item.Skill+":"+string(item.Status))
		}
	}
	return out
}

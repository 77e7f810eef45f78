package db

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-engine/internal/types"
)

func ensurePlanID(plan *types.LearningPlan) (uuid.UUID, error) {
	if plan == nil {
		return uuid.Nil, fmt.Errorf("learning plan is nil")
	}
	if plan.ID == "" {
		id := uuid.New()
		plan.ID = id.String()
		return id, nil
	}
	id, err := uuid.Parse(plan.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid plan id %q: %w", plan.ID, err)
	}
	return id, nil
}

func decodePlan(content []byte) (*types.LearningPlan, error) {
	var plan types.LearningPlan
	if err := json.Unmarshal(content, &plan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal learning plan: %w", err)
	}
	return &plan, nil
}

func snapshotTime(s types.ScoreSnapshot) time.Time {
	if s.CreatedAt.IsZero() {
		return time.Now().UTC()
	}
	return s.CreatedAt.UTC()
}

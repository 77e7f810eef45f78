package db

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/jonathan/career-engine/internal/types"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Store is the persistence surface shared by the Postgres, SQLite and in-memory backends.
type Store interface {
	ListProgress(ctx context.Context, userID uuid.UUID, roleID string) ([]types.ProgressOverride, error)
	UpsertProgress(ctx context.Context, userID uuid.UUID, roleID string, override types.ProgressOverride) error
	SaveResumeScore(ctx context.Context, userID uuid.UUID, snapshot types.ScoreSnapshot) error
	ListResumeScores(ctx context.Context, userID uuid.UUID, roleID string) ([]types.ScoreSnapshot, error)
	SaveLearningPlan(ctx context.Context, userID uuid.UUID, plan *types.LearningPlan) (string, error)
	GetLearningPlan(ctx context.Context, planID string) (*types.LearningPlan, error)
	Close()
}

var (
	_ Store = (*DB)(nil)
	_ Store = (*SQLiteStore)(nil)
	_ Store = (*MemoryStore)(nil)
)

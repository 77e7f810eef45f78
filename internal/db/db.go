// Package db provides persistence for skill progress, resume score history and learning plans.
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/career-engine/internal/skills"
	"github.com/jonathan/career-engine/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the engine tables if they do not exist
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// ListProgress returns the recorded skill statuses for a user and role, oldest update first
func (db *DB) ListProgress(ctx context.Context, userID uuid.UUID, roleID string) ([]types.ProgressOverride, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT skill_name, status FROM skill_progress
		 WHERE user_id = $1 AND role_id = $2
		 ORDER BY updated_at, skill_key`,
		userID, roleID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}
	defer rows.Close()

	overrides := []types.ProgressOverride{}
	for rows.Next() {
		var o types.ProgressOverride
		var status string
		if err := rows.Scan(&o.SkillName, &status); err != nil {
			return nil, fmt.Errorf("failed to scan progress: %w", err)
		}
		o.Status = types.SkillStatus(status)
		overrides = append(overrides, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate progress: %w", err)
	}
	return overrides, nil
}

// UpsertProgress records a skill status, replacing any earlier status for the same skill
func (db *DB) UpsertProgress(ctx context.Context, userID uuid.UUID, roleID string, override types.ProgressOverride) error {
	if err := override.Validate(); err != nil {
		return err
	}
	_, err := db.pool.Exec(ctx,
		`INSERT INTO skill_progress (user_id, role_id, skill_key, skill_name, status)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id, role_id, skill_key)
		 DO UPDATE SET skill_name = $4, status = $5, updated_at = NOW()`,
		userID, roleID, skills.Key(override.SkillName), override.SkillName, string(override.Status),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert progress for %s: %w", override.SkillName, err)
	}
	return nil
}

// SaveResumeScore appends an overall score to the user's history
func (db *DB) SaveResumeScore(ctx context.Context, userID uuid.UUID, snapshot types.ScoreSnapshot) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO resume_scores (user_id, role_id, score, created_at)
		 VALUES ($1, $2, $3, $4)`,
		userID, snapshot.RoleID, snapshot.Score, snapshotTime(snapshot),
	)
	if err != nil {
		return fmt.Errorf("failed to save resume score: %w", err)
	}
	return nil
}

// ListResumeScores returns a user's score history, oldest first. An empty roleID lists every role.
func (db *DB) ListResumeScores(ctx context.Context, userID uuid.UUID, roleID string) ([]types.ScoreSnapshot, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT score, role_id, created_at FROM resume_scores
		 WHERE user_id = $1 AND ($2 = '' OR role_id = $2)
		 ORDER BY created_at, id`,
		userID, roleID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resume scores: %w", err)
	}
	defer rows.Close()

	history := []types.ScoreSnapshot{}
	for rows.Next() {
		var s types.ScoreSnapshot
		if err := rows.Scan(&s.Score, &s.RoleID, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume score: %w", err)
		}
		s.CreatedAt = s.CreatedAt.UTC()
		history = append(history, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate resume scores: %w", err)
	}
	return history, nil
}

// SaveLearningPlan stores a plan and returns its ID, assigning one if the plan has none
func (db *DB) SaveLearningPlan(ctx context.Context, userID uuid.UUID, plan *types.LearningPlan) (string, error) {
	id, err := ensurePlanID(plan)
	if err != nil {
		return "", err
	}

	jsonBytes, err := json.Marshal(plan)
	if err != nil {
		return "", fmt.Errorf("failed to marshal learning plan: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO learning_plans (id, user_id, role_id, duration_days, plan)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET plan = $5, created_at = NOW()`,
		id, nullableUser(userID), plan.RoleID, plan.DurationDays, jsonBytes,
	)
	if err != nil {
		return "", fmt.Errorf("failed to save learning plan: %w", err)
	}
	return id.String(), nil
}

// GetLearningPlan loads a stored plan by ID
func (db *DB) GetLearningPlan(ctx context.Context, planID string) (*types.LearningPlan, error) {
	id, err := uuid.Parse(planID)
	if err != nil {
		return nil, fmt.Errorf("invalid plan id %q: %w", planID, ErrNotFound)
	}

	var content []byte
	err = db.pool.QueryRow(ctx,
		`SELECT plan FROM learning_plans WHERE id = $1`,
		id,
	).Scan(&content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get learning plan: %w", err)
	}
	return decodePlan(content)
}

func nullableUser(userID uuid.UUID) *uuid.UUID {
	if userID == uuid.Nil {
		return nil
	}
	return &userID
}

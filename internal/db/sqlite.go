package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/jonathan/career-engine/internal/skills"
	"github.com/jonathan/career-engine/internal/types"
)

// SQLiteStore is a single-file store for local CLI use.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the SQLite database at path and applies the schema.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("sqlite: mkdir %s: %w", dir, err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open db: %w", err)
	}
	conn.SetMaxOpenConns(1) // single writer

	if _, err := conn.ExecContext(ctx, sqliteSchema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: init schema: %w", err)
	}
	return &SQLiteStore{db: conn}, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() {
	if s.db != nil {
		s.db.Close()
	}
}

func (s *SQLiteStore) ListProgress(ctx context.Context, userID uuid.UUID, roleID string) ([]types.ProgressOverride, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT skill_name, status FROM skill_progress
		 WHERE user_id = ? AND role_id = ?
		 ORDER BY seq`,
		userID.String(), roleID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list progress: %w", err)
	}
	defer rows.Close()

	overrides := []types.ProgressOverride{}
	for rows.Next() {
		var o types.ProgressOverride
		var status string
		if err := rows.Scan(&o.SkillName, &status); err != nil {
			return nil, fmt.Errorf("sqlite: scan progress: %w", err)
		}
		o.Status = types.SkillStatus(status)
		overrides = append(overrides, o)
	}
	return overrides, rows.Err()
}

func (s *SQLiteStore) UpsertProgress(ctx context.Context, userID uuid.UUID, roleID string, override types.ProgressOverride) error {
	if err := override.Validate(); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO skill_progress (user_id, role_id, skill_key, skill_name, status, seq)
		 VALUES (?, ?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM skill_progress))
		 ON CONFLICT (user_id, role_id, skill_key)
		 DO UPDATE SET skill_name = excluded.skill_name, status = excluded.status, seq = excluded.seq`,
		userID.String(), roleID, skills.Key(override.SkillName), override.SkillName, string(override.Status),
	)
	if err != nil {
		return fmt.Errorf("sqlite: upsert progress for %s: %w", override.SkillName, err)
	}
	return nil
}

func (s *SQLiteStore) SaveResumeScore(ctx context.Context, userID uuid.UUID, snapshot types.ScoreSnapshot) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO resume_scores (user_id, role_id, score, created_at) VALUES (?, ?, ?, ?)`,
		userID.String(), snapshot.RoleID, snapshot.Score, snapshotTime(snapshot).Format(sqliteTimeFormat),
	)
	if err != nil {
		return fmt.Errorf("sqlite: save resume score: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ListResumeScores(ctx context.Context, userID uuid.UUID, roleID string) ([]types.ScoreSnapshot, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT score, role_id, created_at FROM resume_scores
		 WHERE user_id = ? AND (? = '' OR role_id = ?)
		 ORDER BY created_at, id`,
		userID.String(), roleID, roleID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list resume scores: %w", err)
	}
	defer rows.Close()

	history := []types.ScoreSnapshot{}
	for rows.Next() {
		var snap types.ScoreSnapshot
		var created string
		if err := rows.Scan(&snap.Score, &snap.RoleID, &created); err != nil {
			return nil, fmt.Errorf("sqlite: scan resume score: %w", err)
		}
		snap.CreatedAt, err = time.Parse(sqliteTimeFormat, created)
		if err != nil {
			return nil, fmt.Errorf("sqlite: parse created_at %q: %w", created, err)
		}
		history = append(history, snap)
	}
	return history, rows.Err()
}

func (s *SQLiteStore) SaveLearningPlan(ctx context.Context, userID uuid.UUID, plan *types.LearningPlan) (string, error) {
	id, err := ensurePlanID(plan)
	if err != nil {
		return "", err
	}
	content, err := json.Marshal(plan)
	if err != nil {
		return "", fmt.Errorf("sqlite: marshal learning plan: %w", err)
	}

	var user any
	if userID != uuid.Nil {
		user = userID.String()
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO learning_plans (id, user_id, role_id, duration_days, plan, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET plan = excluded.plan, created_at = excluded.created_at`,
		id.String(), user, plan.RoleID, plan.DurationDays, string(content), time.Now().UTC().Format(sqliteTimeFormat),
	)
	if err != nil {
		return "", fmt.Errorf("sqlite: save learning plan: %w", err)
	}
	return id.String(), nil
}

func (s *SQLiteStore) GetLearningPlan(ctx context.Context, planID string) (*types.LearningPlan, error) {
	var content string
	err := s.db.QueryRowContext(ctx,
		`SELECT plan FROM learning_plans WHERE id = ?`, planID,
	).Scan(&content)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("sqlite: get learning plan: %w", err)
	}
	return decodePlan([]byte(content))
}

// sqliteTimeFormat is fixed-width so that text ordering matches time ordering.
const sqliteTimeFormat = "2006-01-02T15:04:05.000000000Z07:00"

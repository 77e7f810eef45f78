package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-engine/internal/types"
)

// runStoreSuite exercises the behaviour every Store backend must share.
func runStoreSuite(t *testing.T, newStore func(t *testing.T) Store) {
	t.Run("progress upsert keeps one row per skill", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()
		user := uuid.New()

		require.NoError(t, store.UpsertProgress(ctx, user, "backend_developer", types.ProgressOverride{SkillName: "Docker", Status: types.StatusInProgress}))
		require.NoError(t, store.UpsertProgress(ctx, user, "backend_developer", types.ProgressOverride{SkillName: "Git", Status: types.StatusCompleted}))
		require.NoError(t, store.UpsertProgress(ctx, user, "backend_developer", types.ProgressOverride{SkillName: "docker", Status: types.StatusCompleted}))

		list, err := store.ListProgress(ctx, user, "backend_developer")
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, types.ProgressOverride{SkillName: "Git", Status: types.StatusCompleted}, list[0])
		assert.Equal(t, types.ProgressOverride{SkillName: "docker", Status: types.StatusCompleted}, list[1])

		other, err := store.ListProgress(ctx, user, "data_analyst")
		require.NoError(t, err)
		assert.Empty(t, other)
		assert.NotNil(t, other)
	})

	t.Run("progress rejects invalid status", func(t *testing.T) {
		store := newStore(t)
		err := store.UpsertProgress(context.Background(), uuid.New(), "backend_developer", types.ProgressOverride{SkillName: "Git", Status: "done"})
		assert.Error(t, err)
	})

	t.Run("resume scores are ordered by time and filtered by role", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()
		user := uuid.New()
		base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

		require.NoError(t, store.SaveResumeScore(ctx, user, types.ScoreSnapshot{Score: 70, RoleID: "backend_developer", CreatedAt: base.Add(2 * time.Hour)}))
		require.NoError(t, store.SaveResumeScore(ctx, user, types.ScoreSnapshot{Score: 40, RoleID: "backend_developer", CreatedAt: base}))
		require.NoError(t, store.SaveResumeScore(ctx, user, types.ScoreSnapshot{Score: 55, RoleID: "data_analyst", CreatedAt: base.Add(time.Hour)}))

		all, err := store.ListResumeScores(ctx, user, "")
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, []int{40, 55, 70}, []int{all[0].Score, all[1].Score, all[2].Score})
		assert.True(t, all[0].CreatedAt.Equal(base))

		backend, err := store.ListResumeScores(ctx, user, "backend_developer")
		require.NoError(t, err)
		require.Len(t, backend, 2)
		assert.Equal(t, 40, backend[0].Score)

		none, err := store.ListResumeScores(ctx, uuid.New(), "")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("learning plans round trip", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()
		plan := &types.LearningPlan{
			RoleID:       "frontend_developer",
			RoleName:     "Frontend Developer",
			DurationDays: 30,
			GeneratedAt:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			Weeks: []types.LearningPlanWeek{{
				Week:      1,
				Title:     "Week 1: React",
				Goals:     []string{"Learn React fundamentals"},
				Resources: []types.LearningResource{{Title: "React Docs - Learn", Provider: "React", URL: "https://react.dev/learn"}},
			}},
		}

		id, err := store.SaveLearningPlan(ctx, uuid.New(), plan)
		require.NoError(t, err)
		assert.Equal(t, id, plan.ID)
		_, err = uuid.Parse(id)
		require.NoError(t, err)

		got, err := store.GetLearningPlan(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, plan.RoleID, got.RoleID)
		assert.Equal(t, plan.Weeks, got.Weeks)
		assert.True(t, plan.GeneratedAt.Equal(got.GeneratedAt))

		_, err = store.GetLearningPlan(ctx, uuid.NewString())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("anonymous plans are stored", func(t *testing.T) {
		store := newStore(t)
		id, err := store.SaveLearningPlan(context.Background(), uuid.Nil, &types.LearningPlan{RoleID: "data_analyst", DurationDays: 60, Weeks: []types.LearningPlanWeek{}})
		require.NoError(t, err)
		assert.NotEmpty(t, id)
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) Store {
		return NewMemoryStore()
	})
}

func TestSQLiteStore(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) Store {
		store, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "career.db"))
		require.NoError(t, err)
		t.Cleanup(store.Close)
		return store
	})
}

func TestSQLiteStore_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "career.db")
	store, err := OpenSQLite(context.Background(), path)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestSaveLearningPlan_RejectsBadID(t *testing.T) {
	_, err := NewMemoryStore().SaveLearningPlan(context.Background(), uuid.Nil, &types.LearningPlan{ID: "not-a-uuid"})
	assert.Error(t, err)

	_, err = NewMemoryStore().SaveLearningPlan(context.Background(), uuid.Nil, nil)
	assert.Error(t, err)
}

func TestPostgresStore(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	runStoreSuite(t, func(t *testing.T) Store {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		store, err := Connect(ctx, dbURL)
		if err != nil {
			t.Skipf("Skipping integration test: failed to connect to DB: %v", err)
		}
		require.NoError(t, store.EnsureSchema(ctx))
		t.Cleanup(store.Close)
		return store
	})
}

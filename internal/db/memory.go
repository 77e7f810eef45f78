package db

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/career-engine/internal/skills"
	"github.com/jonathan/career-engine/internal/types"
)

type progressKey struct {
	user uuid.UUID
	role string
}

// MemoryStore keeps everything in process memory. Used when no database is configured and in tests.
type MemoryStore struct {
	mu       sync.Mutex
	progress map[progressKey][]types.ProgressOverride
	scores   map[uuid.UUID][]types.ScoreSnapshot
	plans    map[string][]byte
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		progress: make(map[progressKey][]types.ProgressOverride),
		scores:   make(map[uuid.UUID][]types.ScoreSnapshot),
		plans:    make(map[string][]byte),
	}
}

func (m *MemoryStore) Close() {}

func (m *MemoryStore) ListProgress(_ context.Context, userID uuid.UUID, roleID string) ([]types.ProgressOverride, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	list := m.progress[progressKey{userID, roleID}]
	out := make([]types.ProgressOverride, len(list))
	copy(out, list)
	return out, nil
}

// UpsertProgress moves an updated skill to the end, matching update-time ordering in the SQL stores.
func (m *MemoryStore) UpsertProgress(_ context.Context, userID uuid.UUID, roleID string, override types.ProgressOverride) error {
	if err := override.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	k := progressKey{userID, roleID}
	key := skills.Key(override.SkillName)
	list := m.progress[k][:0:0]
	for _, o := range m.progress[k] {
		if skills.Key(o.SkillName) != key {
			list = append(list, o)
		}
	}
	m.progress[k] = append(list, override)
	return nil
}

func (m *MemoryStore) SaveResumeScore(_ context.Context, userID uuid.UUID, snapshot types.ScoreSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot.CreatedAt = snapshotTime(snapshot)
	m.scores[userID] = append(m.scores[userID], snapshot)
	return nil
}

func (m *MemoryStore) ListResumeScores(_ context.Context, userID uuid.UUID, roleID string) ([]types.ScoreSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	history := []types.ScoreSnapshot{}
	for _, s := range m.scores[userID] {
		if roleID == "" || s.RoleID == roleID {
			history = append(history, s)
		}
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].CreatedAt.Before(history[j].CreatedAt)
	})
	return history, nil
}

func (m *MemoryStore) SaveLearningPlan(_ context.Context, _ uuid.UUID, plan *types.LearningPlan) (string, error) {
	id, err := ensurePlanID(plan)
	if err != nil {
		return "", err
	}
	content, err := json.Marshal(plan)
	if err != nil {
		return "", fmt.Errorf("failed to marshal learning plan: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.plans[id.String()] = content
	return id.String(), nil
}

func (m *MemoryStore) GetLearningPlan(_ context.Context, planID string) (*types.LearningPlan, error) {
	m.mu.Lock()
	content, ok := m.plans[planID]
	m.mu.Unlock()
	if !ok {
		return nil, ErrNotFound
	}
	return decodePlan(content)
}

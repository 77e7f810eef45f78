package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-engine/internal/cache"
	"github.com/jonathan/career-engine/internal/catalog"
	"github.com/jonathan/career-engine/internal/db"
	"github.com/jonathan/career-engine/internal/matching"
	"github.com/jonathan/career-engine/internal/strength"
	"github.com/jonathan/career-engine/internal/types"
)

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newClock() *clock {
	return &clock{t: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
}

type stubRemote struct {
	result types.MatchResult
	err    error
}

func (s stubRemote) Name() string { return "stub" }

func (s stubRemote) TryScore(context.Context, matching.MatchRequest) (types.MatchResult, error) {
	return s.result, s.err
}

type failingProgress struct{}

func (failingProgress) ListProgress(context.Context, uuid.UUID, string) ([]types.ProgressOverride, error) {
	return nil, errors.New("connection refused")
}

func (failingProgress) UpsertProgress(context.Context, uuid.UUID, string, types.ProgressOverride) error {
	return errors.New("connection refused")
}

func TestEngine_Defaults(t *testing.T) {
	e := New(Options{})

	roles := e.ListRoles()
	require.Len(t, roles, 3)
	assert.Equal(t, "Backend Developer", roles[0].Name)
	assert.Equal(t, []string{"node.js", "sql"}, e.NormalizeSkills([]string{" Node.js", "SQL", "sql", ""}))
	assert.Equal(t, "backend_developer", e.Role("unknown").ID)
}

func TestEngine_ScoreMatch_Local(t *testing.T) {
	e := New(Options{Logger: quietLogger})
	job := types.Job{Title: "API Engineer", Skills: []string{"Node.js", "SQL", "Docker"}}

	result := e.ScoreMatch(context.Background(), []string{"docker", "sql", "node.js"}, job)

	assert.Equal(t, 100, result.MatchScore)
	assert.Equal(t, []string{"Node.js", "SQL", "Docker"}, result.MatchedSkills)
	assert.Empty(t, result.MissingSkills)
	assert.Equal(t, types.SourceLocal, result.Source)
}

func TestEngine_ScoreMatch_RemoteThenFallback(t *testing.T) {
	job := types.Job{Requirements: []string{"Python", "SQL"}}
	remote := types.MatchResult{MatchScore: 42, MatchedSkills: []string{"SQL"}, MissingSkills: []string{"Python"}, Explanation: "remote", Source: types.SourceRemote}

	ok := New(Options{Scorer: matching.NewFallbackScorer(nil, quietLogger, stubRemote{result: remote})})
	assert.Equal(t, remote, ok.ScoreMatch(context.Background(), []string{"SQL"}, job))

	failing := New(Options{Scorer: matching.NewFallbackScorer(nil, quietLogger, stubRemote{err: errors.New("timeout")})})
	result := failing.ScoreMatch(context.Background(), []string{"SQL"}, job)
	assert.Equal(t, types.SourceLocal, result.Source)
	assert.Equal(t, []string{"SQL"}, result.MatchedSkills)
	assert.Equal(t, []string{"Python"}, result.MissingSkills)
}

func TestEngine_RankJobs(t *testing.T) {
	e := New(Options{Logger: quietLogger, BatchLimit: 2})
	jobs := []types.Job{
		{ID: "a", Skills: []string{"Excel"}},
		{ID: "b", Skills: []string{"Python", "SQL"}},
		{ID: "c", Skills: []string{"Python", "Go"}},
	}

	ranked, err := e.RankJobs(context.Background(), []string{"Python", "SQL"}, jobs)
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.Equal(t, "b", ranked[0].Job.ID)
	assert.Equal(t, "c", ranked[1].Job.ID)
	assert.Equal(t, "a", ranked[2].Job.ID)
}

func TestEngine_RankCandidates(t *testing.T) {
	e := New(Options{Logger: quietLogger})
	job := types.Job{Skills: []string{"React", "TypeScript"}}
	candidates := []types.Candidate{
		{ID: "1", Skills: []string{"Java"}},
		{ID: "2", Skills: []string{"React", "TypeScript"}},
	}

	ranked, err := e.RankCandidates(context.Background(), job, candidates)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "2", ranked[0].Candidate.ID)
	assert.Equal(t, 100, ranked[0].Result.MatchScore)
}

func TestEngine_ScoreResumeStrength_UnknownRole(t *testing.T) {
	e := New(Options{})
	resume := types.ParsedResumeData{Name: "Ada Lovelace", Email: "ada@example.com", Skills: []string{"SQL", "Git"}}

	got := e.ScoreResumeStrength(resume, []string{"Docker"}, "astronaut")
	backend, _ := catalog.Default().Role("backend_developer")
	assert.Equal(t, strength.Score(resume, []string{"Docker"}, backend), got)
}

func TestEngine_BuildRoadmapAndPlan(t *testing.T) {
	clk := newClock()
	e := New(Options{Now: clk.now})

	items := e.BuildRoadmap("backend_developer", []string{"Node.js", "SQL", "Docker"}, nil)
	require.Len(t, items, 7)
	assert.Equal(t, types.StatusCompleted, items[0].Status)
	assert.Equal(t, types.StatusMissing, items[1].Status)

	plan, err := e.GenerateLearningPlan("backend_developer", items, 30)
	require.NoError(t, err)
	require.Len(t, plan.Weeks, 4)
	assert.Equal(t, "Week 1: Express Focus", plan.Weeks[0].Title)
	assert.Equal(t, clk.t, plan.GeneratedAt)

	_, err = e.GenerateLearningPlan("backend_developer", items, 45)
	assert.ErrorIs(t, err, types.ErrInvalidDuration)
}

func TestEngine_Explain(t *testing.T) {
	e := New(Options{})

	exp := e.ExplainRecommendation([]string{"sql"}, []string{"SQL", "Python"})
	assert.Equal(t, "You match 1 out of 2 required skills.", exp.Summary)

	forRole := e.ExplainForRole([]string{"Python", "SQL"}, "data_analyst")
	assert.Equal(t, 2, forRole.MatchedCount)
	assert.Equal(t, 7, forRole.TotalRequired)
	assert.Len(t, forRole.ImprovementImpacts, 3)
}

func TestEngine_InterviewAndPlanner(t *testing.T) {
	e := New(Options{})

	pack := e.MockInterview("frontend_developer")
	assert.Equal(t, "frontend_developer", pack.RoleID)
	assert.Len(t, pack.Technical, 4)
	assert.Len(t, pack.Behavioral, 3)

	days := e.WeeklyPlanner(e.BuildRoadmap("frontend_developer", nil, nil))
	assert.Len(t, days, 3)
}

func TestEngine_RecordProgress(t *testing.T) {
	store := db.NewMemoryStore()
	e := New(Options{Progress: store})
	ctx := context.Background()
	user := uuid.NewString()

	err := e.RecordProgress(ctx, types.ProgressUpdateRequest{UserID: user, RoleID: "backend_developer", SkillName: "Docker", Status: types.StatusInProgress})
	require.NoError(t, err)

	items, err := e.RoadmapForUser(ctx, user, "backend_developer", []string{"Node.js"})
	require.NoError(t, err)
	byskill := map[string]types.SkillStatus{}
	for _, item := range items {
		byskill[item.Skill] = item.Status
	}
	assert.Equal(t, types.StatusCompleted, byskill["Node.js"])
	assert.Equal(t, types.StatusInProgress, byskill["Docker"])
	assert.Equal(t, types.StatusMissing, byskill["Git"])

	// Another user's roadmap is unaffected
	other, err := e.RoadmapForUser(ctx, uuid.NewString(), "backend_developer", nil)
	require.NoError(t, err)
	for _, item := range other {
		assert.Equal(t, types.StatusMissing, item.Status)
	}
}

func TestEngine_RecordProgress_Errors(t *testing.T) {
	ctx := context.Background()
	valid := types.ProgressUpdateRequest{UserID: uuid.NewString(), RoleID: "backend_developer", SkillName: "Git", Status: types.StatusCompleted}

	err := New(Options{}).RecordProgress(ctx, valid)
	assert.ErrorIs(t, err, ErrNoStore)

	bad := valid
	bad.Status = "finished"
	err = New(Options{Progress: db.NewMemoryStore()}).RecordProgress(ctx, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid progress update")

	bad = valid
	bad.UserID = "nobody"
	err = New(Options{Progress: db.NewMemoryStore()}).RecordProgress(ctx, bad)
	assert.Error(t, err)
}

func TestEngine_RoadmapForUser_StoreFailureDegrades(t *testing.T) {
	e := New(Options{Progress: failingProgress{}, Logger: quietLogger})

	items, err := e.RoadmapForUser(context.Background(), uuid.NewString(), "data_analyst", []string{"Python"})
	require.NoError(t, err)
	require.Len(t, items, 7)
	assert.Equal(t, types.StatusCompleted, items[0].Status)
	assert.Equal(t, types.StatusMissing, items[1].Status)

	_, err = e.RoadmapForUser(context.Background(), "not-a-uuid", "data_analyst", nil)
	assert.Error(t, err)
}

func TestEngine_ResumeScoreHistory(t *testing.T) {
	clk := newClock()
	e := New(Options{Scores: db.NewMemoryStore(), Now: clk.now})
	ctx := context.Background()
	user := uuid.NewString()

	require.NoError(t, e.RecordResumeScore(ctx, user, "backend_developer", types.ResumeStrengthScore{OverallScore: 35}))
	clk.advance(24 * time.Hour)
	require.NoError(t, e.RecordResumeScore(ctx, user, "backend_developer", types.ResumeStrengthScore{OverallScore: 61}))

	delta, err := e.ProgressDeltaForUser(ctx, user, "backend_developer")
	require.NoError(t, err)
	assert.Equal(t, 26, delta)

	delta, err = e.ProgressDeltaForUser(ctx, uuid.NewString(), "")
	require.NoError(t, err)
	assert.Zero(t, delta)

	_, err = New(Options{}).ProgressDeltaForUser(ctx, user, "")
	assert.ErrorIs(t, err, ErrNoStore)
}

func TestEngine_LearningPlanForUser_CachesAndStores(t *testing.T) {
	clk := newClock()
	store := db.NewMemoryStore()
	e := New(Options{
		Progress: store,
		Plans:    store,
		Cache:    cache.NewMemoryPlanCache(time.Hour, clk.now),
		Now:      clk.now,
	})
	ctx := context.Background()
	user := uuid.NewString()
	req := types.LearningPlanRequest{UserID: user, RoleID: "frontend_developer", DurationDays: 60, ResumeSkills: []string{"HTML", "CSS"}}

	first, err := e.LearningPlanForUser(ctx, req)
	require.NoError(t, err)
	require.Len(t, first.Weeks, 8)
	require.NotEmpty(t, first.ID)

	stored, err := e.LearningPlan(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Weeks, stored.Weeks)

	clk.advance(time.Minute)
	second, err := e.LearningPlanForUser(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "second call should be served from cache")

	// Recording progress changes the pending skills, so a fresh plan is generated
	require.NoError(t, e.RecordProgress(ctx, types.ProgressUpdateRequest{UserID: user, RoleID: "frontend_developer", SkillName: "JavaScript", Status: types.StatusCompleted}))
	third, err := e.LearningPlanForUser(ctx, req)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, third.ID)
	assert.Equal(t, "Week 1: TypeScript Focus", third.Weeks[0].Title)
}

func TestEngine_LearningPlanForUser_Validation(t *testing.T) {
	e := New(Options{})
	ctx := context.Background()

	_, err := e.LearningPlanForUser(ctx, types.LearningPlanRequest{RoleID: "data_analyst", DurationDays: 14})
	assert.ErrorIs(t, err, types.ErrInvalidDuration)

	_, err = e.LearningPlanForUser(ctx, types.LearningPlanRequest{UserID: "x", RoleID: "data_analyst", DurationDays: 30})
	assert.Error(t, err)

	plan, err := e.LearningPlanForUser(ctx, types.LearningPlanRequest{RoleID: "data_analyst", DurationDays: 30})
	require.NoError(t, err)
	assert.Equal(t, "Week 1: Python Focus", plan.Weeks[0].Title)
	assert.Empty(t, plan.ID)

	_, err = e.LearningPlan(ctx, "anything")
	assert.ErrorIs(t, err, ErrNoStore)
}

// Package engine exposes the career engine's entry points over an injected catalog,
// match scorer and optional stores.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-engine/internal/cache"
	"github.com/jonathan/career-engine/internal/catalog"
	"github.com/jonathan/career-engine/internal/explain"
	"github.com/jonathan/career-engine/internal/matching"
	"github.com/jonathan/career-engine/internal/roadmap"
	"github.com/jonathan/career-engine/internal/skills"
	"github.com/jonathan/career-engine/internal/strength"
	"github.com/jonathan/career-engine/internal/types"
)

// ErrNoStore is returned by operations that need a store the engine was not given.
var ErrNoStore = errors.New("no store configured")

// ProgressStore persists per-user skill statuses.
type ProgressStore interface {
	ListProgress(ctx context.Context, userID uuid.UUID, roleID string) ([]types.ProgressOverride, error)
	UpsertProgress(ctx context.Context, userID uuid.UUID, roleID string, override types.ProgressOverride) error
}

// ScoreStore persists resume score history.
type ScoreStore interface {
	SaveResumeScore(ctx context.Context, userID uuid.UUID, snapshot types.ScoreSnapshot) error
	ListResumeScores(ctx context.Context, userID uuid.UUID, roleID string) ([]types.ScoreSnapshot, error)
}

// PlanStore persists generated learning plans.
type PlanStore interface {
	SaveLearningPlan(ctx context.Context, userID uuid.UUID, plan *types.LearningPlan) (string, error)
	GetLearningPlan(ctx context.Context, planID string) (*types.LearningPlan, error)
}

// PlanCache is a short-lived cache of learning plans. Get returns nil on a miss.
type PlanCache interface {
	Get(ctx context.Context, key string) (*types.LearningPlan, error)
	Set(ctx context.Context, key string, plan *types.LearningPlan) error
}

// Options configures an Engine. Nil stores disable the operations that need them.
type Options struct {
	Catalog    *catalog.Catalog
	Scorer     *matching.FallbackScorer
	Progress   ProgressStore
	Scores     ScoreStore
	Plans      PlanStore
	Cache      PlanCache
	CacheKey   func(userID, roleID string, durationDays int, skillSet []string) string
	Logger     *slog.Logger
	Now        func() time.Time
	BatchLimit int
}

// Engine is safe for concurrent use when its stores are.
type Engine struct {
	catalog    *catalog.Catalog
	scorer     *matching.FallbackScorer
	progress   ProgressStore
	scores     ScoreStore
	plans      PlanStore
	cache      PlanCache
	cacheKey   func(userID, roleID string, durationDays int, skillSet []string) string
	logger     *slog.Logger
	now        func() time.Time
	batchLimit int
}

// New builds an Engine from opts.
func New(opts Options) *Engine {
	e := &Engine{
		catalog:    opts.Catalog,
		scorer:     opts.Scorer,
		progress:   opts.Progress,
		scores:     opts.Scores,
		plans:      opts.Plans,
		cache:      opts.Cache,
		cacheKey:   opts.CacheKey,
		logger:     opts.Logger,
		now:        opts.Now,
		batchLimit: opts.BatchLimit,
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	if e.catalog == nil {
		e.catalog = catalog.Default()
	}
	if e.scorer == nil {
		e.scorer = matching.NewFallbackScorer(nil, e.logger)
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.batchLimit <= 0 {
		e.batchLimit = matching.DefaultBatchLimit
	}
	if e.cacheKey == nil {
		e.cacheKey = cache.PlanKey
	}
	return e
}

// NormalizeSkills returns canonical, de-duplicated skill keys in first-occurrence order.
func (e *Engine) NormalizeSkills(list []string) []string {
	return skills.Normalize(list)
}

// ListRoles returns copies of every catalog role.
func (e *Engine) ListRoles() []types.RoleDefinition {
	return e.catalog.Roles()
}

// Role resolves a role id, falling back to the first catalog role.
func (e *Engine) Role(roleID string) types.RoleDefinition {
	return e.catalog.RoleOrDefault(roleID)
}

// ScoreMatch scores a candidate's skills against a job.
func (e *Engine) ScoreMatch(ctx context.Context, candidateSkills []string, job types.Job) types.MatchResult {
	return e.scorer.Score(ctx, matching.RequestForJob(candidateSkills, job))
}

// RankJobs scores every job for one candidate, best match first.
func (e *Engine) RankJobs(ctx context.Context, candidateSkills []string, jobs []types.Job) ([]types.JobMatch, error) {
	return matching.RankJobs(ctx, e.scorer, candidateSkills, jobs, e.batchLimit)
}

// RankCandidates scores every candidate for one job, best match first.
func (e *Engine) RankCandidates(ctx context.Context, job types.Job, candidates []types.Candidate) ([]types.CandidateMatch, error) {
	return matching.RankCandidates(ctx, e.scorer, job, candidates, e.batchLimit)
}

// ScoreResumeStrength scores a resume against a role.
func (e *Engine) ScoreResumeStrength(resume types.ParsedResumeData, resumeSkills []string, roleID string) types.ResumeStrengthScore {
	return strength.Score(resume, resumeSkills, e.catalog.RoleOrDefault(roleID))
}

// BuildRoadmap classifies every required skill of a role.
func (e *Engine) BuildRoadmap(roleID string, resumeSkills []string, overrides []types.ProgressOverride) []types.SkillRoadmapItem {
	return roadmap.Build(e.catalog.RoleOrDefault(roleID), resumeSkills, overrides)
}

// GenerateLearningPlan builds a 30 or 60 day plan from a roadmap.
func (e *Engine) GenerateLearningPlan(roleID string, items []types.SkillRoadmapItem, durationDays int) (*types.LearningPlan, error) {
	return roadmap.GeneratePlan(e.catalog.RoleOrDefault(roleID), items, durationDays, e.catalog, e.now())
}

// ExplainRecommendation summarizes how resume skills cover required skills.
func (e *Engine) ExplainRecommendation(resumeSkills, requiredSkills []string) types.RecommendationExplanation {
	return explain.Explain(resumeSkills, requiredSkills)
}

// ExplainForRole explains coverage of a role's required skills.
func (e *Engine) ExplainForRole(resumeSkills []string, roleID string) types.RecommendationExplanation {
	return explain.Explain(resumeSkills, e.catalog.RoleOrDefault(roleID).RequiredSkills)
}

// WeeklyPlanner returns the short-term planner for a roadmap.
func (e *Engine) WeeklyPlanner(items []types.SkillRoadmapItem) []types.WeeklyPlannerDay {
	return roadmap.WeeklyPlanner(items)
}

// MockInterview returns practice questions for a role.
func (e *Engine) MockInterview(roleID string) types.MockInterviewPack {
	return roadmap.MockInterview(e.catalog.RoleOrDefault(roleID))
}

func parseUserID(userID string) (uuid.UUID, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user id %q: %w", userID, err)
	}
	return id, nil
}

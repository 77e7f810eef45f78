package matching

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-engine/internal/types"
)

// DefaultBatchLimit caps concurrent scoring calls during batch ranking.
const DefaultBatchLimit = 8

// RankJobs scores one candidate against every job and returns the jobs best-first.
// Equal scores keep their input order.
func RankJobs(ctx context.Context, scorer *FallbackScorer, candidateSkills []string, jobs []types.Job, limit int) ([]types.JobMatch, error) {
	results := make([]types.JobMatch, len(jobs))
	err := fanOut(ctx, len(jobs), limit, func(ctx context.Context, i int) {
		results[i] = types.JobMatch{
			Job:    jobs[i],
			Result: scorer.Score(ctx, RequestForJob(candidateSkills, jobs[i])),
		}
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Result.MatchScore > results[b].Result.MatchScore
	})
	return results, nil
}

// RankCandidates scores every candidate against one job and returns them best-first.
// Equal scores keep their input order.
func RankCandidates(ctx context.Context, scorer *FallbackScorer, job types.Job, candidates []types.Candidate, limit int) ([]types.CandidateMatch, error) {
	results := make([]types.CandidateMatch, len(candidates))
	err := fanOut(ctx, len(candidates), limit, func(ctx context.Context, i int) {
		results[i] = types.CandidateMatch{
			Candidate: candidates[i],
			Result:    scorer.Score(ctx, RequestForJob(candidates[i].Skills, job)),
		}
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Result.MatchScore > results[b].Result.MatchScore
	})
	return results, nil
}

// fanOut runs fn for every index with at most limit in flight.
// Each call writes its own slot, so no locking is needed.
func fanOut(ctx context.Context, n, limit int, fn func(ctx context.Context, i int)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if limit <= 0 {
		limit = DefaultBatchLimit
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			fn(gCtx, i)
			return nil
		})
	}
	return g.Wait()
}

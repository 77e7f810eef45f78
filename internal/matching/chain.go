package matching

import (
	"context"
	"log/slog"

	"github.com/jonathan/career-engine/internal/types"
)

// FallbackScorer tries each remote scorer in order and falls back to the local scorer.
// It never returns an error: the local result is always available.
type FallbackScorer struct {
	local   *LocalScorer
	remotes []RemoteScorer
	logger  *slog.Logger
}

// NewFallbackScorer composes remotes in front of local. A nil local uses DefaultWeights.
func NewFallbackScorer(local *LocalScorer, logger *slog.Logger, remotes ...RemoteScorer) *FallbackScorer {
	if local == nil {
		local = NewLocalScorer(DefaultWeights)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FallbackScorer{local: local, remotes: remotes, logger: logger}
}

// Local returns the deterministic scorer at the end of the chain.
func (f *FallbackScorer) Local() *LocalScorer {
	return f.local
}

// Score returns the first successful remote result, or the local result.
func (f *FallbackScorer) Score(ctx context.Context, req MatchRequest) types.MatchResult {
	for _, remote := range f.remotes {
		if ctx.Err() != nil {
			break
		}
		result, err := remote.TryScore(ctx, req)
		if err != nil {
			f.logger.Warn("match scorer unavailable, falling back",
				slog.String("scorer", remote.Name()),
				slog.Any("error", err),
			)
			continue
		}
		return result
	}
	return f.local.Score(req.CandidateSkills, req.RequiredSkills)
}

package strength

import (
	"sort"

	"github.com/jonathan/career-engine/internal/percent"
	"github.com/jonathan/career-engine/internal/types"
)

// ProgressDelta returns how far the latest overall score has moved past the earliest one.
// Regressions clamp to 0; fewer than two snapshots yield 0.
func ProgressDelta(history []types.ScoreSnapshot) int {
	if len(history) < 2 {
		return 0
	}

	ordered := make([]types.ScoreSnapshot, len(history))
	copy(ordered, history)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	first := ordered[0].Score
	latest := ordered[len(ordered)-1].Score
	return percent.Clamp(float64(latest - first))
}

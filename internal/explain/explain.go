// Package explain summarises how a candidate's skills cover a role and what learning each gap is worth.
package explain

import (
	"fmt"
	"math"

	"github.com/jonathan/career-engine/internal/skills"
	"github.com/jonathan/career-engine/internal/types"
)

const maxImprovements = 3

// Explain compares resume skills with required skills.
// Each of the first three missing skills carries the raw impact round(100/total);
// use ForDisplay before presenting impacts to users.
func Explain(resumeSkills, requiredSkills []string) types.RecommendationExplanation {
	resumeSet := skills.NewSet(resumeSkills)
	required := skills.Normalize(requiredSkills)

	matched := 0
	var missing []string
	for _, key := range required {
		if resumeSet.Has(key) {
			matched++
		} else {
			missing = append(missing, key)
		}
	}

	impact := int(math.Round(100 / float64(max(len(required), 1))))
	improvements := make([]types.ImprovementImpact, 0, maxImprovements)
	for _, key := range missing[:min(maxImprovements, len(missing))] {
		improvements = append(improvements, types.ImprovementImpact{
			Skill:  skills.ToDisplay(key),
			Impact: impact,
		})
	}

	return types.RecommendationExplanation{
		MatchedCount:       matched,
		TotalRequired:      len(required),
		Summary:            fmt.Sprintf("You match %d out of %d required skills.", matched, len(required)),
		ImprovementImpacts: improvements,
	}
}

// ForDisplay returns a copy of e with every impact clamped to the displayed range.
func ForDisplay(e types.RecommendationExplanation) types.RecommendationExplanation {
	impacts := make([]types.ImprovementImpact, len(e.ImprovementImpacts))
	for i, imp := range e.ImprovementImpacts {
		impacts[i] = types.ImprovementImpact{Skill: imp.Skill, Impact: imp.DisplayImpact()}
	}
	e.ImprovementImpacts = impacts
	return e
}

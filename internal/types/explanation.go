package types

const (
	minDisplayImpact = 3
	maxDisplayImpact = 30
)

// RecommendationExplanation summarises why a role was recommended.
type RecommendationExplanation struct {
	MatchedCount       int                 `json:"matchedCount"`
	TotalRequired      int                 `json:"totalRequired"`
	Summary            string              `json:"summary"`
	ImprovementImpacts []ImprovementImpact `json:"improvementImpacts"`
}

// ImprovementImpact estimates the score gain from learning one missing skill.
type ImprovementImpact struct {
	Skill  string `json:"skill"`
	Impact int    `json:"impact"`
}

// DisplayImpact clamps the raw impact to the range shown to users.
func (i ImprovementImpact) DisplayImpact() int {
	if i.Impact < minDisplayImpact {
		return minDisplayImpact
	}
	if i.Impact > maxDisplayImpact {
		return maxDisplayImpact
	}
	return i.Impact
}

// Package matching scores candidate skills against job requirements.
//
// The local scorer is deterministic and always available. Remote and LLM scorers
// are optional enhancements composed in front of it by FallbackScorer.
package matching

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-engine/internal/percent"
	"github.com/jonathan/career-engine/internal/similarity"
	"github.com/jonathan/career-engine/internal/skills"
	"github.com/jonathan/career-engine/internal/types"
)

// Weights controls the blend between exact coverage and term similarity.
type Weights struct {
	Exact    float64 `json:"exact"`
	Semantic float64 `json:"semantic"`
}

// DefaultWeights favours exact skill coverage over term similarity.
var DefaultWeights = Weights{Exact: 0.65, Semantic: 0.35}

// Explanation tier thresholds
const (
	strongThreshold   = 75
	moderateThreshold = 50

	explainMatchedLimit = 6
	explainMissingLimit = 5
)

// LocalScorer blends exact skill coverage with TF-IDF cosine similarity.
type LocalScorer struct {
	weights Weights
}

// NewLocalScorer creates a LocalScorer. Zero weights select DefaultWeights.
func NewLocalScorer(weights Weights) *LocalScorer {
	if weights.Exact == 0 && weights.Semantic == 0 {
		weights = DefaultWeights
	}
	return &LocalScorer{weights: weights}
}

// Weights returns the blend weights in use.
func (s *LocalScorer) Weights() Weights {
	return s.weights
}

// Score compares candidate skills against required skills.
// Matched and missing skills keep the required list's order and first-seen spelling.
func (s *LocalScorer) Score(candidate, required []string) types.MatchResult {
	normalizedCandidate := skills.Normalize(candidate)
	requiredDisplay := skills.NewDisplayMap(required)
	normalizedRequired := requiredDisplay.Keys()

	candidateSet := skills.NewSet(normalizedCandidate)
	matched := make([]string, 0, len(normalizedRequired))
	missing := make([]string, 0, len(normalizedRequired))
	for _, key := range normalizedRequired {
		if candidateSet.Has(key) {
			matched = append(matched, requiredDisplay.Display(key))
		} else {
			missing = append(missing, requiredDisplay.Display(key))
		}
	}

	exactCoverage := 0.0
	if len(normalizedRequired) > 0 {
		exactCoverage = float64(len(matched)) / float64(len(normalizedRequired))
	}
	semantic := similarity.Cosine(normalizedCandidate, normalizedRequired)

	blended := percent.Unit(exactCoverage*s.weights.Exact + semantic*s.weights.Semantic)
	score := percent.Clamp(blended * 100)

	return types.MatchResult{
		MatchScore:    score,
		MatchedSkills: matched,
		MissingSkills: missing,
		Explanation:   Explain(score, matched, missing),
		Source:        types.SourceLocal,
	}
}

// Explain renders the tiered explanation for a match score.
func Explain(score int, matched, missing []string) string {
	tier := "Low"
	switch {
	case score >= strongThreshold:
		tier = "Strong"
	case score >= moderateThreshold:
		tier = "Moderate"
	}

	matchedHint := "none"
	if len(matched) > 0 {
		matchedHint = strings.Join(head(matched, explainMatchedLimit), ", ")
	}
	missingHint := "no major gaps"
	if len(missing) > 0 {
		missingHint = strings.Join(head(missing, explainMissingLimit), ", ")
	}

	return fmt.Sprintf("%s alignment with the role requirements (%d%%). Matched skills: %s. Missing focus areas: %s.",
		tier, score, matchedHint, missingHint)
}

func head(list []string, n int) []string {
	if len(list) <= n {
		return list
	}
	return list[:n]
}

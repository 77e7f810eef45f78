package matching

import (
	"encoding/json"
	"math"

	"github.com/jonathan/career-engine/internal/percent"
	"github.com/jonathan/career-engine/internal/types"
)

// decodeScoreResponse reads a collaborator's JSON answer.
// Only a non-object body is an error; missing or mistyped fields become zero values.
func decodeScoreResponse(body []byte, source types.MatchSource) (types.MatchResult, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return types.MatchResult{}, err
	}
	if raw == nil {
		raw = map[string]json.RawMessage{}
	}

	score := ScaleRemoteScore(decodeFloat(raw["matchScore"]))
	matched := decodeStrings(raw["matchedSkills"])
	missing := decodeStrings(raw["missingSkills"])

	explanation := decodeString(raw["explanation"])
	if explanation == "" {
		explanation = Explain(score, matched, missing)
	}

	return types.MatchResult{
		MatchScore:    score,
		MatchedSkills: matched,
		MissingSkills: missing,
		Explanation:   explanation,
		Source:        source,
	}, nil
}

// ScaleRemoteScore converts a collaborator score to a 0-100 integer.
// Values at or below 1 are fractions; anything larger is already a percentage.
func ScaleRemoteScore(value float64) int {
	if math.IsNaN(value) {
		return 0
	}
	if value <= 1 {
		value *= 100
	}
	return percent.Clamp(value)
}

func decodeFloat(raw json.RawMessage) float64 {
	var v float64
	if len(raw) == 0 || json.Unmarshal(raw, &v) != nil {
		return 0
	}
	return v
}

func decodeString(raw json.RawMessage) string {
	var v string
	if len(raw) == 0 || json.Unmarshal(raw, &v) != nil {
		return ""
	}
	return v
}

func decodeStrings(raw json.RawMessage) []string {
	out := []string{}
	if len(raw) == 0 {
		return out
	}
	var items []json.RawMessage
	if json.Unmarshal(raw, &items) != nil {
		return out
	}
	for _, item := range items {
		if s := decodeString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

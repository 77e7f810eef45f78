package types

import "time"

// SectionScores holds the four section percentages of a resume strength score.
type SectionScores struct {
	SkillsCompleteness    int `json:"skillsCompleteness"`
	ExperienceRelevance   int `json:"experienceRelevance"`
	ProjectStrength       int `json:"projectStrength"`
	FormattingConsistency int `json:"formattingConsistency"`
}

// LegacyAliases returns the section scores under their older short names.
// The "education" key has always carried the formatting score.
func (s SectionScores) LegacyAliases() map[string]int {
	return map[string]int{
		"skills":     s.SkillsCompleteness,
		"experience": s.ExperienceRelevance,
		"projects":   s.ProjectStrength,
		"education":  s.FormattingConsistency,
	}
}

// ResumeStrengthScore is the weighted resume assessment for a target role.
type ResumeStrengthScore struct {
	OverallScore int           `json:"overallScore"`
	Sections     SectionScores `json:"sections"`
	Suggestions  []string      `json:"suggestions"`
}

// ScoreSnapshot is a historical overall score used to compute progress.
type ScoreSnapshot struct {
	Score     int       `json:"score"`
	RoleID    string    `json:"roleId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

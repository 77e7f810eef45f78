// Package strength scores how well a parsed resume supports a target role.
package strength

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/career-engine/internal/percent"
	"github.com/jonathan/career-engine/internal/skills"
	"github.com/jonathan/career-engine/internal/types"
)

// Section weights for the overall score
const (
	skillsWeight     = 0.40
	experienceWeight = 0.25
	projectWeight    = 0.20
	formattingWeight = 0.15
)

// Suggestion thresholds
const (
	skillsSuggestionBelow     = 70
	experienceSuggestionBelow = 60
	projectSuggestionBelow    = 60
	formattingSuggestionBelow = 70

	maxMissingSkillsSuggested = 3
)

// Suggestion texts
const (
	experienceSuggestion = "Make experience bullets role-relevant by including tools, outcomes, and impact."
	projectSuggestion    = "Add at least 2 project highlights with outcomes and tools used."
	formattingSuggestion = "Improve resume structure by including clear contact info, summary, and section completeness."
	allGoodSuggestion    = "Great progress. Keep your resume updated with latest projects and achievements."
)

// impactKeywords are verbs that signal measurable outcomes in project descriptions.
var impactKeywords = []string{
	"improved",
	"reduced",
	"optimized",
	"increased",
	"delivered",
	"built",
	"designed",
	"implemented",
	"led",
	"launched",
	"automated",
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Score computes the resume strength for role.
// resumeSkills are merged with the skills the parser found on the resume.
func Score(resume types.ParsedResumeData, resumeSkills []string, role types.RoleDefinition) types.ResumeStrengthScore {
	merged := make([]string, 0, len(resumeSkills)+len(resume.Skills))
	merged = append(merged, resumeSkills...)
	merged = append(merged, resume.Skills...)
	normalizedSkills := skills.Normalize(merged)
	skillSet := skills.NewSet(normalizedSkills)

	sections := types.SectionScores{
		SkillsCompleteness:    scoreSkillsCompleteness(skillSet, role.RequiredSkills),
		ExperienceRelevance:   scoreExperienceRelevance(resume, role.RequiredSkills),
		ProjectStrength:       scoreProjectStrength(resume),
		FormattingConsistency: scoreFormattingConsistency(resume, normalizedSkills),
	}

	overall := percent.Clamp(
		float64(sections.SkillsCompleteness)*skillsWeight +
			float64(sections.ExperienceRelevance)*experienceWeight +
			float64(sections.ProjectStrength)*projectWeight +
			float64(sections.FormattingConsistency)*formattingWeight,
	)

	return types.ResumeStrengthScore{
		OverallScore: overall,
		Sections:     sections,
		Suggestions:  suggestions(sections, skillSet, role.RequiredSkills),
	}
}

func scoreSkillsCompleteness(skillSet skills.Set, required []string) int {
	matched := 0
	for _, skill := range required {
		if skillSet.Has(skill) {
			matched++
		}
	}
	total := max(len(required), 1)
	return percent.Clamp(float64(matched) / float64(total) * 100)
}

func scoreExperienceRelevance(resume types.ParsedResumeData, required []string) int {
	if len(resume.Experience) == 0 {
		return 0
	}

	blob := strings.ToLower(resume.ExperienceText())
	coverage := 0.0
	if len(required) > 0 {
		hits := 0
		for _, skill := range required {
			if key := skills.Key(skill); key != "" && strings.Contains(blob, key) {
				hits++
			}
		}
		coverage = float64(hits) / float64(len(required))
	}
	depth := math.Min(float64(len(resume.Experience))/3, 1)

	return percent.Clamp(coverage*70 + depth*30)
}

// projectTexts returns the flattened project entries, falling back to
// experience entries that mention a project when no projects are listed.
func projectTexts(resume types.ParsedResumeData) []string {
	if len(resume.Projects) > 0 {
		texts := make([]string, 0, len(resume.Projects))
		for _, p := range resume.Projects {
			texts = append(texts, p.Text())
		}
		return texts
	}

	var texts []string
	for _, e := range resume.Experience {
		text := e.Text()
		if strings.Contains(strings.ToLower(text), "project") {
			texts = append(texts, text)
		}
	}
	return texts
}

func scoreProjectStrength(resume types.ParsedResumeData) int {
	projects := projectTexts(resume)
	if len(projects) == 0 {
		return 0
	}

	blob := strings.ToLower(strings.Join(projects, " "))
	countScore := math.Min(float64(len(projects))/3, 1) * 60

	hits := 0
	for _, keyword := range impactKeywords {
		if strings.Contains(blob, keyword) {
			hits++
		}
	}
	impactScore := math.Min(float64(hits)/4, 1) * 40

	return percent.Clamp(countScore + impactScore)
}

func scoreFormattingConsistency(resume types.ParsedResumeData, normalizedSkills []string) int {
	score := 0
	if len([]rune(strings.TrimSpace(resume.Name))) >= 2 {
		score += 20
	}
	if emailPattern.MatchString(strings.TrimSpace(resume.Email)) {
		score += 20
	}
	if len(normalizedSkills) >= 3 {
		score += 20
	}
	if len([]rune(strings.TrimSpace(resume.Summary))) >= 30 {
		score += 15
	}
	if len(resume.Experience) > 0 {
		score += 15
	}
	if len(resume.Education) > 0 {
		score += 10
	}
	return percent.Clamp(float64(score))
}

// suggestions applies each rule independently, in a fixed order.
func suggestions(sections types.SectionScores, skillSet skills.Set, required []string) []string {
	var out []string

	if sections.SkillsCompleteness < skillsSuggestionBelow {
		var missing []string
		for _, skill := range required {
			if !skillSet.Has(skill) {
				missing = append(missing, skill)
			}
			if len(missing) == maxMissingSkillsSuggested {
				break
			}
		}
		if len(missing) > 0 {
			out = append(out, fmt.Sprintf("Add or strengthen these skills: %s.", strings.Join(missing, ", ")))
		}
	}
	if sections.ExperienceRelevance < experienceSuggestionBelow {
		out = append(out, experienceSuggestion)
	}
	if sections.ProjectStrength < projectSuggestionBelow {
		out = append(out, projectSuggestion)
	}
	if sections.FormattingConsistency < formattingSuggestionBelow {
		out = append(out, formattingSuggestion)
	}
	if len(out) == 0 {
		out = append(out, allGoodSuggestion)
	}
	return out
}

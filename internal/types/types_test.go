//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryText(t *testing.T) {
	exp := ExperienceEntry{
		Title:        "Backend Intern",
		Company:      "Acme",
		Description:  "Built a billing project",
		Technologies: []string{"Go", "PostgreSQL"},
		Extra:        []string{"Remote"},
	}
	assert.Equal(t, "Backend Intern Acme Built a billing project Go PostgreSQL Remote", exp.Text())

	proj := ProjectEntry{Name: "Tracker", Highlights: []string{"  Cut latency 40%  "}}
	assert.Equal(t, "Tracker Cut latency 40%", proj.Text())

	assert.Equal(t, "", EducationEntry{}.Text())
}

func TestParsedResumeData_ExperienceText(t *testing.T) {
	r := ParsedResumeData{Experience: []ExperienceEntry{
		{Title: "Dev", Company: "A"},
		{Title: "Lead", Company: "B"},
	}}
	assert.Equal(t, "Dev A Lead B", r.ExperienceText())
	assert.Equal(t, "", ParsedResumeData{}.ExperienceText())
}

func TestJob_RequiredSkills(t *testing.T) {
	assert.Equal(t, []string{"Go"}, Job{Skills: []string{"Go"}, Requirements: []string{"SQL"}}.RequiredSkills())
	assert.Equal(t, []string{"SQL"}, Job{Requirements: []string{"SQL"}}.RequiredSkills())
	assert.Empty(t, Job{Description: "We need Go"}.RequiredSkills())
}

func TestSectionScores_LegacyAliases(t *testing.T) {
	s := SectionScores{SkillsCompleteness: 10, ExperienceRelevance: 20, ProjectStrength: 30, FormattingConsistency: 40}
	aliases := s.LegacyAliases()
	assert.Equal(t, 10, aliases["skills"])
	assert.Equal(t, 20, aliases["experience"])
	assert.Equal(t, 30, aliases["projects"])
	assert.Equal(t, 40, aliases["education"])

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"formattingConsistency":40`)
	assert.NotContains(t, string(data), "education")
}

func TestImprovementImpact_DisplayImpact(t *testing.T) {
	assert.Equal(t, 3, ImprovementImpact{Impact: 1}.DisplayImpact())
	assert.Equal(t, 14, ImprovementImpact{Impact: 14}.DisplayImpact())
	assert.Equal(t, 30, ImprovementImpact{Impact: 100}.DisplayImpact())
}

func TestRoleDefinition_Clone(t *testing.T) {
	role := RoleDefinition{ID: "x", RequiredSkills: []string{"Go"}}
	clone := role.Clone()
	clone.RequiredSkills[0] = "Rust"
	assert.Equal(t, "Go", role.RequiredSkills[0])
}

package roadmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-engine/internal/types"
)

var backendRole = types.RoleDefinition{
	ID:             "backend_developer",
	Name:           "Backend Developer",
	RequiredSkills: []string{"Node.js", "Express", "SQL", "PostgreSQL", "REST API", "Docker", "Git"},
}

func TestBuild_StatusesAndLevels(t *testing.T) {
	items := Build(backendRole, []string{"sql", " GIT ", "python"}, []types.ProgressOverride{
		{SkillName: "docker", Status: types.StatusInProgress},
		{SkillName: "SQL", Status: types.StatusMissing},
	})

	require.Len(t, items, 7)
	expected := []types.SkillRoadmapItem{
		{Skill: "Node.js", Status: types.StatusMissing, Level: types.LevelBeginner},
		{Skill: "Express", Status: types.StatusMissing, Level: types.LevelBeginner},
		{Skill: "SQL", Status: types.StatusMissing, Level: types.LevelBeginner},
		{Skill: "PostgreSQL", Status: types.StatusMissing, Level: types.LevelIntermediate},
		{Skill: "REST API", Status: types.StatusMissing, Level: types.LevelIntermediate},
		{Skill: "Docker", Status: types.StatusInProgress, Level: types.LevelAdvanced},
		{Skill: "Git", Status: types.StatusCompleted, Level: types.LevelAdvanced},
	}
	assert.Equal(t, expected, items)
}

func TestBuild_IgnoresInvalidOverridesAndLastWins(t *testing.T) {
	items := Build(backendRole, nil, []types.ProgressOverride{
		{SkillName: "Express", Status: "started"},
		{SkillName: "Node.js", Status: types.StatusInProgress},
		{SkillName: "node.js", Status: types.StatusCompleted},
		{SkillName: "", Status: types.StatusCompleted},
	})

	assert.Equal(t, types.StatusCompleted, items[0].Status)
	assert.Equal(t, types.StatusMissing, items[1].Status)
}

func TestBuild_EmptyRole(t *testing.T) {
	assert.Empty(t, Build(types.RoleDefinition{ID: "none"}, []string{"go"}, nil))
}

func TestLevelFor_TierPartition(t *testing.T) {
	tests := []struct {
		total        int
		beginner     int
		intermediate int
		advanced     int
	}{
		{total: 9, beginner: 3, intermediate: 3, advanced: 3},
		{total: 7, beginner: 3, intermediate: 2, advanced: 2},
		{total: 1, beginner: 1},
		{total: 2, beginner: 1, intermediate: 1},
		{total: 4, beginner: 2, intermediate: 1, advanced: 1},
	}

	for _, tt := range tests {
		counts := map[types.SkillLevel]int{}
		for i := 0; i < tt.total; i++ {
			counts[LevelFor(i, tt.total)]++
		}
		assert.Equal(t, tt.beginner, counts[types.LevelBeginner], "total=%d", tt.total)
		assert.Equal(t, tt.intermediate, counts[types.LevelIntermediate], "total=%d", tt.total)
		assert.Equal(t, tt.advanced, counts[types.LevelAdvanced], "total=%d", tt.total)
	}
}

func TestWeeklyPlanner(t *testing.T) {
	items := Build(backendRole, []string{"Node.js", "SQL"}, nil)
	days := WeeklyPlanner(items)

	require.Len(t, days, 3)
	assert.Equal(t, "Day 1: Express", days[0].Title)
	assert.Equal(t, "Day 3: REST API", days[2].Title)
	assert.Equal(t, []string{
		"Review fundamentals of Express.",
		"Practice one coding exercise using Express.",
		"Document what you learned in your notes.",
	}, days[0].Tasks)
}

func TestWeeklyPlanner_AllCompletedFallsBack(t *testing.T) {
	items := Build(backendRole, backendRole.RequiredSkills, nil)
	days := WeeklyPlanner(items)

	require.Len(t, days, 3)
	assert.Equal(t, "Day 1: Node.js", days[0].Title)

	assert.Empty(t, WeeklyPlanner(nil))
}

func TestMockInterview(t *testing.T) {
	pack := MockInterview(backendRole)

	assert.Equal(t, "backend_developer", pack.RoleID)
	require.Len(t, pack.Technical, 4)
	assert.Equal(t, "How have you used Node.js in a real project?", pack.Technical[0].Question)
	assert.Equal(t, "Explain one project where you used PostgreSQL, your exact contribution, and the result you achieved.", pack.Technical[3].SuggestedAnswer)
	require.Len(t, pack.Behavioral, 3)
	assert.Contains(t, pack.Behavioral[0].SuggestedAnswer, "STAR")

	short := MockInterview(types.RoleDefinition{ID: "x", RequiredSkills: []string{"Go"}})
	assert.Len(t, short.Technical, 1)

	// callers cannot mutate the shared behavioral set
	pack.Behavioral[0].Question = "changed"
	assert.NotEqual(t, "changed", MockInterview(backendRole).Behavioral[0].Question)
}

package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-engine/internal/types"
)

func TestCoerceJob(t *testing.T) {
	job, err := CoerceJob([]byte(`{"id": 42, "title": "Backend Developer", "requirements": "Node.js, SQL", "description": "<p>Build APIs</p>"}`))
	require.NoError(t, err)

	assert.Equal(t, "42", job.ID)
	assert.Equal(t, []string{}, job.Skills)
	assert.Equal(t, []string{"Node.js", "SQL"}, job.Requirements)
	assert.Equal(t, []string{"Node.js", "SQL"}, job.RequiredSkills())
}

func TestCoerceJobs(t *testing.T) {
	jobs, err := CoerceJobs([]byte(`[{"title": "A", "skills": ["Go"]}, {"id": "b", "title": "B"}]`))
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "job-1", jobs[0].ID)
	assert.Equal(t, "b", jobs[1].ID)

	_, err = CoerceJobs([]byte(`{"title": "A"}`))
	assert.Error(t, err)

}

func TestCoerceJobs_LooseItems(t *testing.T) {
	jobs, err := CoerceJobs([]byte(`[
		{"title": "A", "skills": [{"name": "Go"}, "SQL"]},
		{"title": {"text": "B"}, "skills": 5, "description": ["Build", "APIs"]},
		"Frontend role using React"
	]`))
	require.NoError(t, err)
	require.Len(t, jobs, 3)

	assert.Equal(t, []string{"Go", "SQL"}, jobs[0].Skills)
	assert.Equal(t, "B", jobs[1].Title)
	assert.Equal(t, []string{"5"}, jobs[1].Skills)
	assert.Equal(t, "Build APIs", jobs[1].Description)
	assert.Equal(t, "job-3", jobs[2].ID)
	assert.Equal(t, "Frontend role using React", jobs[2].Description)
	assert.Empty(t, jobs[2].RequiredSkills())
}

func TestCoerceProgress(t *testing.T) {
	overrides, err := CoerceProgress([]byte(`[{"skillName": "Docker", "status": "in_progress"}]`))
	require.NoError(t, err)
	require.Len(t, overrides, 1)
	assert.Equal(t, "Docker", overrides[0].SkillName)
	assert.Equal(t, types.StatusInProgress, overrides[0].Status)

	empty, err := CoerceProgress(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = CoerceProgress([]byte(`[{"skillName": "Docker", "status": "done"}]`))
	var coerceErr *CoerceError
	require.ErrorAs(t, err, &coerceErr)
	assert.Equal(t, "progress", coerceErr.Kind)
}

func TestDescriptionText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text", "  Build   reliable\nservices ", "Build reliable services"},
		{"html", "<div><h2>About</h2><p>Build APIs</p><ul><li>Go</li><li>SQL</li></ul></div>", "About Build APIs Go SQL"},
		{"script removed", "<p>Hello</p><script>alert('x')</script><style>p{}</style>", "Hello"},
		{"empty", "", ""},
		{"comparison operators", "salary > 100k and < 200k", "salary > 100k and < 200k"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DescriptionText(tt.input))
		})
	}
}

// Package ingestion coerces loosely-typed parser and job payloads into engine types.
// It is the only place that deals with missing fields and mixed value shapes.
package ingestion

import (
	"bytes"
	"encoding/json"

	"github.com/jonathan/career-engine/internal/schemas"
	"github.com/jonathan/career-engine/internal/types"
)

// CoerceResume validates and converts raw parser JSON into ParsedResumeData.
// Empty input and JSON null yield the zero resume.
func CoerceResume(raw []byte) (types.ParsedResumeData, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return emptyResume(), nil
	}

	if err := schemas.Validate(schemas.ParsedResume, raw); err != nil {
		return types.ParsedResumeData{}, &CoerceError{Kind: "resume", Message: "payload does not match parsed resume schema", Cause: err}
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return types.ParsedResumeData{}, &CoerceError{Kind: "resume", Message: "invalid JSON", Cause: err}
	}
	return CoerceResumeValue(doc), nil
}

// CoerceResumeValue converts an already-decoded JSON object into ParsedResumeData.
func CoerceResumeValue(doc map[string]any) types.ParsedResumeData {
	resume := emptyResume()
	if doc == nil {
		return resume
	}

	resume.Name = textBlob(doc["name"])
	resume.Email = textBlob(doc["email"])
	resume.Phone = textBlob(doc["phone"])
	resume.Summary = textBlob(doc["summary"])
	resume.Skills = asStringList(doc["skills"])
	resume.Organizations = asStringList(doc["organizations"])
	resume.Dates = asStringList(doc["dates"])

	for _, item := range entries(doc["education"]) {
		resume.Education = append(resume.Education, educationEntry(item))
	}
	for _, item := range entries(doc["experience"]) {
		resume.Experience = append(resume.Experience, experienceEntry(item))
	}
	for _, item := range entries(doc["projects"]) {
		resume.Projects = append(resume.Projects, projectEntry(item))
	}

	return resume
}

func emptyResume() types.ParsedResumeData {
	return types.ParsedResumeData{
		Skills:        []string{},
		Education:     []types.EducationEntry{},
		Experience:    []types.ExperienceEntry{},
		Projects:      []types.ProjectEntry{},
		Organizations: []string{},
		Dates:         []string{},
	}
}

// entries turns a value into records. A single object or string counts as one
// entry; strings and other scalars land in "text".
func entries(v any) []record {
	var list []any
	switch val := v.(type) {
	case nil:
		return nil
	case []any:
		list = val
	default:
		list = []any{val}
	}

	out := make([]record, 0, len(list))
	for _, item := range list {
		if obj, ok := item.(map[string]any); ok {
			r := make(record, len(obj))
			for k, v := range obj {
				r[k] = v
			}
			out = append(out, r)
			continue
		}
		if text := textBlob(item); text != "" {
			out = append(out, record{"text": text})
		}
	}
	return out
}

func educationEntry(r record) types.EducationEntry {
	return types.EducationEntry{
		Institution: r.take("institution", "school", "university"),
		Degree:      r.take("degree"),
		Field:       r.take("field", "major", "fieldOfStudy"),
		Year:        r.take("year", "graduationYear", "dates", "date"),
		Extra:       r.rest(),
	}
}

func experienceEntry(r record) types.ExperienceEntry {
	return types.ExperienceEntry{
		Title:        r.take("title", "role", "position"),
		Company:      r.take("company", "organization", "employer"),
		Duration:     r.take("duration", "dates", "period"),
		Description:  r.take("description", "summary"),
		Highlights:   r.takeList("highlights", "bullets", "responsibilities", "achievements"),
		Technologies: r.takeList("technologies", "skills", "tools"),
		Extra:        r.rest(),
	}
}

func projectEntry(r record) types.ProjectEntry {
	return types.ProjectEntry{
		Name:         r.take("name", "title"),
		Description:  r.take("description", "summary"),
		URL:          r.take("url", "link"),
		Technologies: r.takeList("technologies", "tech", "stack", "skills"),
		Highlights:   r.takeList("highlights", "bullets", "outcomes"),
		Extra:        r.rest(),
	}
}

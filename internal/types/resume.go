package types

import "strings"

// ParsedResumeData is the structured output of the upstream resume parser.
// Every field has a usable zero value; ingestion fills in whatever the parser provided.
type ParsedResumeData struct {
	Name          string            `json:"name"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone"`
	Summary       string            `json:"summary"`
	Skills        []string          `json:"skills"`
	Education     []EducationEntry  `json:"education"`
	Experience    []ExperienceEntry `json:"experience"`
	Projects      []ProjectEntry    `json:"projects"`
	Organizations []string          `json:"organizations"`
	Dates         []string          `json:"dates"`
}

// EducationEntry is a single education record.
type EducationEntry struct {
	Institution string   `json:"institution,omitempty"`
	Degree      string   `json:"degree,omitempty"`
	Field       string   `json:"field,omitempty"`
	Year        string   `json:"year,omitempty"`
	Extra       []string `json:"extra,omitempty"`
}

// Text flattens the entry into a single space-joined string.
func (e EducationEntry) Text() string {
	return joinText([]string{e.Institution, e.Degree, e.Field, e.Year}, e.Extra)
}

// ExperienceEntry is a single work experience record.
type ExperienceEntry struct {
	Title        string   `json:"title,omitempty"`
	Company      string   `json:"company,omitempty"`
	Duration     string   `json:"duration,omitempty"`
	Description  string   `json:"description,omitempty"`
	Highlights   []string `json:"highlights,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Extra        []string `json:"extra,omitempty"`
}

// Text flattens the entry into a single space-joined string.
func (e ExperienceEntry) Text() string {
	fields := []string{e.Title, e.Company, e.Duration, e.Description}
	fields = append(fields, e.Highlights...)
	fields = append(fields, e.Technologies...)
	return joinText(fields, e.Extra)
}

// ProjectEntry is a single project record.
type ProjectEntry struct {
	Name         string   `json:"name,omitempty"`
	Description  string   `json:"description,omitempty"`
	URL          string   `json:"url,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Highlights   []string `json:"highlights,omitempty"`
	Extra        []string `json:"extra,omitempty"`
}

// Text flattens the entry into a single space-joined string.
func (p ProjectEntry) Text() string {
	fields := []string{p.Name, p.Description, p.URL}
	fields = append(fields, p.Technologies...)
	fields = append(fields, p.Highlights...)
	return joinText(fields, p.Extra)
}

// ExperienceText joins the flattened text of every experience entry.
func (r ParsedResumeData) ExperienceText() string {
	parts := make([]string, 0, len(r.Experience))
	for _, e := range r.Experience {
		parts = append(parts, e.Text())
	}
	return strings.Join(parts, " ")
}

func joinText(fields []string, extra []string) string {
	parts := make([]string, 0, len(fields)+len(extra))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			parts = append(parts, f)
		}
	}
	for _, f := range extra {
		if f = strings.TrimSpace(f); f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, " ")
}

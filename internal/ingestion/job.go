package ingestion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/career-engine/internal/schemas"
	"github.com/jonathan/career-engine/internal/types"
)

// CoerceJob validates and converts a single raw job object.
func CoerceJob(raw []byte) (types.Job, error) {
	raw = bytes.TrimSpace(raw)
	if err := schemas.Validate(schemas.Job, raw); err != nil {
		return types.Job{}, &CoerceError{Kind: "job", Message: "payload does not match job schema", Cause: err}
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return types.Job{}, &CoerceError{Kind: "job", Message: "invalid JSON", Cause: err}
	}
	return coerceJobValue(doc), nil
}

// CoerceJobs validates and converts a JSON array of jobs. Items that are not
// objects become jobs whose description is their flattened text.
func CoerceJobs(raw []byte) ([]types.Job, error) {
	raw = bytes.TrimSpace(raw)
	if err := schemas.Validate(schemas.JobList, raw); err != nil {
		return nil, &CoerceError{Kind: "job list", Message: "payload does not match job list schema", Cause: err}
	}

	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, &CoerceError{Kind: "job list", Message: "invalid JSON", Cause: err}
	}

	jobs := make([]types.Job, 0, len(items))
	for i, item := range items {
		doc, ok := item.(map[string]any)
		if !ok {
			doc = map[string]any{"description": item}
		}
		job := coerceJobValue(doc)
		if job.ID == "" {
			job.ID = fmt.Sprintf("job-%d", i+1)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func coerceJobValue(doc map[string]any) types.Job {
	return types.Job{
		ID:           textBlob(doc["id"]),
		Title:        textBlob(doc["title"]),
		Company:      textBlob(doc["company"]),
		Description:  textBlob(doc["description"]),
		Skills:       asStringList(doc["skills"]),
		Requirements: asStringList(doc["requirements"]),
	}
}

// DescriptionText returns the plain text of a job description, stripping HTML markup when present.
func DescriptionText(description string) string {
	if description == "" {
		return ""
	}
	if !strings.Contains(description, "<") || !strings.Contains(description, ">") {
		return collapseWhitespace(description)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(description))
	if err != nil {
		return collapseWhitespace(description)
	}
	doc.Find("script, style, noscript").Remove()
	// Block elements would otherwise glue adjacent words together
	doc.Find("br, p, li, div, h1, h2, h3, h4, h5, h6, tr").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml(" ")
	})

	return collapseWhitespace(doc.Text())
}

func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

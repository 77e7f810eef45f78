package ingestion

import (
	"bytes"
	"encoding/json"

	"github.com/jonathan/career-engine/internal/schemas"
	"github.com/jonathan/career-engine/internal/types"
)

// CoerceProgress reads a list of {skillName, status} overrides.
// Unlike parser output, progress is user-authored and must match its schema exactly.
func CoerceProgress(raw []byte) ([]types.ProgressOverride, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []types.ProgressOverride{}, nil
	}

	if err := schemas.Validate(schemas.Progress, raw); err != nil {
		return nil, &CoerceError{Kind: "progress", Message: "payload does not match progress schema", Cause: err}
	}

	var overrides []types.ProgressOverride
	if err := json.Unmarshal(raw, &overrides); err != nil {
		return nil, &CoerceError{Kind: "progress", Message: "invalid JSON", Cause: err}
	}
	return overrides, nil
}

// Package types provides type definitions for structured data used throughout the career engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillStatus is a learner's state for a single roadmap skill.
type SkillStatus string

const (
	// StatusCompleted means the skill is already present on the resume or marked done.
	StatusCompleted SkillStatus = "completed"
	// StatusInProgress is only ever set through a progress override.
	StatusInProgress SkillStatus = "in_progress"
	// StatusMissing means the skill still has to be learned.
	StatusMissing SkillStatus = "missing"
)

// Valid reports whether s is one of the known statuses.
func (s SkillStatus) Valid() bool {
	switch s {
	case StatusCompleted, StatusInProgress, StatusMissing:
		return true
	}
	return false
}

// SkillLevel is the difficulty tier a roadmap skill falls into.
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
)

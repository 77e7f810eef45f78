package types

import (
	"errors"
	"time"
)

// ErrInvalidDuration is returned when a learning plan is requested for an unsupported length.
var ErrInvalidDuration = errors.New("duration must be 30 or 60 days")

// ValidPlanDuration reports whether days is a supported learning plan length.
func ValidPlanDuration(days int) bool {
	return days == 30 || days == 60
}

// LearningPlan is a week-by-week study plan for a role.
type LearningPlan struct {
	ID           string             `json:"id,omitempty"`
	RoleID       string             `json:"roleId"`
	RoleName     string             `json:"roleName"`
	DurationDays int                `json:"durationDays"`
	GeneratedAt  time.Time          `json:"generatedAt"`
	Weeks        []LearningPlanWeek `json:"weeks"`
}

// LearningPlanWeek is a single week of a learning plan.
type LearningPlanWeek struct {
	Week      int                `json:"week"`
	Title     string             `json:"title"`
	Goals     []string           `json:"goals"`
	Resources []LearningResource `json:"resources"`
}

// WeeklyPlannerDay is one day of the short-term planner.
type WeeklyPlannerDay struct {
	Day   int      `json:"day"`
	Title string   `json:"title"`
	Tasks []string `json:"tasks"`
}

package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ProgressUpdateRequest records a user's status for one skill of a role.
type ProgressUpdateRequest struct {
	UserID    string      `json:"userId" validate:"required,uuid"`
	RoleID    string      `json:"roleId" validate:"required"`
	SkillName string      `json:"skillName" validate:"required"`
	Status    SkillStatus `json:"status" validate:"required,oneof=completed in_progress missing"`
}

// Validate validates the ProgressUpdateRequest.
func (r *ProgressUpdateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Override converts the request into the override applied when building roadmaps.
func (r *ProgressUpdateRequest) Override() ProgressOverride {
	return ProgressOverride{SkillName: r.SkillName, Status: r.Status}
}

// LearningPlanRequest asks for a plan of the given length for a role.
type LearningPlanRequest struct {
	UserID       string   `json:"userId,omitempty" validate:"omitempty,uuid"`
	RoleID       string   `json:"roleId" validate:"required"`
	DurationDays int      `json:"durationDays" validate:"required"`
	ResumeSkills []string `json:"resumeSkills"`
}

// Validate validates the LearningPlanRequest.
func (r *LearningPlanRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if !ValidPlanDuration(r.DurationDays) {
		return fmt.Errorf("%w: got %d", ErrInvalidDuration, r.DurationDays)
	}
	return nil
}

// Validate validates a single ProgressOverride.
func (o *ProgressOverride) Validate() error {
	validate := validator.New()
	return validate.Struct(o)
}

package roadmap

import (
	"fmt"
	"time"

	"github.com/jonathan/career-engine/internal/types"
)

const maxResourcesPerWeek = 3

// ResourceLookup returns learning resources for a skill. Implementations must
// never return an empty list; unknown skills get a generic resource.
type ResourceLookup interface {
	ResourcesFor(skill string) []types.LearningResource
}

// WeeksFor returns the number of plan weeks for a supported duration.
func WeeksFor(durationDays int) (int, error) {
	switch durationDays {
	case 30:
		return 4, nil
	case 60:
		return 8, nil
	default:
		return 0, fmt.Errorf("%w: got %d", types.ErrInvalidDuration, durationDays)
	}
}

// GeneratePlan builds a week-by-week plan that cycles through the skills still to learn.
// When every roadmap skill is completed the role's first required skills are revisited instead.
func GeneratePlan(role types.RoleDefinition, items []types.SkillRoadmapItem, durationDays int, resources ResourceLookup, now time.Time) (*types.LearningPlan, error) {
	weekCount, err := WeeksFor(durationDays)
	if err != nil {
		return nil, err
	}

	focus := make([]string, 0, len(items))
	for _, item := range pending(items) {
		focus = append(focus, item.Skill)
	}
	if len(focus) == 0 {
		focus = append(focus, role.RequiredSkills[:min(weekCount, len(role.RequiredSkills))]...)
	}

	plan := &types.LearningPlan{
		RoleID:       role.ID,
		RoleName:     role.Name,
		DurationDays: durationDays,
		GeneratedAt:  now.UTC(),
		Weeks:        make([]types.LearningPlanWeek, 0, weekCount),
	}
	// a role without skills has nothing to plan
	if len(focus) == 0 {
		return plan, nil
	}

	for i := 0; i < weekCount; i++ {
		primary := focus[i%len(focus)]
		secondary := focus[(i+1)%len(focus)]

		var weekResources []types.LearningResource
		if resources != nil {
			weekResources = append(weekResources, resources.ResourcesFor(primary)...)
			weekResources = append(weekResources, resources.ResourcesFor(secondary)...)
		}
		if len(weekResources) > maxResourcesPerWeek {
			weekResources = weekResources[:maxResourcesPerWeek]
		}
		if weekResources == nil {
			weekResources = []types.LearningResource{}
		}

		plan.Weeks = append(plan.Weeks, types.LearningPlanWeek{
			Week:  i + 1,
			Title: fmt.Sprintf("Week %d: %s Focus", i+1, primary),
			Goals: []string{
				fmt.Sprintf("Complete core concepts of %s.", primary),
				fmt.Sprintf("Build one mini project using %s.", primary),
				fmt.Sprintf("Revise %s basics and solve 3 practice tasks.", secondary),
			},
			Resources: weekResources,
		})
	}

	return plan, nil
}

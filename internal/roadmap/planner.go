package roadmap

import (
	"fmt"

	"github.com/jonathan/career-engine/internal/types"
)

const plannerDays = 3

// WeeklyPlanner picks up to three skills still to learn and lays out one day of practice for each.
// A fully completed roadmap falls back to its first three items.
func WeeklyPlanner(items []types.SkillRoadmapItem) []types.WeeklyPlannerDay {
	selected := pending(items)
	if len(selected) == 0 {
		selected = items
	}
	selected = selected[:min(plannerDays, len(selected))]

	days := make([]types.WeeklyPlannerDay, 0, len(selected))
	for i, item := range selected {
		days = append(days, types.WeeklyPlannerDay{
			Day:   i + 1,
			Title: fmt.Sprintf("Day %d: %s", i+1, item.Skill),
			Tasks: []string{
				fmt.Sprintf("Review fundamentals of %s.", item.Skill),
				fmt.Sprintf("Practice one coding exercise using %s.", item.Skill),
				"Document what you learned in your notes.",
			},
		})
	}
	return days
}

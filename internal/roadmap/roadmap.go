// Package roadmap turns a role's required skills into a tiered roadmap and
// derives study plans, daily planners and interview practice from it.
package roadmap

import (
	"github.com/jonathan/career-engine/internal/skills"
	"github.com/jonathan/career-engine/internal/types"
)

// Build produces one roadmap item per required skill of role, in role order.
// Status comes from a matching override first, then from resumeSkills; nothing is
// ever marked in_progress automatically.
func Build(role types.RoleDefinition, resumeSkills []string, overrides []types.ProgressOverride) []types.SkillRoadmapItem {
	resumeSet := skills.NewSet(resumeSkills)

	// later overrides for the same skill win
	overrideStatus := make(map[string]types.SkillStatus, len(overrides))
	for _, o := range overrides {
		key := skills.Key(o.SkillName)
		if key == "" || !o.Status.Valid() {
			continue
		}
		overrideStatus[key] = o.Status
	}

	total := len(role.RequiredSkills)
	items := make([]types.SkillRoadmapItem, 0, total)
	for i, skill := range role.RequiredSkills {
		key := skills.Key(skill)

		status := types.StatusMissing
		if s, ok := overrideStatus[key]; ok {
			status = s
		} else if resumeSet.Has(key) {
			status = types.StatusCompleted
		}

		items = append(items, types.SkillRoadmapItem{
			Skill:  skill,
			Status: status,
			Level:  LevelFor(i, total),
		})
	}
	return items
}

// LevelFor returns the tier of the skill at index in a list of total skills.
// The first ceil(total/3) skills are beginner, up to ceil(2*total/3) intermediate, the rest advanced.
func LevelFor(index, total int) types.SkillLevel {
	total = max(total, 1)
	beginnerCutoff := ceilDiv(total, 3)
	intermediateCutoff := ceilDiv(2*total, 3)

	switch {
	case index < beginnerCutoff:
		return types.LevelBeginner
	case index < intermediateCutoff:
		return types.LevelIntermediate
	default:
		return types.LevelAdvanced
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// pending returns the items that are not completed, in roadmap order.
func pending(items []types.SkillRoadmapItem) []types.SkillRoadmapItem {
	var out []types.SkillRoadmapItem
	for _, item := range items {
		if item.Status != types.StatusCompleted {
			out = append(out, item)
		}
	}
	return out
}

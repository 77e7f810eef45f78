package types

// SkillRoadmapItem is one skill on a role roadmap.
type SkillRoadmapItem struct {
	Skill  string      `json:"skill"`
	Status SkillStatus `json:"status"`
	Level  SkillLevel  `json:"level"`
}

// ProgressOverride is a user-recorded status for one skill of a role.
type ProgressOverride struct {
	SkillName string      `json:"skillName" validate:"required"`
	Status    SkillStatus `json:"status" validate:"required,oneof=completed in_progress missing"`
}

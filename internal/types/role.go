package types

// RoleDefinition describes a target career role and the skills it requires.
// RequiredSkills order is significant: roadmap tiers are derived from it.
type RoleDefinition struct {
	ID             string   `json:"id" yaml:"id"`
	Name           string   `json:"name" yaml:"name"`
	Description    string   `json:"description" yaml:"description"`
	RequiredSkills []string `json:"requiredSkills" yaml:"required_skills"`
	SuggestedTools []string `json:"suggestedTools" yaml:"suggested_tools"`
	GrowthPath     []string `json:"growthPath" yaml:"growth_path"`
}

// Clone returns a deep copy of the role so callers cannot mutate shared catalog data.
func (r RoleDefinition) Clone() RoleDefinition {
	r.RequiredSkills = cloneStrings(r.RequiredSkills)
	r.SuggestedTools = cloneStrings(r.SuggestedTools)
	r.GrowthPath = cloneStrings(r.GrowthPath)
	return r
}

// LearningResource is a course, guide or tutorial attached to a skill.
type LearningResource struct {
	Title    string `json:"title" yaml:"title"`
	Provider string `json:"provider" yaml:"provider"`
	URL      string `json:"url" yaml:"url"`
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

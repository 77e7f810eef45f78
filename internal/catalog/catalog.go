// Package catalog holds the immutable table of career roles and learning resources.
package catalog

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-engine/internal/skills"
	"github.com/jonathan/career-engine/internal/types"
)

// Fallback describes the generic resource offered for skills without curated material.
type Fallback struct {
	Provider string `yaml:"provider"`
	URL      string `yaml:"url"`
}

// Catalog is a read-only set of roles and per-skill resources.
// Accessors return copies, so a Catalog is safe to share between goroutines.
type Catalog struct {
	roles     []types.RoleDefinition
	roleIndex map[string]int
	resources map[string][]types.LearningResource
	fallback  Fallback
}

// New validates and builds a Catalog. Resource keys are canonicalized.
func New(roles []types.RoleDefinition, resources map[string][]types.LearningResource, fallback Fallback) (*Catalog, error) {
	if len(roles) == 0 {
		return nil, &LoadError{Message: "catalog must define at least one role"}
	}

	c := &Catalog{
		roles:     make([]types.RoleDefinition, 0, len(roles)),
		roleIndex: make(map[string]int, len(roles)),
		resources: make(map[string][]types.LearningResource, len(resources)),
		fallback:  fallback,
	}

	for i, role := range roles {
		role.ID = strings.TrimSpace(role.ID)
		if role.ID == "" {
			return nil, &LoadError{Message: fmt.Sprintf("role %d has no id", i)}
		}
		if strings.TrimSpace(role.Name) == "" {
			return nil, &LoadError{Message: fmt.Sprintf("role %q has no name", role.ID)}
		}
		if _, exists := c.roleIndex[role.ID]; exists {
			return nil, &LoadError{Message: fmt.Sprintf("duplicate role id %q", role.ID)}
		}
		c.roleIndex[role.ID] = len(c.roles)
		c.roles = append(c.roles, role.Clone())
	}

	for skill, list := range resources {
		key := skills.Key(skill)
		if key == "" || len(list) == 0 {
			continue
		}
		c.resources[key] = append(c.resources[key], list...)
	}

	if c.fallback.Provider == "" {
		c.fallback.Provider = "freeCodeCamp"
	}
	if c.fallback.URL == "" {
		c.fallback.URL = "https://www.freecodecamp.org/learn"
	}

	return c, nil
}

// Roles returns every role in catalog order.
func (c *Catalog) Roles() []types.RoleDefinition {
	out := make([]types.RoleDefinition, len(c.roles))
	for i, r := range c.roles {
		out[i] = r.Clone()
	}
	return out
}

// Role looks up a role by id.
func (c *Catalog) Role(id string) (types.RoleDefinition, bool) {
	i, ok := c.roleIndex[strings.TrimSpace(id)]
	if !ok {
		return types.RoleDefinition{}, false
	}
	return c.roles[i].Clone(), true
}

// RoleOrDefault looks up a role by id, falling back to the first catalog role.
func (c *Catalog) RoleOrDefault(id string) types.RoleDefinition {
	if role, ok := c.Role(id); ok {
		return role
	}
	return c.roles[0].Clone()
}

// ResourcesFor returns the curated resources for skill, or a single generic
// "<Skill> Learning Path" resource when none are curated.
func (c *Catalog) ResourcesFor(skill string) []types.LearningResource {
	if list, ok := c.resources[skills.Key(skill)]; ok {
		out := make([]types.LearningResource, len(list))
		copy(out, list)
		return out
	}
	return []types.LearningResource{{
		Title:    fmt.Sprintf("%s Learning Path", skills.ToDisplay(skill)),
		Provider: c.fallback.Provider,
		URL:      c.fallback.URL,
	}}
}

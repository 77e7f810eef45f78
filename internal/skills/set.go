package skills

import "strings"

// Set is a collection of canonical skill keys.
type Set map[string]struct{}

// NewSet builds a set from a skill list, canonicalizing every entry.
func NewSet(list []string) Set {
	set := make(Set, len(list))
	for _, skill := range list {
		if key := Key(skill); key != "" {
			set[key] = struct{}{}
		}
	}
	return set
}

// Has reports whether the set contains the skill, compared by key.
func (s Set) Has(skill string) bool {
	_, ok := s[Key(skill)]
	return ok
}

// DisplayMap maps canonical keys to the first-seen trimmed spelling of a skill list.
type DisplayMap struct {
	keys    []string
	display map[string]string
}

// NewDisplayMap builds a DisplayMap, keeping keys in first-occurrence order.
func NewDisplayMap(list []string) DisplayMap {
	m := DisplayMap{display: make(map[string]string, len(list))}
	for _, skill := range list {
		key := Key(skill)
		if key == "" {
			continue
		}
		if _, exists := m.display[key]; exists {
			continue
		}
		m.display[key] = strings.TrimSpace(skill)
		m.keys = append(m.keys, key)
	}
	return m
}

// Keys returns the canonical keys in first-occurrence order.
func (m DisplayMap) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Display returns the original spelling for key, or ToDisplay(key) when unknown.
func (m DisplayMap) Display(key string) string {
	if d, ok := m.display[key]; ok {
		return d
	}
	return ToDisplay(key)
}

// Len returns the number of distinct skills.
func (m DisplayMap) Len() int {
	return len(m.keys)
}

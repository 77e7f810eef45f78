// Package skills canonicalizes free-text skill lists so they can be compared by key.
package skills

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Key returns the canonical comparison key for a skill: trimmed and lower-cased.
func Key(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// Normalize converts a skill list into unique canonical keys.
// Order follows first occurrence; blank entries are dropped.
func Normalize(list []string) []string {
	normalized := make([]string, 0, len(list))
	seen := make(map[string]struct{}, len(list))

	for _, skill := range list {
		key := Key(skill)
		if key == "" {
			continue
		}
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		normalized = append(normalized, key)
	}

	return normalized
}

// ToDisplay returns the presentation form of a skill.
// Short skills (three characters or fewer) are treated as acronyms and upper-cased;
// longer ones get the first letter of each space-delimited word capitalized.
func ToDisplay(skill string) string {
	if skill == "" {
		return ""
	}
	if utf8.RuneCountInString(skill) <= 3 {
		return strings.ToUpper(skill)
	}

	words := strings.Split(skill, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		first, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(first)) + word[size:]
	}
	return strings.Join(words, " ")
}

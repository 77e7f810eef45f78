// Package similarity computes term-frequency cosine similarity between skill lists.
package similarity

import (
	"regexp"
	"strings"
)

// tokenSplitter keeps characters that carry meaning in skill names, e.g. node.js, c++, c#.
var tokenSplitter = regexp.MustCompile(`[^a-z0-9+#.]+`)

// Tokenize lower-cases a phrase and splits it into terms.
func Tokenize(phrase string) []string {
	parts := tokenSplitter.Split(strings.ToLower(phrase), -1)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// TokenizeDocument concatenates the tokens of every phrase in a document.
func TokenizeDocument(doc []string) []string {
	var tokens []string
	for _, phrase := range doc {
		tokens = append(tokens, Tokenize(phrase)...)
	}
	return tokens
}

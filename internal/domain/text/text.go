// Package text provides snippet helpers shared by the result shapers.
package text

import (
	"regexp"
	"strings"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// StripHTML removes markup from free-text bodies: every tag becomes a single
// space, runs of whitespace collapse to one space, leading/trailing space is
// trimmed. Entities are left as-is.
func StripHTML(s string) string {
	s = tagPattern.ReplaceAllString(s, " ")
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Truncate cuts s to at most limit runes. Strings within the limit are
// returned unchanged; longer ones are cut at limit-1, right-trimmed, and
// terminated with a single ellipsis so the output never exceeds limit.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	cut := strings.TrimRight(string(runes[:limit-1]), " \t\n")
	return cut + "…"
}

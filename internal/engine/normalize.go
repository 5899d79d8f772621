package engine

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonASCIIRe   = regexp.MustCompile(`[^\x00-\x7F]+`)
)

// Normalize prepares raw extracted document text for matching: newlines become
// spaces, whitespace runs collapse to a single space, non-ASCII bytes are
// stripped and the result is lower-cased and trimmed. It never fails and is
// idempotent, so already-normalized text passes through unchanged.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")
	text = nonASCIIRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.ToLower(strings.TrimSpace(text))
}

package engine

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	emailRe       = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	nameNoiseRe   = regexp.MustCompile(`[@\d.\-]`)
	sectionWordRe = regexp.MustCompile(`(?i)summary|education|experience|skills|projects|certifications`)
)

// ExtractEmail returns the first email-looking token found anywhere in the
// raw text.
func ExtractEmail(text string) (string, bool) {
	match := emailRe.FindString(text)
	return match, match != ""
}

// ExtractName guesses the candidate name from the first three lines of raw
// (non-normalized) resume text. A line qualifies when it has no digits,
// '@', periods or hyphens, at most four words, and is either fully
// upper-case or has every alphabetic word capitalized. The longest
// qualifying line wins; section headings that leaked in are stripped.
// Best-effort only: resumes that open with a headline or logo text will
// produce a wrong or missing name, and callers must tolerate that.
func ExtractName(text string) (string, bool) {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	var candidates []string
	for i, line := range lines {
		if i >= 3 {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" || nameNoiseRe.MatchString(line) {
			continue
		}
		if len(strings.Fields(line)) > 4 {
			continue
		}
		if isAllUpper(line) || isCapitalizedWords(line) {
			candidates = append(candidates, line)
		}
	}

	if len(candidates) == 0 {
		return "", false
	}

	name := candidates[0]
	for _, c := range candidates[1:] {
		if len(c) > len(name) {
			name = c
		}
	}

	name = strings.TrimSpace(sectionWordRe.ReplaceAllString(name, ""))
	if name == "" {
		return "", false
	}

	return titleCase(name), true
}

// isAllUpper reports whether the line contains at least one letter and no
// lower-case letters.
func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// isCapitalizedWords reports whether the line starts with an upper-case
// letter and every purely-alphabetic word is capitalized.
func isCapitalizedWords(s string) bool {
	runes := []rune(s)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, word := range strings.Fields(s) {
		wr := []rune(word)
		if isAlphaWord(word) && !unicode.IsUpper(wr[0]) {
			return false
		}
	}
	return true
}

func isAlphaWord(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(word) > 0
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

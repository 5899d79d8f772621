package engine

import (
	"regexp"
	"sort"
)

var wordRe = regexp.MustCompile(`\b\w+\b`)

// ExtractSkills matches the controlled vocabulary against text and returns
// the set of matched canonical skills. Multi-word phrases are matched first
// (longest phrase wins) and erased from the working text, so a shorter phrase
// that is a substring of an already-matched longer phrase is never
// re-detected independently. When the vocabulary has no skills list, every
// non-stop-word token is kept instead.
func ExtractSkills(text string, vocab *Vocabulary) SkillSet {
	cleaned := Normalize(text)
	extracted := make(SkillSet)

	if vocab == nil || vocab.skills.Len() == 0 {
		stopWords := SkillSet{}
		if vocab != nil {
			stopWords = vocab.stopWords
		}
		for _, word := range wordRe.FindAllString(cleaned, -1) {
			if !stopWords.Contains(word) {
				extracted.Add(word)
			}
		}
		return extracted
	}

	// Longest phrases first so "machine learning" is consumed before
	// "learning" gets a chance to match on its own.
	phrases := vocab.skills.Sorted()
	sort.SliceStable(phrases, func(i, j int) bool {
		return len(phrases[i]) > len(phrases[j])
	})

	working := cleaned
	for _, phrase := range phrases {
		pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(phrase) + `\b`)
		if err != nil {
			continue
		}
		if pattern.MatchString(working) {
			extracted.Add(phrase)
			working = pattern.ReplaceAllString(working, " ")
		}
	}

	// Single tokens left over that are themselves vocabulary entries.
	for _, word := range wordRe.FindAllString(working, -1) {
		if vocab.skills.Contains(word) {
			extracted.Add(word)
		}
	}

	return extracted
}

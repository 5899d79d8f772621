package engine

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed vocabulary.yaml
var defaultVocabularyYAML []byte

// Vocabulary holds the controlled skills list used for phrase-priority
// matching and the stop-word set used as a generic fallback when no skills
// list is configured. Both are data, loaded once at startup; the engine does
// not hard-code any terms.
type Vocabulary struct {
	skills    SkillSet
	stopWords SkillSet
}

type vocabularyFile struct {
	Skills    []string `yaml:"skills"`
	StopWords []string `yaml:"stop_words"`
}

// LoadVocabulary reads a vocabulary YAML file from path. An empty path loads
// the embedded default vocabulary.
func LoadVocabulary(path string) (*Vocabulary, error) {
	data := defaultVocabularyYAML
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read vocabulary file: %w", err)
		}
		data = fileData
	}

	return parseVocabulary(data)
}

func parseVocabulary(data []byte) (*Vocabulary, error) {
	var file vocabularyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary: %w", err)
	}

	vocab := &Vocabulary{
		skills:    make(SkillSet, len(file.Skills)),
		stopWords: make(SkillSet, len(file.StopWords)),
	}
	for _, skill := range file.Skills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill != "" {
			vocab.skills.Add(skill)
		}
	}
	for _, word := range file.StopWords {
		word = strings.ToLower(strings.TrimSpace(word))
		if word != "" {
			vocab.stopWords.Add(word)
		}
	}

	return vocab, nil
}

// NewVocabulary builds a vocabulary directly from slices. Used by tests and
// callers that manage their own skill lists.
func NewVocabulary(skills, stopWords []string) *Vocabulary {
	vocab := &Vocabulary{
		skills:    NewSkillSet(),
		stopWords: NewSkillSet(),
	}
	for _, skill := range skills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill != "" {
			vocab.skills.Add(skill)
		}
	}
	for _, word := range stopWords {
		word = strings.ToLower(strings.TrimSpace(word))
		if word != "" {
			vocab.stopWords.Add(word)
		}
	}
	return vocab
}

func (v *Vocabulary) SkillCount() int {
	if v == nil {
		return 0
	}
	return v.skills.Len()
}

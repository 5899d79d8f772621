package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSkillsLongestPhrasePrecedence(t *testing.T) {
	vocab := NewVocabulary([]string{"Machine Learning", "Learning"}, nil)

	got := ExtractSkills("Built machine learning pipelines in production", vocab)

	assert.True(t, got.Contains("machine learning"))
	assert.False(t, got.Contains("learning"), "constituent word must not re-match after phrase erasure")
	assert.Equal(t, 1, got.Len())
}

func TestExtractSkillsPhraseAndToken(t *testing.T) {
	vocab := NewVocabulary([]string{"Machine Learning", "Python", "Docker"}, nil)

	got := ExtractSkills("Machine Learning engineer, strong Python, some docker", vocab)

	assert.ElementsMatch(t, []string{"machine learning", "python", "docker"}, got.Sorted())
}

func TestExtractSkillsCanonicalLowercase(t *testing.T) {
	vocab := NewVocabulary([]string{"PostgreSQL"}, nil)

	got := ExtractSkills("Experience with POSTGRESQL clusters", vocab)

	assert.True(t, got.Contains("postgresql"))
}

func TestExtractSkillsWholeWordOnly(t *testing.T) {
	vocab := NewVocabulary([]string{"Go", "R"}, nil)

	got := ExtractSkills("Gopher are rare", vocab)

	assert.Equal(t, 0, got.Len(), "substrings inside words must not match")
}

func TestExtractSkillsStopWordFallback(t *testing.T) {
	vocab := NewVocabulary(nil, []string{"the", "and", "developed", "with"})

	got := ExtractSkills("Developed the service with kubernetes and terraform", vocab)

	assert.ElementsMatch(t, []string{"service", "kubernetes", "terraform"}, got.Sorted())
}

func TestExtractSkillsNilVocabulary(t *testing.T) {
	got := ExtractSkills("plain words here", nil)

	assert.ElementsMatch(t, []string{"plain", "words", "here"}, got.Sorted())
}

func TestExtractSkillsDeterministic(t *testing.T) {
	vocab := NewVocabulary([]string{"Machine Learning", "Deep Learning", "Learning", "Python"}, nil)
	text := "machine learning and deep learning with python"

	first := ExtractSkills(text, vocab)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first.Sorted(), ExtractSkills(text, vocab).Sorted())
	}
}

func TestSkillSetOperations(t *testing.T) {
	resume := NewSkillSet("python", "go", "docker")
	jd := NewSkillSet("python", "kubernetes", "docker")

	matched := resume.Intersect(jd)
	missing := jd.Difference(resume)

	require.Equal(t, 2, matched.Len())
	assert.ElementsMatch(t, []string{"docker", "python"}, matched.Sorted())
	assert.ElementsMatch(t, []string{"kubernetes"}, missing.Sorted())

	// Difference is asymmetric.
	assert.ElementsMatch(t, []string{"go"}, resume.Difference(jd).Sorted())
}

package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEncoder returns canned vectors keyed by exact normalized text.
type fakeEncoder struct {
	vectors map[string][]float32
	err     error
}

func (f *fakeEncoder) Encode(_ context.Context, text string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	if v, ok := f.vectors[text]; ok {
		return v, nil
	}
	return []float32{1, 0}, nil
}

// fakePredictor returns a fixed prediction and captures the feature vector.
type fakePredictor struct {
	prediction   float64
	err          error
	lastFeatures []float32
}

func (f *fakePredictor) Predict(features []float32) (float64, error) {
	f.lastFeatures = features
	if f.err != nil {
		return 0, f.err
	}
	return f.prediction, nil
}

var scorerVocab = NewVocabulary([]string{"Python", "Go", "SQL"}, nil)

func TestScorerPrimaryBlend(t *testing.T) {
	jd := "Python Go SQL"
	resume := "Python and Go, four years in"

	encoder := &fakeEncoder{vectors: map[string][]float32{
		Normalize(jd):     {1, 0},
		Normalize(resume): {1, 0}, // similarity 1.0
	}}
	predictor := &fakePredictor{prediction: 80}
	scorer := NewScorer(encoder, predictor, scorerVocab)

	result := scorer.Score(context.Background(), resume, jd, 4)

	// 0.6*80 + 0.1*(2/3*100) + 0.3*100 + senior bonus.
	assert.InDelta(t, 89.67, result.Score, 1e-9)
	assert.InDelta(t, 1.0, result.Similarity, 1e-9)
	assert.Equal(t, ScorePathModel, result.Path)
	assert.Equal(t, 2, result.Overlap)
	assert.ElementsMatch(t, []string{"go", "python"}, result.Matched.Sorted())
	assert.ElementsMatch(t, []string{"sql"}, result.Missing.Sorted())

	// Feature vector layout: jd embed, resume embed, years, overlap.
	require.Len(t, predictor.lastFeatures, 6)
	assert.Equal(t, float32(4), predictor.lastFeatures[4])
	assert.Equal(t, float32(2), predictor.lastFeatures[5])
}

func TestScorerBonusRequiresBothConditions(t *testing.T) {
	jd := "Python Go SQL"
	resume := "Python and Go"
	encoder := &fakeEncoder{vectors: map[string][]float32{
		Normalize(jd):     {1, 0},
		Normalize(resume): {1, 0},
	}}
	predictor := &fakePredictor{prediction: 80}
	scorer := NewScorer(encoder, predictor, scorerVocab)

	// Same similarity, under three years: no bonus.
	junior := scorer.Score(context.Background(), resume, jd, 2)
	senior := scorer.Score(context.Background(), resume, jd, 4)
	assert.InDelta(t, seniorBonus, senior.Score-junior.Score, 1e-9)
}

func TestScorerClampsOvershoot(t *testing.T) {
	jd := "Python Go SQL"
	resume := "Python Go SQL veteran"
	encoder := &fakeEncoder{vectors: map[string][]float32{
		Normalize(jd):     {1, 0},
		Normalize(resume): {1, 0},
	}}
	// Prediction far above scale pushes the blend past 100 before clamping.
	predictor := &fakePredictor{prediction: 500}
	scorer := NewScorer(encoder, predictor, scorerVocab)

	result := scorer.Score(context.Background(), resume, jd, 10)
	assert.Equal(t, 100.0, result.Score)
}

func TestScorerFallbackWhenModelMissing(t *testing.T) {
	scorer := NewScorer(nil, nil, scorerVocab)

	result := scorer.Score(context.Background(), "Python and Go", "Python Go SQL", 2)

	// 70*(2/3) + 2*5.
	assert.InDelta(t, 56.67, result.Score, 1e-9)
	assert.Equal(t, 0.0, result.Similarity)
	assert.Equal(t, ScorePathFallback, result.Path)
	assert.False(t, scorer.ModelAvailable())
}

func TestScorerFallbackOnPredictorError(t *testing.T) {
	encoder := &fakeEncoder{vectors: map[string][]float32{}}
	predictor := &fakePredictor{err: errors.New("feature dimension mismatch")}
	scorer := NewScorer(encoder, predictor, scorerVocab)

	result := scorer.Score(context.Background(), "Python and Go", "Python Go SQL", 2)

	assert.Equal(t, ScorePathFallback, result.Path)
	assert.Equal(t, 0.0, result.Similarity)
	assert.InDelta(t, 56.67, result.Score, 1e-9)
}

func TestScorerFallbackOnEncoderError(t *testing.T) {
	encoder := &fakeEncoder{err: errors.New("embedding backend down")}
	predictor := &fakePredictor{prediction: 80}
	scorer := NewScorer(encoder, predictor, scorerVocab)

	result := scorer.Score(context.Background(), "Python", "Python Go SQL", 0)

	assert.Equal(t, ScorePathFallback, result.Path)
	assert.GreaterOrEqual(t, result.Score, 0.0)
	assert.LessOrEqual(t, result.Score, 100.0)
}

func TestScorerFallbackEmptyJDSkills(t *testing.T) {
	scorer := NewScorer(nil, nil, scorerVocab)

	result := scorer.Score(context.Background(), "Python", "nothing relevant here", 8)

	// Coverage term is zero; experience term caps at 30.
	assert.InDelta(t, 30.0, result.Score, 1e-9)
}

func TestScorerMonotonicInOverlap(t *testing.T) {
	jd := "Python Go SQL"
	encoder := &fakeEncoder{vectors: map[string][]float32{}}
	predictor := &fakePredictor{prediction: 50}
	scorer := NewScorer(encoder, predictor, scorerVocab)

	resumes := []string{
		"nothing matching",
		"Python only",
		"Python and Go",
		"Python Go SQL",
	}

	prev := -1.0
	for _, resume := range resumes {
		result := scorer.Score(context.Background(), resume, jd, 2)
		assert.GreaterOrEqual(t, result.Score, prev,
			"score must not decrease as keyword overlap grows (resume %q)", resume)
		prev = result.Score
	}
}

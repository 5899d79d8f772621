package engine

import (
	"context"
	"math"
)

// Predictor is the learned-model collaborator. The feature vector layout is
// concat(jd embedding, resume embedding, years experience, keyword overlap
// count); the prediction is expected to already be scaled 0-100.
type Predictor interface {
	Predict(features []float32) (float64, error)
}

// ScorePath records which computation produced a score, so a batch never
// mixes model-backed and fallback scores without saying so.
type ScorePath string

const (
	ScorePathModel    ScorePath = "model"
	ScorePathFallback ScorePath = "fallback"
)

// Blend weights. The learned model dominates, but raw keyword coverage and
// semantic similarity keep a miscalibrated model honest on resumes far from
// its training distribution.
const (
	weightPredicted  = 0.6
	weightCoverage   = 0.1
	weightSimilarity = 0.3

	// Flat bonus for demonstrably relevant senior candidates.
	seniorBonus              = 5.0
	seniorBonusMinSimilarity = 0.7
	seniorBonusMinYears      = 3.0
)

// ScoreResult is the outcome of one (resume, job description) pairing.
// ResumeEmbedding carries the raw resume vector from the model path so
// callers that index resumes in a vector store need not encode twice; it is
// nil on the fallback path.
type ScoreResult struct {
	Score           float64
	Similarity      float64
	Matched         SkillSet
	Missing         SkillSet
	Overlap         int
	Path            ScorePath
	ResumeEmbedding []float32
}

// Scorer blends a learned-model prediction, lexical keyword coverage and
// semantic embedding similarity into one bounded composite score. Either
// collaborator may be nil; scoring then degrades to the keyword+experience
// fallback rather than failing.
type Scorer struct {
	encoder Encoder
	model   Predictor
	vocab   *Vocabulary
}

func NewScorer(encoder Encoder, model Predictor, vocab *Vocabulary) *Scorer {
	return &Scorer{
		encoder: encoder,
		model:   model,
		vocab:   vocab,
	}
}

// ModelAvailable reports whether the primary scoring path can run at all.
func (s *Scorer) ModelAvailable() bool {
	return s.encoder != nil && s.model != nil
}

// Score computes the composite score for a resume against a job description.
// Score is clamped into [0,100] and similarity into [0,1] regardless of what
// the blend arithmetic produced. Any failure on the primary path downgrades
// to the fallback for this document only.
func (s *Scorer) Score(ctx context.Context, resumeText, jdText string, yearsExp float64) ScoreResult {
	resumeSkills := ExtractSkills(resumeText, s.vocab)
	jdSkills := ExtractSkills(jdText, s.vocab)

	result := ScoreResult{
		Matched: resumeSkills.Intersect(jdSkills),
		Missing: jdSkills.Difference(resumeSkills),
	}
	result.Overlap = result.Matched.Len()

	if s.ModelAvailable() {
		if score, similarity, resumeEmbed, err := s.scoreWithModel(ctx, resumeText, jdText, yearsExp, result.Overlap, jdSkills.Len()); err == nil {
			result.Score = score
			result.Similarity = similarity
			result.Path = ScorePathModel
			result.ResumeEmbedding = resumeEmbed
			return result
		}
	}

	result.Score = fallbackScore(result.Overlap, jdSkills.Len(), yearsExp)
	result.Similarity = 0.0
	result.Path = ScorePathFallback
	return result
}

func (s *Scorer) scoreWithModel(ctx context.Context, resumeText, jdText string, yearsExp float64, overlap, jdSkillCount int) (float64, float64, []float32, error) {
	jdEmbed, err := s.encoder.Encode(ctx, Normalize(jdText))
	if err != nil {
		return 0, 0, nil, err
	}

	resumeEmbed, err := s.encoder.Encode(ctx, Normalize(resumeText))
	if err != nil {
		return 0, 0, nil, err
	}

	similarity := clamp01(Cosine(jdEmbed, resumeEmbed))

	features := make([]float32, 0, len(jdEmbed)+len(resumeEmbed)+2)
	features = append(features, jdEmbed...)
	features = append(features, resumeEmbed...)
	features = append(features, float32(yearsExp), float32(overlap))

	predicted, err := s.model.Predict(features)
	if err != nil {
		return 0, 0, nil, err
	}

	coverage := 0.0
	if jdSkillCount > 0 {
		coverage = float64(overlap) / float64(jdSkillCount) * 100
	}

	blended := predicted*weightPredicted + coverage*weightCoverage + similarity*100*weightSimilarity
	if similarity > seniorBonusMinSimilarity && yearsExp >= seniorBonusMinYears {
		blended += seniorBonus
	}

	return round2(clampScore(blended)), round2(similarity), resumeEmbed, nil
}

// fallbackScore is the keyword-coverage path used when the embedding or
// learned model is unavailable or the primary path errored: up to 70 points
// for JD skill coverage plus up to 30 for experience.
func fallbackScore(overlap, jdSkillCount int, yearsExp float64) float64 {
	basic := 0.0
	if jdSkillCount > 0 {
		basic = float64(overlap) / float64(jdSkillCount) * 70
	}
	basic += math.Min(yearsExp*5, 30)
	return round2(clampScore(basic))
}

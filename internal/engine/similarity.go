package engine

import (
	"context"
	"math"
)

// Encoder is the embedding collaborator: it turns text into a fixed-length
// vector. Implementations are expected to be safe for concurrent use.
type Encoder interface {
	Encode(ctx context.Context, text string) ([]float32, error)
}

// Cosine computes cosine similarity between two vectors. Mismatched or
// zero-magnitude vectors yield 0.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// clamp01 pins floating-point or model quirks back into [0,1].
func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func clampScore(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

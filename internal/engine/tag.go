package engine

// Tag is the discrete quality bucket assigned to a scored candidate.
type Tag string

const (
	TagExceptional Tag = "exceptional"
	TagStrong      Tag = "strong"
	TagPromising   Tag = "promising"
	TagNeedsReview Tag = "needs_review"
	TagLimited     Tag = "limited"
)

// TagFor assigns a quality tag from fixed ordered threshold rules; the first
// matching rule wins. Note that Promising ignores similarity entirely, so a
// high-scoring candidate with short tenure lands there rather than in
// NeedsReview.
func TagFor(score, yearsExp, similarity float64) Tag {
	switch {
	case score >= 90 && yearsExp >= 5 && similarity >= 0.85:
		return TagExceptional
	case score >= 80 && yearsExp >= 3 && similarity >= 0.7:
		return TagStrong
	case score >= 60 && yearsExp >= 1:
		return TagPromising
	case score >= 40:
		return TagNeedsReview
	default:
		return TagLimited
	}
}

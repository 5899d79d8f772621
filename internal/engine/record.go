package engine

import "sort"

// ScoreRecord is one scored (resume, job description) pairing, derived once
// per screening pass and never mutated afterwards.
type ScoreRecord struct {
	FileName        string
	CandidateName   string
	Email           string
	Score           float64
	YearsExperience float64
	Similarity      float64
	Matched         []string
	Missing         []string
	Tag             Tag
	Path            ScorePath
}

// Rank sorts records by score descending, in place. The sort is stable so
// ties keep their insertion order, which keeps re-runs on identical input
// deterministic.
func Rank(records []ScoreRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Score > records[j].Score
	})
}

// Shortlist filters records down to those meeting the caller-supplied score
// cutoff and minimum experience. Pure filter; the input is not modified.
func Shortlist(records []ScoreRecord, cutoff, minExperience float64) []ScoreRecord {
	shortlisted := make([]ScoreRecord, 0, len(records))
	for _, r := range records {
		if r.Score >= cutoff && r.YearsExperience >= minExperience {
			shortlisted = append(shortlisted, r)
		}
	}
	return shortlisted
}

package engine

import "sort"

// SkillFrequency counts how often a matched skill appeared across a batch.
type SkillFrequency struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// Summary aggregates a scored batch for downstream dashboards.
type Summary struct {
	Candidates int              `json:"candidates"`
	MeanScore  float64          `json:"mean_score"`
	TagCounts  map[Tag]int      `json:"tag_counts"`
	TopSkills  []SkillFrequency `json:"top_skills"`
}

// Summarize computes per-tag counts, the mean score and the most frequently
// matched skills for a batch. topN limits the skill list; frequency ties
// break alphabetically for determinism.
func Summarize(records []ScoreRecord, topN int) Summary {
	summary := Summary{
		Candidates: len(records),
		TagCounts:  make(map[Tag]int),
	}
	if len(records) == 0 {
		return summary
	}

	skillCounts := make(map[string]int)
	total := 0.0
	for _, r := range records {
		total += r.Score
		summary.TagCounts[r.Tag]++
		for _, skill := range r.Matched {
			skillCounts[skill]++
		}
	}
	summary.MeanScore = round2(total / float64(len(records)))

	for skill, count := range skillCounts {
		summary.TopSkills = append(summary.TopSkills, SkillFrequency{Skill: skill, Count: count})
	}
	sort.Slice(summary.TopSkills, func(i, j int) bool {
		if summary.TopSkills[i].Count != summary.TopSkills[j].Count {
			return summary.TopSkills[i].Count > summary.TopSkills[j].Count
		}
		return summary.TopSkills[i].Skill < summary.TopSkills[j].Skill
	})
	if topN > 0 && len(summary.TopSkills) > topN {
		summary.TopSkills = summary.TopSkills[:topN]
	}

	return summary
}

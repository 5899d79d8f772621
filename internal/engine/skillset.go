package engine

import "sort"

// SkillSet is a set of normalized (lower-cased, whitespace-collapsed) skill
// strings. Insertion order is irrelevant; uniqueness is enforced by the map.
type SkillSet map[string]struct{}

func NewSkillSet(skills ...string) SkillSet {
	s := make(SkillSet, len(skills))
	for _, skill := range skills {
		s.Add(skill)
	}
	return s
}

func (s SkillSet) Add(skill string) {
	s[skill] = struct{}{}
}

func (s SkillSet) Contains(skill string) bool {
	_, ok := s[skill]
	return ok
}

func (s SkillSet) Len() int {
	return len(s)
}

// Intersect returns the skills present in both sets.
func (s SkillSet) Intersect(other SkillSet) SkillSet {
	result := make(SkillSet)
	for skill := range s {
		if other.Contains(skill) {
			result.Add(skill)
		}
	}
	return result
}

// Difference returns the skills present in s but not in other. The operation
// is asymmetric: jd.Difference(resume) yields the skills missing from the
// resume.
func (s SkillSet) Difference(other SkillSet) SkillSet {
	result := make(SkillSet)
	for skill := range s {
		if !other.Contains(skill) {
			result.Add(skill)
		}
	}
	return result
}

// Sorted returns the set contents as a sorted slice, for deterministic
// display and export.
func (s SkillSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for skill := range s {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}

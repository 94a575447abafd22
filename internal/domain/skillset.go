package domain

import "strings"

// SkillSet is a deduplicated, order-preserving collection of free-text tags
// (skills, roles, team requirements). Matching is case-insensitive, but the
// original casing is preserved for display.
type SkillSet []string

// NewSkillSet trims and deduplicates the given values. Empty strings are
// dropped; the first occurrence wins on case-insensitive duplicates.
func NewSkillSet(values ...string) SkillSet {
	seen := make(map[string]struct{}, len(values))
	set := make(SkillSet, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		set = append(set, v)
	}
	return set
}

// Contains reports whether the set holds the given value (case-insensitive).
func (s SkillSet) Contains(value string) bool {
	for _, v := range s {
		if strings.EqualFold(v, value) {
			return true
		}
	}
	return false
}

// Intersection returns the elements of s also present in other, preserving
// the order of s.
func (s SkillSet) Intersection(other SkillSet) SkillSet {
	out := make(SkillSet, 0)
	for _, v := range s {
		if other.Contains(v) {
			out = append(out, v)
		}
	}
	return out
}

// Intersects reports whether the two sets share at least one element.
func (s SkillSet) Intersects(other SkillSet) bool {
	for _, v := range s {
		if other.Contains(v) {
			return true
		}
	}
	return false
}

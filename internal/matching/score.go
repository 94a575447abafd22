package matching

import (
	"fmt"

	"go-hackmate-backend/internal/domain"
)

// Compatibility scoring weights. The four components sum to at most 100.
const (
	skillWeight      = 40.0
	experienceWeight = 20.0
	roleWeight       = 20.0
	locationWeight   = 20.0

	maxScore = 100.0

	// experienceSpan is the ordinal distance between the extreme levels.
	experienceSpan = 3.0
)

// CompatibilityScore computes the bounded [0,100] affinity of candidate for
// requester. The score is not symmetric: skill overlap is measured as
// coverage of the requester's skill set, not the candidate's. The prefs
// argument is part of the contract for future weighting but does not affect
// the current arithmetic.
func CompatibilityScore(requester, candidate *domain.Profile, prefs *domain.MatchingPreference) (float64, error) {
	_ = prefs

	reqOrd, ok := requester.ExperienceLevel.Ordinal()
	if !ok {
		return 0, fmt.Errorf("experience_level %q: %w", requester.ExperienceLevel, domain.ErrInvalidEnum)
	}
	candOrd, ok := candidate.ExperienceLevel.Ordinal()
	if !ok {
		return 0, fmt.Errorf("experience_level %q: %w", candidate.ExperienceLevel, domain.ErrInvalidEnum)
	}

	var score float64

	// Skill overlap: coverage of the requester's skills.
	if len(requester.Skills) > 0 && len(candidate.Skills) > 0 {
		common := requester.Skills.Intersection(candidate.Skills)
		score += float64(len(common)) / float64(max(len(requester.Skills), 1)) * skillWeight
	}

	// Experience proximity on the beginner..expert scale.
	diff := reqOrd - candOrd
	if diff < 0 {
		diff = -diff
	}
	exp := (experienceSpan - float64(diff)) / experienceSpan * experienceWeight
	if exp > 0 {
		score += exp
	}

	// Role complementarity: disjoint preferred roles beat overlapping ones.
	if len(requester.PreferredRoles) > 0 && len(candidate.PreferredRoles) > 0 {
		if requester.PreferredRoles.Intersects(candidate.PreferredRoles) {
			score += roleWeight / 2
		} else {
			score += roleWeight
		}
	}

	// Timezone proximity; different timezones still earn half.
	if requester.Timezone != "" && candidate.Timezone != "" {
		if requester.Timezone == candidate.Timezone {
			score += locationWeight
		} else {
			score += locationWeight / 2
		}
	}

	if score > maxScore {
		score = maxScore
	}
	return score, nil
}

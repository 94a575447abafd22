// Package matching implements the pure request-time computations behind
// teammate matching and team analytics: candidate filtering, compatibility
// scoring, ranking, team health, skill trends and recommendations. Every
// function operates on records already fetched by the caller and performs no
// I/O, so any of them can run concurrently per candidate.
package matching

import (
	"fmt"
	"strings"

	"go-hackmate-backend/internal/domain"
)

// MaxCandidatePool caps how many filtered candidates are scored per request.
const MaxCandidatePool = 50

// FilterCandidates narrows the pool to candidates eligible for scoring.
// The requester and unavailable profiles are always excluded. Preferences are
// optional; when absent only the availability filter applies. The result
// keeps the pool's order and is capped at MaxCandidatePool entries.
func FilterCandidates(requester *domain.Profile, prefs *domain.MatchingPreference, pool []domain.Profile) ([]domain.Profile, error) {
	if prefs != nil && !prefs.LocationPreference.Valid() {
		return nil, fmt.Errorf("location_preference %q: %w", prefs.LocationPreference, domain.ErrInvalidEnum)
	}

	country := requester.Country()

	candidates := make([]domain.Profile, 0, len(pool))
	for _, candidate := range pool {
		if candidate.UserID == requester.UserID || !candidate.IsAvailable {
			continue
		}
		if prefs != nil {
			if len(prefs.PreferredSkills) > 0 && !candidate.Skills.Intersects(prefs.PreferredSkills) {
				continue
			}
			if !prefs.WantsExperience(candidate.ExperienceLevel) {
				continue
			}
			if !matchesLocation(requester, &candidate, prefs.LocationPreference, country) {
				continue
			}
		}
		candidates = append(candidates, candidate)
		if len(candidates) == MaxCandidatePool {
			break
		}
	}
	return candidates, nil
}

func matchesLocation(requester, candidate *domain.Profile, pref domain.LocationPreference, country string) bool {
	switch pref {
	case domain.LocationSameTimezone:
		return candidate.Timezone == requester.Timezone
	case domain.LocationSameCountry:
		// Requester locations without a country segment apply no filter.
		if country == "" {
			return true
		}
		return strings.Contains(strings.ToLower(candidate.Location), strings.ToLower(country))
	default:
		// "any". "same_city" has no defined matching rule yet and
		// deliberately behaves the same.
		return true
	}
}

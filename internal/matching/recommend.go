package matching

import (
	"time"

	"go-hackmate-backend/internal/domain"
)

// MaxRecommendations caps each recommendation list.
const MaxRecommendations = 5

// Recommend composes hackathon and team suggestions for a profile: upcoming
// hackathons with open registration whose required skills overlap the
// profile's, and recruiting teams the profile is not already a member of.
// Pure filter plus cap, no scoring. A profile without skills gets empty
// lists.
func Recommend(profile *domain.Profile, hackathons []domain.Hackathon, teams []domain.Team, memberTeamIDs map[int64]struct{}, now time.Time) domain.Recommendations {
	recs := domain.Recommendations{
		Hackathons: make([]domain.Hackathon, 0, MaxRecommendations),
		Teams:      make([]domain.Team, 0, MaxRecommendations),
	}
	if len(profile.Skills) == 0 {
		return recs
	}

	for _, h := range hackathons {
		if len(recs.Hackathons) == MaxRecommendations {
			break
		}
		if h.Status != domain.HackathonUpcoming || !h.IsRegistrationOpen(now) {
			continue
		}
		if h.RequiredSkills.Intersects(profile.Skills) {
			recs.Hackathons = append(recs.Hackathons, h)
		}
	}

	for _, t := range teams {
		if len(recs.Teams) == MaxRecommendations {
			break
		}
		if !t.IsRecruiting {
			continue
		}
		if _, member := memberTeamIDs[t.ID]; member {
			continue
		}
		if t.RequiredSkills.Intersects(profile.Skills) {
			recs.Teams = append(recs.Teams, t)
		}
	}

	return recs
}

package matching_test

import (
	"fmt"
	"testing"
	"time"

	"go-hackmate-backend/internal/domain"
	"go-hackmate-backend/internal/matching"

	"github.com/stretchr/testify/assert"
)

func TestRecommend(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(14 * 24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	profile := profileWith("me", domain.ExperienceIntermediate, "Go", "React")

	t.Run("No skills means no recommendations", func(t *testing.T) {
		empty := profileWith("me", domain.ExperienceIntermediate)
		hackathons := []domain.Hackathon{
			{Status: domain.HackathonUpcoming, RegistrationDeadline: future, RequiredSkills: domain.NewSkillSet("Go")},
		}

		recs := matching.Recommend(&empty, hackathons, nil, nil, now)
		assert.Empty(t, recs.Hackathons)
		assert.Empty(t, recs.Teams)
	})

	t.Run("Hackathons need upcoming status, open registration and skill overlap", func(t *testing.T) {
		hackathons := []domain.Hackathon{
			{ID: 1, Status: domain.HackathonUpcoming, RegistrationDeadline: future, RequiredSkills: domain.NewSkillSet("Go")},
			{ID: 2, Status: domain.HackathonOngoing, RegistrationDeadline: future, RequiredSkills: domain.NewSkillSet("Go")},
			{ID: 3, Status: domain.HackathonUpcoming, RegistrationDeadline: past, RequiredSkills: domain.NewSkillSet("Go")},
			{ID: 4, Status: domain.HackathonUpcoming, RegistrationDeadline: future, RequiredSkills: domain.NewSkillSet("Cobol")},
		}

		recs := matching.Recommend(&profile, hackathons, nil, nil, now)
		assert.Len(t, recs.Hackathons, 1)
		assert.Equal(t, int64(1), recs.Hackathons[0].ID)
	})

	t.Run("Teams need recruiting status, skill overlap and no existing membership", func(t *testing.T) {
		teams := []domain.Team{
			{ID: 1, IsRecruiting: true, RequiredSkills: domain.NewSkillSet("Go")},
			{ID: 2, IsRecruiting: false, RequiredSkills: domain.NewSkillSet("Go")},
			{ID: 3, IsRecruiting: true, RequiredSkills: domain.NewSkillSet("Haskell")},
			{ID: 4, IsRecruiting: true, RequiredSkills: domain.NewSkillSet("React")},
		}
		member := map[int64]struct{}{4: {}}

		recs := matching.Recommend(&profile, nil, teams, member, now)
		assert.Len(t, recs.Teams, 1)
		assert.Equal(t, int64(1), recs.Teams[0].ID)
	})

	t.Run("Both lists cap at five", func(t *testing.T) {
		hackathons := make([]domain.Hackathon, 0, 8)
		teams := make([]domain.Team, 0, 8)
		for i := 0; i < 8; i++ {
			hackathons = append(hackathons, domain.Hackathon{
				ID:                   int64(i),
				Status:               domain.HackathonUpcoming,
				RegistrationDeadline: future,
				RequiredSkills:       domain.NewSkillSet("Go"),
			})
			teams = append(teams, domain.Team{
				ID:             int64(i),
				Name:           fmt.Sprintf("team-%d", i),
				IsRecruiting:   true,
				RequiredSkills: domain.NewSkillSet("Go"),
			})
		}

		recs := matching.Recommend(&profile, hackathons, teams, nil, now)
		assert.Len(t, recs.Hackathons, matching.MaxRecommendations)
		assert.Len(t, recs.Teams, matching.MaxRecommendations)
	})
}

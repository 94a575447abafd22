package matching_test

import (
	"fmt"
	"testing"

	"go-hackmate-backend/internal/domain"
	"go-hackmate-backend/internal/matching"

	"github.com/stretchr/testify/assert"
)

func TestRankCandidates(t *testing.T) {
	t.Run("Truncates to twenty in non-increasing order", func(t *testing.T) {
		scored := make([]domain.ScoredCandidate, 0, 30)
		for i := 0; i < 30; i++ {
			scored = append(scored, domain.ScoredCandidate{
				Profile:            profileWith(fmt.Sprintf("u%d", i), domain.ExperienceBeginner),
				CompatibilityScore: float64(i % 7 * 10),
			})
		}

		ranked := matching.RankCandidates(scored)
		assert.Len(t, ranked, matching.MaxMatches)
		for i := 1; i < len(ranked); i++ {
			assert.GreaterOrEqual(t, ranked[i-1].CompatibilityScore, ranked[i].CompatibilityScore)
		}
	})

	t.Run("Equal scores keep filter-stage order", func(t *testing.T) {
		scored := []domain.ScoredCandidate{
			{Profile: profileWith("u1", domain.ExperienceBeginner), CompatibilityScore: 50},
			{Profile: profileWith("u2", domain.ExperienceBeginner), CompatibilityScore: 70},
			{Profile: profileWith("u3", domain.ExperienceBeginner), CompatibilityScore: 50},
			{Profile: profileWith("u4", domain.ExperienceBeginner), CompatibilityScore: 50},
		}

		ranked := matching.RankCandidates(scored)
		assert.Equal(t, "u2", ranked[0].Profile.UserID)
		assert.Equal(t, "u1", ranked[1].Profile.UserID)
		assert.Equal(t, "u3", ranked[2].Profile.UserID)
		assert.Equal(t, "u4", ranked[3].Profile.UserID)
	})

	t.Run("Does not modify the input", func(t *testing.T) {
		scored := []domain.ScoredCandidate{
			{Profile: profileWith("u1", domain.ExperienceBeginner), CompatibilityScore: 10},
			{Profile: profileWith("u2", domain.ExperienceBeginner), CompatibilityScore: 90},
		}
		_ = matching.RankCandidates(scored)
		assert.Equal(t, "u1", scored[0].Profile.UserID)
	})
}

package matching_test

import (
	"fmt"
	"testing"

	"go-hackmate-backend/internal/domain"
	"go-hackmate-backend/internal/matching"

	"github.com/stretchr/testify/assert"
)

func TestTrendingSkills(t *testing.T) {
	t.Run("Team demand weighs double", func(t *testing.T) {
		profiles := []domain.Profile{profileWith("u1", domain.ExperienceBeginner, "Go")}
		teams := []domain.Team{{RequiredSkills: domain.NewSkillSet("Go")}}

		trends := matching.TrendingSkills(profiles, teams)
		assert.Len(t, trends, 1)
		assert.Equal(t, "Go", trends[0].Skill)
		assert.Equal(t, 3, trends[0].Count)
	})

	t.Run("Sorted descending, capped at ten", func(t *testing.T) {
		profiles := make([]domain.Profile, 0)
		for i := 0; i < 15; i++ {
			// skill-i appears i+1 times
			for j := 0; j <= i; j++ {
				profiles = append(profiles, profileWith(
					fmt.Sprintf("u%d-%d", i, j), domain.ExperienceBeginner, fmt.Sprintf("skill-%d", i)))
			}
		}

		trends := matching.TrendingSkills(profiles, nil)
		assert.Len(t, trends, matching.MaxTrendingSkills)
		assert.Equal(t, "skill-14", trends[0].Skill)
		assert.Equal(t, 15, trends[0].Count)
		for i := 1; i < len(trends); i++ {
			assert.GreaterOrEqual(t, trends[i-1].Count, trends[i].Count)
		}
	})

	t.Run("Ties keep encounter order", func(t *testing.T) {
		profiles := []domain.Profile{
			profileWith("u1", domain.ExperienceBeginner, "Go", "Rust", "Zig"),
		}

		trends := matching.TrendingSkills(profiles, nil)
		assert.Equal(t, "Go", trends[0].Skill)
		assert.Equal(t, "Rust", trends[1].Skill)
		assert.Equal(t, "Zig", trends[2].Skill)
	})

	t.Run("Counts are case-insensitive, first casing wins", func(t *testing.T) {
		profiles := []domain.Profile{
			profileWith("u1", domain.ExperienceBeginner, "Go"),
			profileWith("u2", domain.ExperienceBeginner, "go"),
		}

		trends := matching.TrendingSkills(profiles, nil)
		assert.Len(t, trends, 1)
		assert.Equal(t, "Go", trends[0].Skill)
		assert.Equal(t, 2, trends[0].Count)
	})

	t.Run("Empty collections yield an empty table", func(t *testing.T) {
		profiles := []domain.Profile{profileWith("u1", domain.ExperienceBeginner)}
		teams := []domain.Team{{RequiredSkills: domain.NewSkillSet()}}

		trends := matching.TrendingSkills(profiles, teams)
		assert.Empty(t, trends)
	})
}

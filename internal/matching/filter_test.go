package matching_test

import (
	"fmt"
	"testing"

	"go-hackmate-backend/internal/domain"
	"go-hackmate-backend/internal/matching"

	"github.com/stretchr/testify/assert"
)

func TestFilterCandidates(t *testing.T) {
	requester := profileWith("me", domain.ExperienceIntermediate, "Python")

	t.Run("Excludes requester and unavailable profiles", func(t *testing.T) {
		unavailable := profileWith("u1", domain.ExperienceBeginner, "Go")
		unavailable.IsAvailable = false
		pool := []domain.Profile{
			profileWith("me", domain.ExperienceIntermediate, "Python"),
			unavailable,
			profileWith("u2", domain.ExperienceBeginner, "Go"),
		}

		out, err := matching.FilterCandidates(&requester, nil, pool)
		assert.NoError(t, err)
		assert.Len(t, out, 1)
		assert.Equal(t, "u2", out[0].UserID)
	})

	t.Run("Preferred skills keep only intersecting candidates", func(t *testing.T) {
		prefs := &domain.MatchingPreference{
			PreferredSkills:    domain.NewSkillSet("Go"),
			LocationPreference: domain.LocationAny,
		}
		pool := []domain.Profile{
			profileWith("u1", domain.ExperienceBeginner, "Python"),
			profileWith("u2", domain.ExperienceBeginner, "Go", "Python"),
			profileWith("u3", domain.ExperienceBeginner, "Rust"),
		}

		out, err := matching.FilterCandidates(&requester, prefs, pool)
		assert.NoError(t, err)
		assert.Len(t, out, 1)
		assert.Equal(t, "u2", out[0].UserID)
	})

	t.Run("Experience preference filters by level", func(t *testing.T) {
		prefs := &domain.MatchingPreference{
			ExperienceLevelPreference: []domain.ExperienceLevel{domain.ExperienceExpert},
			LocationPreference:        domain.LocationAny,
		}
		pool := []domain.Profile{
			profileWith("u1", domain.ExperienceBeginner, "Go"),
			profileWith("u2", domain.ExperienceExpert, "Go"),
		}

		out, err := matching.FilterCandidates(&requester, prefs, pool)
		assert.NoError(t, err)
		assert.Len(t, out, 1)
		assert.Equal(t, "u2", out[0].UserID)
	})

	t.Run("Same timezone preference requires identical timezone", func(t *testing.T) {
		req := profileWith("me", domain.ExperienceIntermediate, "Python")
		req.Timezone = "UTC"
		prefs := &domain.MatchingPreference{LocationPreference: domain.LocationSameTimezone}

		match := profileWith("u1", domain.ExperienceBeginner, "Go")
		match.Timezone = "UTC"
		other := profileWith("u2", domain.ExperienceBeginner, "Go")
		other.Timezone = "Asia/Tokyo"

		out, err := matching.FilterCandidates(&req, prefs, []domain.Profile{match, other})
		assert.NoError(t, err)
		assert.Len(t, out, 1)
		assert.Equal(t, "u1", out[0].UserID)
	})

	t.Run("Same country preference matches the location's country segment", func(t *testing.T) {
		req := profileWith("me", domain.ExperienceIntermediate, "Python")
		req.Location = "Berlin, Germany"
		prefs := &domain.MatchingPreference{LocationPreference: domain.LocationSameCountry}

		match := profileWith("u1", domain.ExperienceBeginner, "Go")
		match.Location = "Munich, germany"
		other := profileWith("u2", domain.ExperienceBeginner, "Go")
		other.Location = "Paris, France"

		out, err := matching.FilterCandidates(&req, prefs, []domain.Profile{match, other})
		assert.NoError(t, err)
		assert.Len(t, out, 1)
		assert.Equal(t, "u1", out[0].UserID)
	})

	t.Run("Same country without a country segment applies no filter", func(t *testing.T) {
		req := profileWith("me", domain.ExperienceIntermediate, "Python")
		req.Location = "Berlin"
		prefs := &domain.MatchingPreference{LocationPreference: domain.LocationSameCountry}

		pool := []domain.Profile{profileWith("u1", domain.ExperienceBeginner, "Go")}
		out, err := matching.FilterCandidates(&req, prefs, pool)
		assert.NoError(t, err)
		assert.Len(t, out, 1)
	})

	// same_city has no matching rule defined yet; it must behave like "any"
	// until product intent is clarified.
	t.Run("Same city behaves like any", func(t *testing.T) {
		req := profileWith("me", domain.ExperienceIntermediate, "Python")
		req.Location = "Berlin, Germany"
		prefs := &domain.MatchingPreference{LocationPreference: domain.LocationSameCity}

		far := profileWith("u1", domain.ExperienceBeginner, "Go")
		far.Location = "Paris, France"

		out, err := matching.FilterCandidates(&req, prefs, []domain.Profile{far})
		assert.NoError(t, err)
		assert.Len(t, out, 1)
	})

	t.Run("Invalid location preference fails fast", func(t *testing.T) {
		prefs := &domain.MatchingPreference{LocationPreference: "same_galaxy"}
		_, err := matching.FilterCandidates(&requester, prefs, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidEnum)
	})

	t.Run("Pool is capped at fifty in stable order", func(t *testing.T) {
		pool := make([]domain.Profile, 0, 80)
		for i := 0; i < 80; i++ {
			pool = append(pool, profileWith(fmt.Sprintf("u%d", i), domain.ExperienceBeginner, "Go"))
		}

		out, err := matching.FilterCandidates(&requester, nil, pool)
		assert.NoError(t, err)
		assert.Len(t, out, matching.MaxCandidatePool)
		assert.Equal(t, "u0", out[0].UserID)
		assert.Equal(t, "u49", out[len(out)-1].UserID)
	})

	t.Run("Empty pool yields empty result", func(t *testing.T) {
		out, err := matching.FilterCandidates(&requester, nil, nil)
		assert.NoError(t, err)
		assert.Empty(t, out)
	})
}

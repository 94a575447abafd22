package matching

import (
	"sort"
	"strings"

	"go-hackmate-backend/internal/domain"
)

// MaxTrendingSkills is the trend table result budget.
const MaxTrendingSkills = 10

// Trend weights: team-side demand counts double relative to individual supply.
const (
	profileSkillWeight = 1
	teamSkillWeight    = 2
)

// TrendingSkills builds the frequency-weighted skill popularity table over
// all profiles and team requirements, descending by weighted count, capped at
// MaxTrendingSkills. Ties keep encounter order. Skills are keyed
// case-insensitively; the first encountered casing is reported.
func TrendingSkills(profiles []domain.Profile, teams []domain.Team) []domain.SkillTrend {
	counts := make(map[string]int)
	display := make(map[string]string)
	order := make([]string, 0)

	add := func(skill string, weight int) {
		key := strings.ToLower(strings.TrimSpace(skill))
		if key == "" {
			return
		}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
			display[key] = strings.TrimSpace(skill)
		}
		counts[key] += weight
	}

	for _, p := range profiles {
		for _, skill := range p.Skills {
			add(skill, profileSkillWeight)
		}
	}
	for _, t := range teams {
		for _, skill := range t.RequiredSkills {
			add(skill, teamSkillWeight)
		}
	}

	trends := make([]domain.SkillTrend, 0, len(order))
	for _, key := range order {
		trends = append(trends, domain.SkillTrend{Skill: display[key], Count: counts[key]})
	}
	sort.SliceStable(trends, func(i, j int) bool {
		return trends[i].Count > trends[j].Count
	})

	if len(trends) > MaxTrendingSkills {
		trends = trends[:MaxTrendingSkills]
	}
	return trends
}

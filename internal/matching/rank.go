package matching

import (
	"sort"

	"go-hackmate-backend/internal/domain"
)

// MaxMatches is the externally visible result budget for a teammate query.
const MaxMatches = 20

// RankCandidates orders scored candidates by descending score and truncates
// to MaxMatches. The sort is stable: candidates with equal scores keep their
// filter-stage order. The input slice is not modified.
func RankCandidates(scored []domain.ScoredCandidate) []domain.ScoredCandidate {
	ranked := make([]domain.ScoredCandidate, len(scored))
	copy(ranked, scored)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CompatibilityScore > ranked[j].CompatibilityScore
	})

	if len(ranked) > MaxMatches {
		ranked = ranked[:MaxMatches]
	}
	return ranked
}

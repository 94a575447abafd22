package matching

import (
	"math"
	"time"

	"go-hackmate-backend/internal/domain"
)

// Team health component budgets. The four components sum to at most 100.
const (
	completionPoints = 40.0
	sizePoints       = 20.0
	activityPoints   = 20.0
	overduePoints    = 20.0

	// neutralCompletion is credited when a team has no tasks at all:
	// absence of tasks is not failure.
	neutralCompletion = 20.0

	// optimalSizeRatio of max_members counts as a fully staffed team.
	optimalSizeRatio = 0.8

	activityWindow    = 7 * 24 * time.Hour
	pointsPerActivity = 5.0
	penaltyPerOverdue = 5.0
)

// TeamHealth computes the composite [0,100] health score of a team from its
// tasks and membership, relative to now.
func TeamHealth(team *domain.Team, tasks []domain.Task, now time.Time) int {
	var score float64

	// Task completion rate.
	if len(tasks) > 0 {
		done := 0
		for _, t := range tasks {
			if t.Status == domain.TaskDone {
				done++
			}
		}
		score += float64(done) / float64(len(tasks)) * completionPoints
	} else {
		score += neutralCompletion
	}

	// Team size against the optimal staffing level. A zero max_members
	// makes any size trivially optimal.
	optimal := float64(team.MaxMembers) * optimalSizeRatio
	if optimal == 0 || float64(team.CurrentSize) >= optimal {
		score += sizePoints
	} else {
		score += float64(team.CurrentSize) / optimal * sizePoints
	}

	// Recent activity: tasks touched inside the window.
	recent := 0
	for _, t := range tasks {
		if now.Sub(t.UpdatedAt) <= activityWindow {
			recent++
		}
	}
	score += math.Min(float64(recent)*pointsPerActivity, activityPoints)

	// Overdue penalty eats into the last component.
	overdue := 0
	for _, t := range tasks {
		if t.IsOverdue(now) {
			overdue++
		}
	}
	penalty := math.Min(float64(overdue)*penaltyPerOverdue, overduePoints)
	score += math.Max(0, overduePoints-penalty)

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return int(math.Round(score))
}

// HealthLabel maps a health score to its qualitative band. Thresholds are
// inclusive at the lower bound of each band.
func HealthLabel(score int) string {
	switch {
	case score >= 80:
		return "excellent"
	case score >= 60:
		return "good"
	case score >= 40:
		return "needs_improvement"
	default:
		return "poor"
	}
}

package domain

import (
	"context"
)

// ScoredCandidate pairs a candidate profile with its compatibility score
// relative to the requesting user.
type ScoredCandidate struct {
	Profile            Profile `json:"profile"`
	CompatibilityScore float64 `json:"compatibility_score"`
}

// Recommendations are unranked, capped suggestion lists for one profile.
type Recommendations struct {
	Hackathons []Hackathon `json:"hackathons"`
	Teams      []Team      `json:"teams"`
}

// SkillTrend is one entry of the weighted skill-popularity table. Count
// weighs team demand double relative to individual supply.
type SkillTrend struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

type TeamHealthReport struct {
	TeamID      int64  `json:"team_id"`
	HealthScore int    `json:"health_score"`
	Status      string `json:"status"`
}

type HackathonAnalytics struct {
	TotalTeams        int              `json:"total_teams"`
	TotalParticipants int              `json:"total_participants"`
	AverageTeamSize   float64          `json:"average_team_size"`
	TeamsRecruiting   int              `json:"teams_recruiting"`
	SkillDistribution []SkillTrend     `json:"skill_distribution"`
	RoleDistribution  map[string]int   `json:"role_distribution"`
}

type UserStats struct {
	TeamsCount              int64 `json:"teams_count"`
	LedTeamsCount           int64 `json:"led_teams_count"`
	TasksAssigned           int64 `json:"tasks_assigned"`
	TasksCompleted          int64 `json:"tasks_completed"`
	HackathonsParticipated  int64 `json:"hackathons_participated"`
}

type ActivitySummary struct {
	Days           int   `json:"days"`
	TeamsJoined    int64 `json:"teams_joined"`
	TasksCompleted int64 `json:"tasks_completed"`
	TasksCreated   int64 `json:"tasks_created"`
}

type MatchingUsecase interface {
	FindTeammates(ctx context.Context, userID string) ([]ScoredCandidate, error)
	GetRecommendations(ctx context.Context, userID string) (*Recommendations, error)
}

type AnalyticsUsecase interface {
	TeamHealth(ctx context.Context, teamID int64) (*TeamHealthReport, error)
	TrendingSkills(ctx context.Context) ([]SkillTrend, error)
	HackathonAnalytics(ctx context.Context, hackathonID int64) (*HackathonAnalytics, error)
	ExportHackathonAnalytics(ctx context.Context, hackathonID int64) ([]byte, string, error)
	UserStats(ctx context.Context, userID string) (*UserStats, error)
	ActivitySummary(ctx context.Context, userID string, days int) (*ActivitySummary, error)
}

package domain

import (
	"context"
	"time"
)

type MembershipStatus string

const (
	MembershipPending  MembershipStatus = "pending"
	MembershipAccepted MembershipStatus = "accepted"
	MembershipRejected MembershipStatus = "rejected"
	MembershipLeft     MembershipStatus = "left"
)

func (s MembershipStatus) Valid() bool {
	switch s {
	case MembershipPending, MembershipAccepted, MembershipRejected, MembershipLeft:
		return true
	}
	return false
}

type Team struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
	HackathonID int64  `json:"hackathon_id" validate:"required"`
	LeaderID    string `json:"leader_id"`
	IsRecruiting bool  `json:"is_recruiting"`
	MaxMembers  int    `json:"max_members" validate:"gt=0"`
	// CurrentSize is the count of accepted memberships, populated by the
	// repository, never stored.
	CurrentSize    int       `json:"current_size"`
	RequiredSkills SkillSet  `json:"required_skills" validate:"dive,skill_name"`
	ProjectIdea    string    `json:"project_idea"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (t *Team) IsFull() bool {
	return t.CurrentSize >= t.MaxMembers
}

type TeamMembership struct {
	ID       int64            `json:"id"`
	TeamID   int64            `json:"team_id"`
	UserID   string           `json:"user_id"`
	Role     string           `json:"role"`
	Status   MembershipStatus `json:"status"`
	JoinedAt time.Time        `json:"joined_at"`
}

// TeamFilter narrows team listings.
type TeamFilter struct {
	HackathonID  *int64
	IsRecruiting *bool
	MemberUserID string
}

type TeamRepository interface {
	Create(ctx context.Context, team *Team) error
	GetByID(ctx context.Context, id int64) (*Team, error)
	Fetch(ctx context.Context, filter TeamFilter) ([]Team, error)
	FetchRecruiting(ctx context.Context) ([]Team, error)
	FetchAll(ctx context.Context) ([]Team, error)
	FetchByHackathon(ctx context.Context, hackathonID int64) ([]Team, error)
	// MemberTeamIDs returns the ids of teams the user has a non-left
	// membership in.
	MemberTeamIDs(ctx context.Context, userID string) (map[int64]struct{}, error)
	GetMembership(ctx context.Context, teamID int64, userID string) (*TeamMembership, error)
	FetchMemberships(ctx context.Context, teamID int64, status MembershipStatus) ([]TeamMembership, error)
	CreateMembership(ctx context.Context, m *TeamMembership) error
	UpdateMembershipStatus(ctx context.Context, id int64, status MembershipStatus) error
	// RoleCounts aggregates accepted-membership roles across every team of
	// a hackathon.
	RoleCounts(ctx context.Context, hackathonID int64) (map[string]int, error)
	CountByMember(ctx context.Context, userID string) (int64, error)
	CountByLeader(ctx context.Context, userID string) (int64, error)
	CountJoinedSince(ctx context.Context, userID string, since time.Time) (int64, error)
}

type TeamUsecase interface {
	CreateTeam(ctx context.Context, leaderID string, team *Team) error
	GetTeam(ctx context.Context, id int64) (*Team, error)
	ListTeams(ctx context.Context, filter TeamFilter) ([]Team, error)
	JoinTeam(ctx context.Context, teamID int64, userID, role string) (*TeamMembership, error)
	LeaveTeam(ctx context.Context, teamID int64, userID string) error
}

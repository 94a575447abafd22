package domain

import (
	"context"
	"time"
)

type HackathonStatus string

const (
	HackathonUpcoming  HackathonStatus = "upcoming"
	HackathonOngoing   HackathonStatus = "ongoing"
	HackathonCompleted HackathonStatus = "completed"
	HackathonCancelled HackathonStatus = "cancelled"
)

func (s HackathonStatus) Valid() bool {
	switch s {
	case HackathonUpcoming, HackathonOngoing, HackathonCompleted, HackathonCancelled:
		return true
	}
	return false
}

type LocationType string

const (
	LocationRemote LocationType = "remote"
	LocationOnsite LocationType = "onsite"
	LocationHybrid LocationType = "hybrid"
)

func (l LocationType) Valid() bool {
	switch l {
	case LocationRemote, LocationOnsite, LocationHybrid:
		return true
	}
	return false
}

type Hackathon struct {
	ID                   int64           `json:"id"`
	Title                string          `json:"title" validate:"required,max=200"`
	Description          string          `json:"description"`
	LocationType         LocationType    `json:"location_type"`
	LocationDetails      string          `json:"location_details"`
	StartDate            time.Time       `json:"start_date"`
	EndDate              time.Time       `json:"end_date"`
	RegistrationDeadline time.Time       `json:"registration_deadline"`
	MaxTeamSize          int             `json:"max_team_size" validate:"gt=0"`
	MinTeamSize          int             `json:"min_team_size" validate:"gt=0"`
	Themes               SkillSet        `json:"themes" validate:"dive,skill_name"`
	RequiredSkills       SkillSet        `json:"required_skills" validate:"dive,skill_name"`
	Organizer            string          `json:"organizer"`
	Status               HackathonStatus `json:"status"`
	CreatedBy            string          `json:"created_by"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

func (h *Hackathon) IsRegistrationOpen(now time.Time) bool {
	return now.Before(h.RegistrationDeadline)
}

type HackathonRepository interface {
	Create(ctx context.Context, hackathon *Hackathon) error
	GetByID(ctx context.Context, id int64) (*Hackathon, error)
	Fetch(ctx context.Context, status *HackathonStatus, limit, offset int) ([]Hackathon, int64, error)
	FetchUpcoming(ctx context.Context) ([]Hackathon, error)
	Update(ctx context.Context, hackathon *Hackathon) error
	CountParticipated(ctx context.Context, userID string) (int64, error)
}

type HackathonUsecase interface {
	CreateHackathon(ctx context.Context, userID string, hackathon *Hackathon) error
	GetHackathon(ctx context.Context, id int64) (*Hackathon, error)
	ListHackathons(ctx context.Context, status *HackathonStatus, page, pageSize int) ([]Hackathon, int64, error)
}

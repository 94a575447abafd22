package domain

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Common domain errors
var (
	ErrNotFound    = errors.New("resource not found")
	ErrInvalidEnum = errors.New("invalid enumeration value")
)

// ExperienceLevel is an ordinal enumeration: beginner < intermediate <
// advanced < expert.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
	ExperienceExpert       ExperienceLevel = "expert"
)

var experienceOrdinals = map[ExperienceLevel]int{
	ExperienceBeginner:     0,
	ExperienceIntermediate: 1,
	ExperienceAdvanced:     2,
	ExperienceExpert:       3,
}

// Ordinal returns the position of the level on the beginner..expert scale.
// ok is false for values outside the enumeration.
func (e ExperienceLevel) Ordinal() (int, bool) {
	ord, ok := experienceOrdinals[e]
	return ord, ok
}

func (e ExperienceLevel) Valid() bool {
	_, ok := experienceOrdinals[e]
	return ok
}

// LocationPreference controls how the candidate filter narrows by geography.
type LocationPreference string

const (
	LocationAny          LocationPreference = "any"
	LocationSameTimezone LocationPreference = "same_timezone"
	LocationSameCountry  LocationPreference = "same_country"
	LocationSameCity     LocationPreference = "same_city"
)

func (l LocationPreference) Valid() bool {
	switch l {
	case LocationAny, LocationSameTimezone, LocationSameCountry, LocationSameCity:
		return true
	}
	return false
}

type Profile struct {
	ID              int64           `json:"id"`
	UserID          string          `json:"user_id" validate:"required"`
	Bio             string          `json:"bio" validate:"max=500"`
	Skills          SkillSet        `json:"skills" validate:"dive,skill_name"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	GithubURL       *string         `json:"github_url,omitempty" validate:"omitempty,url"`
	LinkedinURL     *string         `json:"linkedin_url,omitempty" validate:"omitempty,url"`
	PortfolioURL    *string         `json:"portfolio_url,omitempty" validate:"omitempty,url"`
	// Location is free text, "City, Country" by convention.
	Location       string    `json:"location"`
	Timezone       string    `json:"timezone"`
	PreferredRoles SkillSet  `json:"preferred_roles"`
	AvatarURL      *string   `json:"avatar_url,omitempty"`
	IsAvailable    bool      `json:"is_available"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Country extracts the country segment from the free-text location: the last
// comma-separated segment, trimmed. Empty if the location has fewer than two
// segments.
func (p *Profile) Country() string {
	parts := splitLocation(p.Location)
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-1]
}

func splitLocation(location string) []string {
	raw := strings.Split(location, ",")
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// MatchingPreference holds a user's teammate-matching preferences. A profile
// without one is valid; matching degrades to skill/availability only.
type MatchingPreference struct {
	UserID                    string             `json:"user_id"`
	PreferredTeamSize         int                `json:"preferred_team_size" validate:"gt=0"`
	PreferredRoles            SkillSet           `json:"preferred_roles"`
	PreferredSkills           SkillSet           `json:"preferred_skills"`
	ExperienceLevelPreference []ExperienceLevel  `json:"experience_level_preference"`
	LocationPreference        LocationPreference `json:"location_preference"`
	CreatedAt                 time.Time          `json:"created_at"`
	UpdatedAt                 time.Time          `json:"updated_at"`
}

// WantsExperience reports whether the given level is among the preferred
// levels. An empty preference list accepts every level.
func (m *MatchingPreference) WantsExperience(level ExperienceLevel) bool {
	if len(m.ExperienceLevelPreference) == 0 {
		return true
	}
	for _, l := range m.ExperienceLevelPreference {
		if l == level {
			return true
		}
	}
	return false
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	Upsert(ctx context.Context, profile *Profile) error
	SetAvatarURL(ctx context.Context, userID, url string) error
	// FetchPool returns every profile except the given user's, in stable
	// storage order. The candidate filter applies availability itself.
	FetchPool(ctx context.Context, excludeUserID string) ([]Profile, error)
	FetchAll(ctx context.Context) ([]Profile, error)
	GetPreference(ctx context.Context, userID string) (*MatchingPreference, error)
	UpsertPreference(ctx context.Context, pref *MatchingPreference) error
}

type ProfileUsecase interface {
	GetOwnProfile(ctx context.Context, userID string) (*Profile, error)
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	UpdateProfile(ctx context.Context, profile *Profile) error
	UpdateAvatar(ctx context.Context, userID string, data []byte, contentType string) (string, error)
	GetPreference(ctx context.Context, userID string) (*MatchingPreference, error)
	UpdatePreference(ctx context.Context, pref *MatchingPreference) error
}

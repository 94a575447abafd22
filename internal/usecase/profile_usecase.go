package usecase

import (
	"context"
	"fmt"
	"time"

	"go-hackmate-backend/internal/domain"
	"go-hackmate-backend/pkg/apperror"
	"go-hackmate-backend/pkg/images"
	"go-hackmate-backend/pkg/storage"
	"go-hackmate-backend/pkg/validation"
)

const (
	maxAvatarBytes     = 5 << 20
	avatarMaxDimension = 256
	avatarJPEGQuality  = 85
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
	store       *storage.Client
}

func NewProfileUsecase(profileRepo domain.ProfileRepository, store *storage.Client) domain.ProfileUsecase {
	return &profileUsecase{
		profileRepo: profileRepo,
		store:       store,
	}
}

func (u *profileUsecase) GetOwnProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found. Please complete your profile first.")
	}
	return profile, nil
}

func (u *profileUsecase) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found")
	}
	return profile, nil
}

func (u *profileUsecase) UpdateProfile(ctx context.Context, profile *domain.Profile) error {
	if err := validation.Struct(profile); err != nil {
		return apperror.BadRequest(err.Error())
	}
	if !profile.ExperienceLevel.Valid() {
		return apperror.InvalidEnum("experience_level", string(profile.ExperienceLevel))
	}
	profile.Skills = domain.NewSkillSet(profile.Skills...)
	profile.PreferredRoles = domain.NewSkillSet(profile.PreferredRoles...)
	profile.UpdatedAt = time.Now()
	return u.profileRepo.Upsert(ctx, profile)
}

// UpdateAvatar resizes the upload into a jpeg thumbnail, stores it, and
// records the public URL on the profile.
func (u *profileUsecase) UpdateAvatar(ctx context.Context, userID string, data []byte, contentType string) (string, error) {
	if !u.store.IsConfigured() {
		return "", apperror.New(503, "Avatar storage is not configured", nil)
	}
	if len(data) == 0 {
		return "", apperror.BadRequest("Avatar file is empty")
	}
	if len(data) > maxAvatarBytes {
		return "", apperror.BadRequest("Avatar file exceeds the 5MB limit")
	}

	thumb, err := images.Thumbnail(data, avatarMaxDimension, avatarJPEGQuality)
	if err != nil {
		return "", apperror.BadRequest("Avatar must be a valid PNG, JPEG, or GIF image")
	}

	key := fmt.Sprintf("avatars/%s.jpg", userID)
	url, err := u.store.Put(ctx, key, thumb, "image/jpeg")
	if err != nil {
		return "", apperror.Internal(err)
	}

	if err := u.profileRepo.SetAvatarURL(ctx, userID, url); err != nil {
		if err == domain.ErrNotFound {
			return "", apperror.NotFound("Profile not found. Please complete your profile first.")
		}
		return "", err
	}
	return url, nil
}

func (u *profileUsecase) GetPreference(ctx context.Context, userID string) (*domain.MatchingPreference, error) {
	pref, err := u.profileRepo.GetPreference(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pref == nil {
		// A user without a saved preference gets the open defaults.
		return &domain.MatchingPreference{
			UserID:             userID,
			PreferredTeamSize:  4,
			LocationPreference: domain.LocationAny,
		}, nil
	}
	return pref, nil
}

func (u *profileUsecase) UpdatePreference(ctx context.Context, pref *domain.MatchingPreference) error {
	if !pref.LocationPreference.Valid() {
		return apperror.InvalidEnum("location_preference", string(pref.LocationPreference))
	}
	for _, level := range pref.ExperienceLevelPreference {
		if !level.Valid() {
			return apperror.InvalidEnum("experience_level_preference", string(level))
		}
	}
	if pref.PreferredTeamSize < 1 {
		return apperror.BadRequest("preferred_team_size must be positive")
	}
	pref.PreferredSkills = domain.NewSkillSet(pref.PreferredSkills...)
	pref.PreferredRoles = domain.NewSkillSet(pref.PreferredRoles...)
	pref.UpdatedAt = time.Now()
	return u.profileRepo.UpsertPreference(ctx, pref)
}

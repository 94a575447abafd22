package usecase

import (
	"context"
	"errors"
	"time"

	"go-hackmate-backend/internal/domain"
	"go-hackmate-backend/internal/matching"
	"go-hackmate-backend/pkg/apperror"
)

type matchingUsecase struct {
	profileRepo   domain.ProfileRepository
	teamRepo      domain.TeamRepository
	hackathonRepo domain.HackathonRepository
}

func NewMatchingUsecase(profileRepo domain.ProfileRepository, teamRepo domain.TeamRepository, hackathonRepo domain.HackathonRepository) domain.MatchingUsecase {
	return &matchingUsecase{
		profileRepo:   profileRepo,
		teamRepo:      teamRepo,
		hackathonRepo: hackathonRepo,
	}
}

// FindTeammates runs the full pipeline for one requester: load profile and
// preferences, filter the candidate pool, score each survivor, rank.
func (u *matchingUsecase) FindTeammates(ctx context.Context, userID string) ([]domain.ScoredCandidate, error) {
	requester, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if requester == nil {
		return nil, apperror.NotFound("Profile not found. Please complete your profile first.")
	}

	prefs, err := u.profileRepo.GetPreference(ctx, userID)
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		// No saved preference behaves as "no constraints".
		prefs = &domain.MatchingPreference{UserID: userID, LocationPreference: domain.LocationAny}
	}

	pool, err := u.profileRepo.FetchPool(ctx, userID)
	if err != nil {
		return nil, err
	}

	candidates, err := matching.FilterCandidates(requester, prefs, pool)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidEnum) {
			return nil, apperror.InvalidEnum("location_preference", string(prefs.LocationPreference))
		}
		return nil, err
	}

	scored := make([]domain.ScoredCandidate, 0, len(candidates))
	for i := range candidates {
		score, err := matching.CompatibilityScore(requester, &candidates[i], prefs)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidEnum) {
				return nil, apperror.InvalidEnum("experience_level", string(candidates[i].ExperienceLevel))
			}
			return nil, err
		}
		scored = append(scored, domain.ScoredCandidate{Profile: candidates[i], CompatibilityScore: score})
	}

	return matching.RankCandidates(scored), nil
}

func (u *matchingUsecase) GetRecommendations(ctx context.Context, userID string) (*domain.Recommendations, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found. Please complete your profile first.")
	}

	hackathons, err := u.hackathonRepo.FetchUpcoming(ctx)
	if err != nil {
		return nil, err
	}
	teams, err := u.teamRepo.FetchRecruiting(ctx)
	if err != nil {
		return nil, err
	}
	memberTeamIDs, err := u.teamRepo.MemberTeamIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	recs := matching.Recommend(profile, hackathons, teams, memberTeamIDs, time.Now())
	return &recs, nil
}

package usecase

import (
	"context"
	"time"

	"go-hackmate-backend/internal/domain"
	"go-hackmate-backend/pkg/apperror"
	"go-hackmate-backend/pkg/validation"
)

type hackathonUsecase struct {
	hackathonRepo domain.HackathonRepository
}

func NewHackathonUsecase(hackathonRepo domain.HackathonRepository) domain.HackathonUsecase {
	return &hackathonUsecase{hackathonRepo: hackathonRepo}
}

func (u *hackathonUsecase) CreateHackathon(ctx context.Context, userID string, hackathon *domain.Hackathon) error {
	if err := validation.Struct(hackathon); err != nil {
		return apperror.BadRequest(err.Error())
	}
	if !hackathon.LocationType.Valid() {
		return apperror.InvalidEnum("location_type", string(hackathon.LocationType))
	}
	if hackathon.Status == "" {
		hackathon.Status = domain.HackathonUpcoming
	}
	if !hackathon.Status.Valid() {
		return apperror.InvalidEnum("status", string(hackathon.Status))
	}
	if hackathon.EndDate.Before(hackathon.StartDate) {
		return apperror.BadRequest("end_date cannot be before start_date")
	}
	if hackathon.MinTeamSize < 1 || hackathon.MaxTeamSize < hackathon.MinTeamSize {
		return apperror.BadRequest("Invalid team size bounds")
	}

	hackathon.CreatedBy = userID
	hackathon.Themes = domain.NewSkillSet(hackathon.Themes...)
	hackathon.RequiredSkills = domain.NewSkillSet(hackathon.RequiredSkills...)
	hackathon.CreatedAt = time.Now()
	hackathon.UpdatedAt = hackathon.CreatedAt
	return u.hackathonRepo.Create(ctx, hackathon)
}

func (u *hackathonUsecase) GetHackathon(ctx context.Context, id int64) (*domain.Hackathon, error) {
	hackathon, err := u.hackathonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if hackathon == nil {
		return nil, apperror.NotFound("Hackathon not found")
	}
	return hackathon, nil
}

func (u *hackathonUsecase) ListHackathons(ctx context.Context, status *domain.HackathonStatus, page, pageSize int) ([]domain.Hackathon, int64, error) {
	if status != nil && !status.Valid() {
		return nil, 0, apperror.InvalidEnum("status", string(*status))
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize
	return u.hackathonRepo.Fetch(ctx, status, pageSize, offset)
}

package usecase

import (
	"context"
	"time"

	"go-hackmate-backend/internal/domain"
	"go-hackmate-backend/pkg/apperror"
	"go-hackmate-backend/pkg/validation"
)

type teamUsecase struct {
	teamRepo      domain.TeamRepository
	hackathonRepo domain.HackathonRepository
}

func NewTeamUsecase(teamRepo domain.TeamRepository, hackathonRepo domain.HackathonRepository) domain.TeamUsecase {
	return &teamUsecase{
		teamRepo:      teamRepo,
		hackathonRepo: hackathonRepo,
	}
}

func (u *teamUsecase) CreateTeam(ctx context.Context, leaderID string, team *domain.Team) error {
	if err := validation.Struct(team); err != nil {
		return apperror.BadRequest(err.Error())
	}

	hackathon, err := u.hackathonRepo.GetByID(ctx, team.HackathonID)
	if err != nil {
		return err
	}
	if hackathon == nil {
		return apperror.NotFound("Hackathon not found")
	}
	if team.MaxMembers > hackathon.MaxTeamSize {
		return apperror.BadRequest("max_members exceeds the hackathon team size limit")
	}

	team.LeaderID = leaderID
	team.RequiredSkills = domain.NewSkillSet(team.RequiredSkills...)
	team.CreatedAt = time.Now()
	team.UpdatedAt = team.CreatedAt
	if err := u.teamRepo.Create(ctx, team); err != nil {
		return err
	}

	// The leader is an accepted member from the start.
	membership := &domain.TeamMembership{
		TeamID:   team.ID,
		UserID:   leaderID,
		Role:     "leader",
		Status:   domain.MembershipAccepted,
		JoinedAt: team.CreatedAt,
	}
	if err := u.teamRepo.CreateMembership(ctx, membership); err != nil {
		return err
	}
	team.CurrentSize = 1
	return nil
}

func (u *teamUsecase) GetTeam(ctx context.Context, id int64) (*domain.Team, error) {
	team, err := u.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, apperror.NotFound("Team not found")
	}
	return team, nil
}

func (u *teamUsecase) ListTeams(ctx context.Context, filter domain.TeamFilter) ([]domain.Team, error) {
	return u.teamRepo.Fetch(ctx, filter)
}

func (u *teamUsecase) JoinTeam(ctx context.Context, teamID int64, userID, role string) (*domain.TeamMembership, error) {
	team, err := u.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, apperror.NotFound("Team not found")
	}
	if !team.IsRecruiting {
		return nil, apperror.BadRequest("Team is not recruiting")
	}
	if team.IsFull() {
		return nil, apperror.BadRequest("Team is already full")
	}

	existing, err := u.teamRepo.GetMembership(ctx, teamID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Status != domain.MembershipLeft {
		return nil, apperror.BadRequest("You are already a member of this team")
	}

	membership := &domain.TeamMembership{
		TeamID:   teamID,
		UserID:   userID,
		Role:     role,
		Status:   domain.MembershipAccepted,
		JoinedAt: time.Now(),
	}
	if err := u.teamRepo.CreateMembership(ctx, membership); err != nil {
		return nil, err
	}
	return membership, nil
}

func (u *teamUsecase) LeaveTeam(ctx context.Context, teamID int64, userID string) error {
	team, err := u.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return err
	}
	if team == nil {
		return apperror.NotFound("Team not found")
	}
	if team.LeaderID == userID {
		return apperror.BadRequest("The team leader cannot leave the team")
	}

	membership, err := u.teamRepo.GetMembership(ctx, teamID, userID)
	if err != nil {
		return err
	}
	if membership == nil || membership.Status == domain.MembershipLeft {
		return apperror.NotFound("You are not a member of this team")
	}

	return u.teamRepo.UpdateMembershipStatus(ctx, membership.ID, domain.MembershipLeft)
}

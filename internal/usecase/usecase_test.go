package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-hackmate-backend/internal/domain"
	"go-hackmate-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) Upsert(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockProfileRepo) SetAvatarURL(ctx context.Context, userID, url string) error {
	return m.Called(ctx, userID, url).Error(0)
}
func (m *MockProfileRepo) FetchPool(ctx context.Context, excludeUserID string) ([]domain.Profile, error) {
	args := m.Called(ctx, excludeUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) FetchAll(ctx context.Context) ([]domain.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) GetPreference(ctx context.Context, userID string) (*domain.MatchingPreference, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MatchingPreference), args.Error(1)
}
func (m *MockProfileRepo) UpsertPreference(ctx context.Context, pref *domain.MatchingPreference) error {
	return m.Called(ctx, pref).Error(0)
}

type MockTeamRepo struct {
	mock.Mock
}

func (m *MockTeamRepo) Create(ctx context.Context, team *domain.Team) error {
	return m.Called(ctx, team).Error(0)
}
func (m *MockTeamRepo) GetByID(ctx context.Context, id int64) (*domain.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}
func (m *MockTeamRepo) Fetch(ctx context.Context, filter domain.TeamFilter) ([]domain.Team, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Team), args.Error(1)
}
func (m *MockTeamRepo) FetchRecruiting(ctx context.Context) ([]domain.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Team), args.Error(1)
}
func (m *MockTeamRepo) FetchAll(ctx context.Context) ([]domain.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Team), args.Error(1)
}
func (m *MockTeamRepo) FetchByHackathon(ctx context.Context, hackathonID int64) ([]domain.Team, error) {
	args := m.Called(ctx, hackathonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Team), args.Error(1)
}
func (m *MockTeamRepo) MemberTeamIDs(ctx context.Context, userID string) (map[int64]struct{}, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]struct{}), args.Error(1)
}
func (m *MockTeamRepo) GetMembership(ctx context.Context, teamID int64, userID string) (*domain.TeamMembership, error) {
	args := m.Called(ctx, teamID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamMembership), args.Error(1)
}
func (m *MockTeamRepo) FetchMemberships(ctx context.Context, teamID int64, status domain.MembershipStatus) ([]domain.TeamMembership, error) {
	args := m.Called(ctx, teamID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TeamMembership), args.Error(1)
}
func (m *MockTeamRepo) CreateMembership(ctx context.Context, membership *domain.TeamMembership) error {
	return m.Called(ctx, membership).Error(0)
}
func (m *MockTeamRepo) UpdateMembershipStatus(ctx context.Context, id int64, status domain.MembershipStatus) error {
	return m.Called(ctx, id, status).Error(0)
}
func (m *MockTeamRepo) RoleCounts(ctx context.Context, hackathonID int64) (map[string]int, error) {
	args := m.Called(ctx, hackathonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}
func (m *MockTeamRepo) CountByMember(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockTeamRepo) CountByLeader(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockTeamRepo) CountJoinedSince(ctx context.Context, userID string, since time.Time) (int64, error) {
	args := m.Called(ctx, userID, since)
	return args.Get(0).(int64), args.Error(1)
}

type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) Create(ctx context.Context, task *domain.Task) error {
	return m.Called(ctx, task).Error(0)
}
func (m *MockTaskRepo) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}
func (m *MockTaskRepo) Fetch(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}
func (m *MockTaskRepo) FetchByTeam(ctx context.Context, teamID int64) ([]domain.Task, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}
func (m *MockTaskRepo) Update(ctx context.Context, task *domain.Task) error {
	return m.Called(ctx, task).Error(0)
}
func (m *MockTaskRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockTaskRepo) CountAssigned(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockTaskRepo) CountCompleted(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockTaskRepo) CountCompletedSince(ctx context.Context, userID string, since time.Time) (int64, error) {
	args := m.Called(ctx, userID, since)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockTaskRepo) CountCreatedSince(ctx context.Context, userID string, since time.Time) (int64, error) {
	args := m.Called(ctx, userID, since)
	return args.Get(0).(int64), args.Error(1)
}

type MockHackathonRepo struct {
	mock.Mock
}

func (m *MockHackathonRepo) Create(ctx context.Context, hackathon *domain.Hackathon) error {
	return m.Called(ctx, hackathon).Error(0)
}
func (m *MockHackathonRepo) GetByID(ctx context.Context, id int64) (*domain.Hackathon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hackathon), args.Error(1)
}
func (m *MockHackathonRepo) Fetch(ctx context.Context, status *domain.HackathonStatus, limit, offset int) ([]domain.Hackathon, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Hackathon), args.Get(1).(int64), args.Error(2)
}
func (m *MockHackathonRepo) FetchUpcoming(ctx context.Context) ([]domain.Hackathon, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Hackathon), args.Error(1)
}
func (m *MockHackathonRepo) Update(ctx context.Context, hackathon *domain.Hackathon) error {
	return m.Called(ctx, hackathon).Error(0)
}
func (m *MockHackathonRepo) CountParticipated(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func poolProfile(userID string, level domain.ExperienceLevel, skills ...string) domain.Profile {
	return domain.Profile{
		UserID:          userID,
		Skills:          domain.NewSkillSet(skills...),
		ExperienceLevel: level,
		Timezone:        "UTC",
		IsAvailable:     true,
	}
}

func TestFindTeammates(t *testing.T) {
	ctx := context.Background()

	t.Run("Should rank the closer candidate first", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewMatchingUsecase(profileRepo, new(MockTeamRepo), new(MockHackathonRepo))

		requester := poolProfile("me", domain.ExperienceIntermediate, "Go", "React")
		pool := []domain.Profile{
			poolProfile("close", domain.ExperienceIntermediate, "Go", "React"),
			poolProfile("far", domain.ExperienceExpert, "Rust"),
		}

		profileRepo.On("GetByUserID", ctx, "me").Return(&requester, nil)
		profileRepo.On("GetPreference", ctx, "me").Return(nil, nil)
		profileRepo.On("FetchPool", ctx, "me").Return(pool, nil)

		matches, err := uc.FindTeammates(ctx, "me")
		assert.NoError(t, err)
		assert.Len(t, matches, 2)
		assert.Equal(t, "close", matches[0].Profile.UserID)
		assert.Greater(t, matches[0].CompatibilityScore, matches[1].CompatibilityScore)
	})

	t.Run("Should fail when the requester has no profile", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewMatchingUsecase(profileRepo, new(MockTeamRepo), new(MockHackathonRepo))

		profileRepo.On("GetByUserID", ctx, "ghost").Return(nil, nil)

		_, err := uc.FindTeammates(ctx, "ghost")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Profile not found")
	})

	t.Run("Should apply saved preferences to the pool", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewMatchingUsecase(profileRepo, new(MockTeamRepo), new(MockHackathonRepo))

		requester := poolProfile("me", domain.ExperienceIntermediate, "Go")
		prefs := &domain.MatchingPreference{
			UserID:             "me",
			PreferredSkills:    domain.NewSkillSet("Go"),
			LocationPreference: domain.LocationAny,
		}
		pool := []domain.Profile{
			poolProfile("gopher", domain.ExperienceBeginner, "Go"),
			poolProfile("pythonista", domain.ExperienceBeginner, "Python"),
		}

		profileRepo.On("GetByUserID", ctx, "me").Return(&requester, nil)
		profileRepo.On("GetPreference", ctx, "me").Return(prefs, nil)
		profileRepo.On("FetchPool", ctx, "me").Return(pool, nil)

		matches, err := uc.FindTeammates(ctx, "me")
		assert.NoError(t, err)
		assert.Len(t, matches, 1)
		assert.Equal(t, "gopher", matches[0].Profile.UserID)
	})
}

func TestGetRecommendations(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	profileRepo := new(MockProfileRepo)
	teamRepo := new(MockTeamRepo)
	hackathonRepo := new(MockHackathonRepo)
	uc := usecase.NewMatchingUsecase(profileRepo, teamRepo, hackathonRepo)

	me := poolProfile("me", domain.ExperienceIntermediate, "Go")
	hackathons := []domain.Hackathon{
		{
			ID:                   1,
			Status:               domain.HackathonUpcoming,
			RegistrationDeadline: now.Add(48 * time.Hour),
			RequiredSkills:       domain.NewSkillSet("Go"),
		},
	}
	teams := []domain.Team{
		{ID: 10, IsRecruiting: true, RequiredSkills: domain.NewSkillSet("Go")},
		{ID: 11, IsRecruiting: true, RequiredSkills: domain.NewSkillSet("Go")},
	}

	profileRepo.On("GetByUserID", ctx, "me").Return(&me, nil)
	hackathonRepo.On("FetchUpcoming", ctx).Return(hackathons, nil)
	teamRepo.On("FetchRecruiting", ctx).Return(teams, nil)
	teamRepo.On("MemberTeamIDs", ctx, "me").Return(map[int64]struct{}{11: {}}, nil)

	recs, err := uc.GetRecommendations(ctx, "me")
	assert.NoError(t, err)
	assert.Len(t, recs.Hackathons, 1)
	assert.Len(t, recs.Teams, 1)
	assert.Equal(t, int64(10), recs.Teams[0].ID)
}

func TestUpdateTaskCompletionTimestamp(t *testing.T) {
	ctx := context.Background()

	t.Run("Should freeze completed_at when the task enters done", func(t *testing.T) {
		taskRepo := new(MockTaskRepo)
		uc := usecase.NewTaskUsecase(taskRepo, new(MockTeamRepo))

		stored := &domain.Task{ID: 1, TeamID: 1, Title: "Ship it", Status: domain.TaskInProgress, Priority: domain.PriorityHigh}
		taskRepo.On("GetByID", ctx, int64(1)).Return(stored, nil)
		taskRepo.On("Update", ctx, mock.Anything).Return(nil)

		update := &domain.Task{ID: 1, TeamID: 1, Title: "Ship it", Status: domain.TaskDone, Priority: domain.PriorityHigh}
		err := uc.UpdateTask(ctx, update)
		assert.NoError(t, err)
		assert.NotNil(t, update.CompletedAt)
	})

	t.Run("Should clear completed_at when the task leaves done", func(t *testing.T) {
		taskRepo := new(MockTaskRepo)
		uc := usecase.NewTaskUsecase(taskRepo, new(MockTeamRepo))

		done := time.Now().Add(-time.Hour)
		stored := &domain.Task{ID: 2, TeamID: 1, Title: "Ship it", Status: domain.TaskDone, Priority: domain.PriorityHigh, CompletedAt: &done}
		taskRepo.On("GetByID", ctx, int64(2)).Return(stored, nil)
		taskRepo.On("Update", ctx, mock.Anything).Return(nil)

		update := &domain.Task{ID: 2, TeamID: 1, Title: "Ship it", Status: domain.TaskInProgress, Priority: domain.PriorityHigh}
		err := uc.UpdateTask(ctx, update)
		assert.NoError(t, err)
		assert.Nil(t, update.CompletedAt)
	})

	t.Run("Should reject an unknown status", func(t *testing.T) {
		uc := usecase.NewTaskUsecase(new(MockTaskRepo), new(MockTeamRepo))

		update := &domain.Task{ID: 3, Status: "archived", Priority: domain.PriorityLow}
		err := uc.UpdateTask(ctx, update)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid status")
	})
}

func TestCreateTaskRequiresMembership(t *testing.T) {
	ctx := context.Background()
	taskRepo := new(MockTaskRepo)
	teamRepo := new(MockTeamRepo)
	uc := usecase.NewTaskUsecase(taskRepo, teamRepo)

	teamRepo.On("GetMembership", ctx, int64(7), "outsider").Return(nil, nil)

	task := &domain.Task{TeamID: 7, Title: "Sneaky task"}
	err := uc.CreateTask(ctx, "outsider", task)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "team members")
}

func TestJoinTeamGuards(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject joining a full team", func(t *testing.T) {
		teamRepo := new(MockTeamRepo)
		uc := usecase.NewTeamUsecase(teamRepo, new(MockHackathonRepo))

		full := &domain.Team{ID: 1, IsRecruiting: true, MaxMembers: 2, CurrentSize: 2}
		teamRepo.On("GetByID", ctx, int64(1)).Return(full, nil)

		_, err := uc.JoinTeam(ctx, 1, "user1", "backend")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "full")
	})

	t.Run("Should reject a duplicate membership", func(t *testing.T) {
		teamRepo := new(MockTeamRepo)
		uc := usecase.NewTeamUsecase(teamRepo, new(MockHackathonRepo))

		open := &domain.Team{ID: 2, IsRecruiting: true, MaxMembers: 4, CurrentSize: 1}
		teamRepo.On("GetByID", ctx, int64(2)).Return(open, nil)
		teamRepo.On("GetMembership", ctx, int64(2), "user1").Return(&domain.TeamMembership{
			ID: 5, TeamID: 2, UserID: "user1", Status: domain.MembershipAccepted,
		}, nil)

		_, err := uc.JoinTeam(ctx, 2, "user1", "backend")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already a member")
	})

	t.Run("Should allow rejoining after leaving", func(t *testing.T) {
		teamRepo := new(MockTeamRepo)
		uc := usecase.NewTeamUsecase(teamRepo, new(MockHackathonRepo))

		open := &domain.Team{ID: 3, IsRecruiting: true, MaxMembers: 4, CurrentSize: 1}
		teamRepo.On("GetByID", ctx, int64(3)).Return(open, nil)
		teamRepo.On("GetMembership", ctx, int64(3), "user1").Return(&domain.TeamMembership{
			ID: 6, TeamID: 3, UserID: "user1", Status: domain.MembershipLeft,
		}, nil)
		teamRepo.On("CreateMembership", ctx, mock.Anything).Return(nil)

		membership, err := uc.JoinTeam(ctx, 3, "user1", "backend")
		assert.NoError(t, err)
		assert.Equal(t, domain.MembershipAccepted, membership.Status)
	})
}

func TestLeaveTeamLeaderGuard(t *testing.T) {
	ctx := context.Background()
	teamRepo := new(MockTeamRepo)
	uc := usecase.NewTeamUsecase(teamRepo, new(MockHackathonRepo))

	team := &domain.Team{ID: 1, LeaderID: "boss", MaxMembers: 4}
	teamRepo.On("GetByID", ctx, int64(1)).Return(team, nil)

	err := uc.LeaveTeam(ctx, 1, "boss")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "leader cannot leave")
}

func TestTeamHealthReport(t *testing.T) {
	ctx := context.Background()
	teamRepo := new(MockTeamRepo)
	taskRepo := new(MockTaskRepo)
	uc := usecase.NewAnalyticsUsecase(new(MockProfileRepo), teamRepo, taskRepo, new(MockHackathonRepo), time.Minute)

	// Optimal size, no tasks: neutral completion plus full size and
	// overdue points, zero activity.
	team := &domain.Team{ID: 9, MaxMembers: 5, CurrentSize: 4}
	teamRepo.On("GetByID", ctx, int64(9)).Return(team, nil)
	taskRepo.On("FetchByTeam", ctx, int64(9)).Return([]domain.Task{}, nil)

	report, err := uc.TeamHealth(ctx, 9)
	assert.NoError(t, err)
	assert.Equal(t, 60, report.HealthScore)
	assert.Equal(t, "good", report.Status)
}

func TestTrendingSkillsFallsBackToStorage(t *testing.T) {
	ctx := context.Background()
	profileRepo := new(MockProfileRepo)
	teamRepo := new(MockTeamRepo)
	uc := usecase.NewAnalyticsUsecase(profileRepo, teamRepo, new(MockTaskRepo), new(MockHackathonRepo), time.Minute)

	profiles := []domain.Profile{poolProfile("u1", domain.ExperienceBeginner, "Go")}
	teams := []domain.Team{{ID: 1, RequiredSkills: domain.NewSkillSet("Go", "React")}}
	profileRepo.On("FetchAll", ctx).Return(profiles, nil)
	teamRepo.On("FetchAll", ctx).Return(teams, nil)

	trends, err := uc.TrendingSkills(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "Go", trends[0].Skill)
	assert.Equal(t, 3, trends[0].Count)
	assert.Equal(t, "React", trends[1].Skill)
	assert.Equal(t, 2, trends[1].Count)
}

func TestUserStats(t *testing.T) {
	ctx := context.Background()
	teamRepo := new(MockTeamRepo)
	taskRepo := new(MockTaskRepo)
	hackathonRepo := new(MockHackathonRepo)
	uc := usecase.NewAnalyticsUsecase(new(MockProfileRepo), teamRepo, taskRepo, hackathonRepo, time.Minute)

	teamRepo.On("CountByMember", ctx, "u1").Return(int64(3), nil)
	teamRepo.On("CountByLeader", ctx, "u1").Return(int64(1), nil)
	taskRepo.On("CountAssigned", ctx, "u1").Return(int64(12), nil)
	taskRepo.On("CountCompleted", ctx, "u1").Return(int64(9), nil)
	hackathonRepo.On("CountParticipated", ctx, "u1").Return(int64(2), nil)

	stats, err := uc.UserStats(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, int64(3), stats.TeamsCount)
	assert.Equal(t, int64(1), stats.LedTeamsCount)
	assert.Equal(t, int64(12), stats.TasksAssigned)
	assert.Equal(t, int64(9), stats.TasksCompleted)
	assert.Equal(t, int64(2), stats.HackathonsParticipated)
}

func TestHackathonAnalyticsAggregation(t *testing.T) {
	ctx := context.Background()
	teamRepo := new(MockTeamRepo)
	hackathonRepo := new(MockHackathonRepo)
	uc := usecase.NewAnalyticsUsecase(new(MockProfileRepo), teamRepo, new(MockTaskRepo), hackathonRepo, time.Minute)

	hackathonRepo.On("GetByID", ctx, int64(1)).Return(&domain.Hackathon{ID: 1, Title: "Hack"}, nil)
	teamRepo.On("FetchByHackathon", ctx, int64(1)).Return([]domain.Team{
		{ID: 1, CurrentSize: 3, IsRecruiting: true, RequiredSkills: domain.NewSkillSet("Go")},
		{ID: 2, CurrentSize: 4, RequiredSkills: domain.NewSkillSet("Go", "React")},
	}, nil)
	teamRepo.On("RoleCounts", ctx, int64(1)).Return(map[string]int{"backend": 4, "frontend": 3}, nil)

	analytics, err := uc.HackathonAnalytics(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, 2, analytics.TotalTeams)
	assert.Equal(t, 7, analytics.TotalParticipants)
	assert.Equal(t, 3.5, analytics.AverageTeamSize)
	assert.Equal(t, 1, analytics.TeamsRecruiting)
	assert.Equal(t, "Go", analytics.SkillDistribution[0].Skill)
	assert.Equal(t, 4, analytics.SkillDistribution[0].Count)
	assert.Equal(t, 4, analytics.RoleDistribution["backend"])
}

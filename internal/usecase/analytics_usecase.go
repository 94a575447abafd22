package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/xuri/excelize/v2"

	"go-hackmate-backend/internal/domain"
	"go-hackmate-backend/internal/matching"
	"go-hackmate-backend/pkg/apperror"
	"go-hackmate-backend/pkg/logger"
	"go-hackmate-backend/pkg/redis"
)

const trendingCacheKey = "analytics:trending_skills"

type analyticsUsecase struct {
	profileRepo      domain.ProfileRepository
	teamRepo         domain.TeamRepository
	taskRepo         domain.TaskRepository
	hackathonRepo    domain.HackathonRepository
	trendingCacheTTL time.Duration
}

func NewAnalyticsUsecase(
	profileRepo domain.ProfileRepository,
	teamRepo domain.TeamRepository,
	taskRepo domain.TaskRepository,
	hackathonRepo domain.HackathonRepository,
	trendingCacheTTL time.Duration,
) domain.AnalyticsUsecase {
	return &analyticsUsecase{
		profileRepo:      profileRepo,
		teamRepo:         teamRepo,
		taskRepo:         taskRepo,
		hackathonRepo:    hackathonRepo,
		trendingCacheTTL: trendingCacheTTL,
	}
}

func (u *analyticsUsecase) TeamHealth(ctx context.Context, teamID int64) (*domain.TeamHealthReport, error) {
	team, err := u.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, apperror.NotFound("Team not found")
	}

	tasks, err := u.taskRepo.FetchByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	score := matching.TeamHealth(team, tasks, time.Now())
	return &domain.TeamHealthReport{
		TeamID:      teamID,
		HealthScore: score,
		Status:      matching.HealthLabel(score),
	}, nil
}

// TrendingSkills serves from Redis when a fresh cache entry exists and
// recomputes from storage otherwise. Cache failures degrade to recompute.
func (u *analyticsUsecase) TrendingSkills(ctx context.Context) ([]domain.SkillTrend, error) {
	if redis.IsAvailable() {
		raw, err := redis.Client().Get(ctx, trendingCacheKey).Result()
		if err == nil {
			var trends []domain.SkillTrend
			if err := json.Unmarshal([]byte(raw), &trends); err == nil {
				return trends, nil
			}
			logger.Log.Warn("discarding malformed trending skills cache entry", "error", err)
		}
	}

	profiles, err := u.profileRepo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	teams, err := u.teamRepo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	trends := matching.TrendingSkills(profiles, teams)

	if redis.IsAvailable() {
		if payload, err := json.Marshal(trends); err == nil {
			if err := redis.Client().Set(ctx, trendingCacheKey, payload, u.trendingCacheTTL).Err(); err != nil {
				logger.Log.Warn("failed to cache trending skills", "error", err)
			}
		}
	}

	return trends, nil
}

func (u *analyticsUsecase) HackathonAnalytics(ctx context.Context, hackathonID int64) (*domain.HackathonAnalytics, error) {
	hackathon, err := u.hackathonRepo.GetByID(ctx, hackathonID)
	if err != nil {
		return nil, err
	}
	if hackathon == nil {
		return nil, apperror.NotFound("Hackathon not found")
	}

	teams, err := u.teamRepo.FetchByHackathon(ctx, hackathonID)
	if err != nil {
		return nil, err
	}

	analytics := &domain.HackathonAnalytics{
		TotalTeams:       len(teams),
		RoleDistribution: map[string]int{},
	}
	for i := range teams {
		analytics.TotalParticipants += teams[i].CurrentSize
		if teams[i].IsRecruiting {
			analytics.TeamsRecruiting++
		}
	}
	if len(teams) > 0 {
		avg := float64(analytics.TotalParticipants) / float64(len(teams))
		analytics.AverageTeamSize = math.Round(avg*100) / 100
	}

	// Demanded skills across the hackathon's teams, reusing the trending
	// table with no individual supply side.
	analytics.SkillDistribution = matching.TrendingSkills(nil, teams)

	roles, err := u.teamRepo.RoleCounts(ctx, hackathonID)
	if err != nil {
		return nil, err
	}
	analytics.RoleDistribution = roles

	return analytics, nil
}

// ExportHackathonAnalytics renders the analytics report as an Excel workbook.
func (u *analyticsUsecase) ExportHackathonAnalytics(ctx context.Context, hackathonID int64) ([]byte, string, error) {
	analytics, err := u.HackathonAnalytics(ctx, hackathonID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	sheetName := "Analytics"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	f.SetCellValue(sheetName, "A1", "METRIC")
	f.SetCellValue(sheetName, "B1", "VALUE")
	f.SetCellStyle(sheetName, "A1", "B1", headerStyle)

	summary := []struct {
		label string
		value interface{}
	}{
		{"Total Teams", analytics.TotalTeams},
		{"Total Participants", analytics.TotalParticipants},
		{"Average Team Size", analytics.AverageTeamSize},
		{"Teams Recruiting", analytics.TeamsRecruiting},
	}
	for i, row := range summary {
		cellA, _ := excelize.CoordinatesToCellName(1, i+2)
		cellB, _ := excelize.CoordinatesToCellName(2, i+2)
		f.SetCellValue(sheetName, cellA, row.label)
		f.SetCellValue(sheetName, cellB, row.value)
	}

	skillsRow := len(summary) + 3
	cellA, _ := excelize.CoordinatesToCellName(1, skillsRow)
	cellB, _ := excelize.CoordinatesToCellName(2, skillsRow)
	f.SetCellValue(sheetName, cellA, "SKILL")
	f.SetCellValue(sheetName, cellB, "DEMAND")
	f.SetCellStyle(sheetName, cellA, cellB, headerStyle)
	for i, trend := range analytics.SkillDistribution {
		cellA, _ := excelize.CoordinatesToCellName(1, skillsRow+i+1)
		cellB, _ := excelize.CoordinatesToCellName(2, skillsRow+i+1)
		f.SetCellValue(sheetName, cellA, trend.Skill)
		f.SetCellValue(sheetName, cellB, trend.Count)
	}

	roleRow := skillsRow + len(analytics.SkillDistribution) + 2
	cellA, _ = excelize.CoordinatesToCellName(1, roleRow)
	cellB, _ = excelize.CoordinatesToCellName(2, roleRow)
	f.SetCellValue(sheetName, cellA, "ROLE")
	f.SetCellValue(sheetName, cellB, "MEMBERS")
	f.SetCellStyle(sheetName, cellA, cellB, headerStyle)
	i := 0
	for role, count := range analytics.RoleDistribution {
		cellA, _ := excelize.CoordinatesToCellName(1, roleRow+i+1)
		cellB, _ := excelize.CoordinatesToCellName(2, roleRow+i+1)
		f.SetCellValue(sheetName, cellA, role)
		f.SetCellValue(sheetName, cellB, count)
		i++
	}

	f.SetColWidth(sheetName, "A", "A", 28)
	f.SetColWidth(sheetName, "B", "B", 16)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	filename := fmt.Sprintf("hackathon_%d_analytics_%s.xlsx", hackathonID, time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}

func (u *analyticsUsecase) UserStats(ctx context.Context, userID string) (*domain.UserStats, error) {
	stats := &domain.UserStats{}
	var err error

	if stats.TeamsCount, err = u.teamRepo.CountByMember(ctx, userID); err != nil {
		return nil, err
	}
	if stats.LedTeamsCount, err = u.teamRepo.CountByLeader(ctx, userID); err != nil {
		return nil, err
	}
	if stats.TasksAssigned, err = u.taskRepo.CountAssigned(ctx, userID); err != nil {
		return nil, err
	}
	if stats.TasksCompleted, err = u.taskRepo.CountCompleted(ctx, userID); err != nil {
		return nil, err
	}
	if stats.HackathonsParticipated, err = u.hackathonRepo.CountParticipated(ctx, userID); err != nil {
		return nil, err
	}
	return stats, nil
}

func (u *analyticsUsecase) ActivitySummary(ctx context.Context, userID string, days int) (*domain.ActivitySummary, error) {
	if days < 1 {
		days = 30
	}
	if days > 90 {
		days = 90
	}
	since := time.Now().AddDate(0, 0, -days)

	summary := &domain.ActivitySummary{Days: days}
	var err error

	if summary.TeamsJoined, err = u.teamRepo.CountJoinedSince(ctx, userID, since); err != nil {
		return nil, err
	}
	if summary.TasksCompleted, err = u.taskRepo.CountCompletedSince(ctx, userID, since); err != nil {
		return nil, err
	}
	if summary.TasksCreated, err = u.taskRepo.CountCreatedSince(ctx, userID, since); err != nil {
		return nil, err
	}
	return summary, nil
}

package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"go-hackmate-backend/internal/delivery/http/response"
	"go-hackmate-backend/internal/domain"
	"go-hackmate-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsUC domain.AnalyticsUsecase
}

func NewAnalyticsHandler(protected *gin.RouterGroup, analyticsUC domain.AnalyticsUsecase) {
	handler := &AnalyticsHandler{analyticsUC: analyticsUC}

	protected.GET("/teams/:id/health", handler.TeamHealth)
	protected.GET("/skills/trending", handler.TrendingSkills)
	protected.GET("/hackathons/:id/analytics", handler.HackathonAnalytics)
	protected.GET("/hackathons/:id/analytics/export", handler.ExportHackathonAnalytics)
	protected.GET("/users/me/stats", handler.UserStats)
	protected.GET("/users/me/activity", handler.ActivitySummary)
}

// TeamHealth godoc
// @Summary      Get team health score
// @Description  Composite 0-100 health score from task completion, staffing, recent activity, and overdue work
// @Tags         analytics
// @Produce      json
// @Param        id   path      int  true  "Team ID"
// @Success      200  {object}  response.Response{data=domain.TeamHealthReport}
// @Failure      404  {object}  response.Response
// @Router       /teams/{id}/health [get]
// @Security     BearerAuth
func (h *AnalyticsHandler) TeamHealth(c *gin.Context) {
	teamID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid team id"))
		return
	}

	report, err := h.analyticsUC.TeamHealth(c.Request.Context(), teamID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Team health", report)
}

// TrendingSkills godoc
// @Summary      Get trending skills
// @Description  Top 10 skills weighted across member profiles (x1) and team demand (x2)
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.SkillTrend}
// @Router       /skills/trending [get]
// @Security     BearerAuth
func (h *AnalyticsHandler) TrendingSkills(c *gin.Context) {
	trends, err := h.analyticsUC.TrendingSkills(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Trending skills", trends)
}

// HackathonAnalytics godoc
// @Summary      Get hackathon analytics
// @Tags         analytics
// @Produce      json
// @Param        id   path      int  true  "Hackathon ID"
// @Success      200  {object}  response.Response{data=domain.HackathonAnalytics}
// @Failure      404  {object}  response.Response
// @Router       /hackathons/{id}/analytics [get]
// @Security     BearerAuth
func (h *AnalyticsHandler) HackathonAnalytics(c *gin.Context) {
	hackathonID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid hackathon id"))
		return
	}

	analytics, err := h.analyticsUC.HackathonAnalytics(c.Request.Context(), hackathonID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Hackathon analytics", analytics)
}

// ExportHackathonAnalytics godoc
// @Summary      Export hackathon analytics as XLSX
// @Tags         analytics
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id  path  int  true  "Hackathon ID"
// @Success      200 {file}  file
// @Failure      404 {object} response.Response
// @Router       /hackathons/{id}/analytics/export [get]
// @Security     BearerAuth
func (h *AnalyticsHandler) ExportHackathonAnalytics(c *gin.Context) {
	hackathonID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid hackathon id"))
		return
	}

	data, filename, err := h.analyticsUC.ExportHackathonAnalytics(c.Request.Context(), hackathonID)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// UserStats godoc
// @Summary      Get the caller's participation stats
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.UserStats}
// @Router       /users/me/stats [get]
// @Security     BearerAuth
func (h *AnalyticsHandler) UserStats(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	stats, err := h.analyticsUC.UserStats(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User stats", stats)
}

// ActivitySummary godoc
// @Summary      Get the caller's recent activity
// @Tags         analytics
// @Produce      json
// @Param        days  query     int  false  "Window in days (1-90, default 30)"
// @Success      200   {object}  response.Response{data=domain.ActivitySummary}
// @Router       /users/me/activity [get]
// @Security     BearerAuth
func (h *AnalyticsHandler) ActivitySummary(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	summary, err := h.analyticsUC.ActivitySummary(c.Request.Context(), userID, days)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Activity summary", summary)
}

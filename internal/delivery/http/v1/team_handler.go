package v1

import (
	"net/http"
	"strconv"

	"go-hackmate-backend/internal/delivery/http/response"
	"go-hackmate-backend/internal/domain"
	"go-hackmate-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	teamUC domain.TeamUsecase
}

func NewTeamHandler(protected *gin.RouterGroup, teamUC domain.TeamUsecase) {
	handler := &TeamHandler{teamUC: teamUC}

	teams := protected.Group("/teams")
	{
		teams.POST("", handler.Create)
		teams.GET("", handler.List)
		teams.GET("/:id", handler.Get)
		teams.POST("/:id/join", handler.Join)
		teams.POST("/:id/leave", handler.Leave)
	}
}

type CreateTeamRequest struct {
	Name           string   `json:"name" binding:"required,max=100"`
	Description    string   `json:"description"`
	HackathonID    int64    `json:"hackathon_id" binding:"required"`
	IsRecruiting   *bool    `json:"is_recruiting"`
	MaxMembers     int      `json:"max_members" binding:"required,gt=0"`
	RequiredSkills []string `json:"required_skills"`
	ProjectIdea    string   `json:"project_idea"`
}

type JoinTeamRequest struct {
	Role string `json:"role" binding:"required"`
}

// Create godoc
// @Summary      Create a team
// @Description  Creates a team for a hackathon with the caller as leader
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        team  body      CreateTeamRequest  true  "Team JSON"
// @Success      201   {object}  response.Response{data=domain.Team}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /teams [post]
// @Security     BearerAuth
func (h *TeamHandler) Create(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	recruiting := true
	if req.IsRecruiting != nil {
		recruiting = *req.IsRecruiting
	}

	team := &domain.Team{
		Name:           req.Name,
		Description:    req.Description,
		HackathonID:    req.HackathonID,
		IsRecruiting:   recruiting,
		MaxMembers:     req.MaxMembers,
		RequiredSkills: domain.NewSkillSet(req.RequiredSkills...),
		ProjectIdea:    req.ProjectIdea,
	}

	if err := h.teamUC.CreateTeam(c.Request.Context(), userID, team); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Team created", team)
}

// List godoc
// @Summary      List teams
// @Tags         teams
// @Produce      json
// @Param        hackathon_id  query     int     false  "Filter by hackathon"
// @Param        recruiting    query     bool    false  "Only recruiting teams"
// @Param        member_id     query     string  false  "Only teams the user belongs to"
// @Success      200           {object}  response.Response{data=[]domain.Team}
// @Router       /teams [get]
// @Security     BearerAuth
func (h *TeamHandler) List(c *gin.Context) {
	var filter domain.TeamFilter

	if raw := c.Query("hackathon_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid hackathon_id"))
			return
		}
		filter.HackathonID = &id
	}
	if raw := c.Query("recruiting"); raw != "" {
		recruiting, err := strconv.ParseBool(raw)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid recruiting flag"))
			return
		}
		filter.IsRecruiting = &recruiting
	}
	filter.MemberUserID = c.Query("member_id")

	teams, err := h.teamUC.ListTeams(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Teams", teams)
}

// Get godoc
// @Summary      Get team details
// @Tags         teams
// @Produce      json
// @Param        id   path      int  true  "Team ID"
// @Success      200  {object}  response.Response{data=domain.Team}
// @Failure      404  {object}  response.Response
// @Router       /teams/{id} [get]
// @Security     BearerAuth
func (h *TeamHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid team id"))
		return
	}

	team, err := h.teamUC.GetTeam(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Team", team)
}

// Join godoc
// @Summary      Join a team
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        id    path      int              true  "Team ID"
// @Param        join  body      JoinTeamRequest  true  "Join JSON"
// @Success      201   {object}  response.Response{data=domain.TeamMembership}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /teams/{id}/join [post]
// @Security     BearerAuth
func (h *TeamHandler) Join(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid team id"))
		return
	}

	var req JoinTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	membership, err := h.teamUC.JoinTeam(c.Request.Context(), id, userID, req.Role)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Joined team", membership)
}

// Leave godoc
// @Summary      Leave a team
// @Tags         teams
// @Produce      json
// @Param        id   path      int  true  "Team ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /teams/{id}/leave [post]
// @Security     BearerAuth
func (h *TeamHandler) Leave(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid team id"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	if err := h.teamUC.LeaveTeam(c.Request.Context(), id, userID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Left team", nil)
}

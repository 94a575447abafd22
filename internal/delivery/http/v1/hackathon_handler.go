package v1

import (
	"net/http"
	"strconv"
	"time"

	"go-hackmate-backend/internal/delivery/http/response"
	"go-hackmate-backend/internal/domain"
	"go-hackmate-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type HackathonHandler struct {
	hackathonUC domain.HackathonUsecase
}

func NewHackathonHandler(protected *gin.RouterGroup, hackathonUC domain.HackathonUsecase) {
	handler := &HackathonHandler{hackathonUC: hackathonUC}

	hackathons := protected.Group("/hackathons")
	{
		hackathons.POST("", handler.Create)
		hackathons.GET("", handler.List)
		hackathons.GET("/:id", handler.Get)
	}
}

type CreateHackathonRequest struct {
	Title                string    `json:"title" binding:"required,max=200"`
	Description          string    `json:"description"`
	LocationType         string    `json:"location_type" binding:"required"`
	LocationDetails      string    `json:"location_details"`
	StartDate            time.Time `json:"start_date" binding:"required"`
	EndDate              time.Time `json:"end_date" binding:"required"`
	RegistrationDeadline time.Time `json:"registration_deadline" binding:"required"`
	MaxTeamSize          int       `json:"max_team_size" binding:"required,gt=0"`
	MinTeamSize          int       `json:"min_team_size" binding:"required,gt=0"`
	Themes               []string  `json:"themes"`
	RequiredSkills       []string  `json:"required_skills"`
	Organizer            string    `json:"organizer"`
	Status               string    `json:"status"`
}

// Create godoc
// @Summary      Create a hackathon
// @Tags         hackathons
// @Accept       json
// @Produce      json
// @Param        hackathon  body      CreateHackathonRequest  true  "Hackathon JSON"
// @Success      201        {object}  response.Response{data=domain.Hackathon}
// @Failure      400        {object}  response.Response
// @Failure      422        {object}  response.Response
// @Router       /hackathons [post]
// @Security     BearerAuth
func (h *HackathonHandler) Create(c *gin.Context) {
	var req CreateHackathonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	hackathon := &domain.Hackathon{
		Title:                req.Title,
		Description:          req.Description,
		LocationType:         domain.LocationType(req.LocationType),
		LocationDetails:      req.LocationDetails,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		RegistrationDeadline: req.RegistrationDeadline,
		MaxTeamSize:          req.MaxTeamSize,
		MinTeamSize:          req.MinTeamSize,
		Themes:               domain.NewSkillSet(req.Themes...),
		RequiredSkills:       domain.NewSkillSet(req.RequiredSkills...),
		Organizer:            req.Organizer,
		Status:               domain.HackathonStatus(req.Status),
	}

	if err := h.hackathonUC.CreateHackathon(c.Request.Context(), userID, hackathon); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Hackathon created", hackathon)
}

// List godoc
// @Summary      List hackathons
// @Tags         hackathons
// @Produce      json
// @Param        status     query     string  false  "Filter by status"
// @Param        page       query     int     false  "Page number"
// @Param        page_size  query     int     false  "Page size"
// @Success      200        {object}  response.Response{data=[]domain.Hackathon}
// @Failure      422        {object}  response.Response
// @Router       /hackathons [get]
// @Security     BearerAuth
func (h *HackathonHandler) List(c *gin.Context) {
	var status *domain.HackathonStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.HackathonStatus(raw)
		status = &s
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	hackathons, total, err := h.hackathonUC.ListHackathons(c.Request.Context(), status, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Paginated(c, http.StatusOK, "Hackathons", hackathons, response.Meta{
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	})
}

// Get godoc
// @Summary      Get hackathon details
// @Tags         hackathons
// @Produce      json
// @Param        id   path      int  true  "Hackathon ID"
// @Success      200  {object}  response.Response{data=domain.Hackathon}
// @Failure      404  {object}  response.Response
// @Router       /hackathons/{id} [get]
// @Security     BearerAuth
func (h *HackathonHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid hackathon id"))
		return
	}

	hackathon, err := h.hackathonUC.GetHackathon(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Hackathon", hackathon)
}

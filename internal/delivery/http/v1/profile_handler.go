package v1

import (
	"io"
	"net/http"

	"go-hackmate-backend/internal/delivery/http/middleware"
	"go-hackmate-backend/internal/delivery/http/response"
	"go-hackmate-backend/internal/domain"
	"go-hackmate-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	uploadLimiter := middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig())

	profiles := protected.Group("/profiles")
	{
		profiles.GET("/me", handler.GetOwn)
		profiles.PUT("/me", handler.Update)
		profiles.POST("/me/avatar", uploadLimiter, handler.UploadAvatar)
		profiles.GET("/:user_id", handler.Get)
	}

	matchmaking := protected.Group("/matchmaking")
	{
		matchmaking.GET("/preferences", handler.GetPreference)
		matchmaking.PUT("/preferences", handler.UpdatePreference)
	}
}

type UpdateProfileRequest struct {
	Bio             string   `json:"bio" binding:"max=500"`
	Skills          []string `json:"skills"`
	ExperienceLevel string   `json:"experience_level" binding:"required"`
	GithubURL       string   `json:"github_url" binding:"omitempty,url"`
	LinkedinURL     string   `json:"linkedin_url" binding:"omitempty,url"`
	PortfolioURL    string   `json:"portfolio_url" binding:"omitempty,url"`
	Location        string   `json:"location"`
	Timezone        string   `json:"timezone"`
	PreferredRoles  []string `json:"preferred_roles"`
	IsAvailable     *bool    `json:"is_available"`
}

type UpdatePreferenceRequest struct {
	PreferredTeamSize         int      `json:"preferred_team_size" binding:"required,gt=0"`
	PreferredRoles            []string `json:"preferred_roles"`
	PreferredSkills           []string `json:"preferred_skills"`
	ExperienceLevelPreference []string `json:"experience_level_preference"`
	LocationPreference        string   `json:"location_preference" binding:"required"`
}

// GetOwn godoc
// @Summary      Get own profile
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Profile}
// @Failure      404  {object}  response.Response
// @Router       /profiles/me [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetOwn(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.profileUC.GetOwnProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile", profile)
}

// Get godoc
// @Summary      Get another user's profile
// @Tags         profiles
// @Produce      json
// @Param        user_id  path      string  true  "User ID"
// @Success      200      {object}  response.Response{data=domain.Profile}
// @Failure      404      {object}  response.Response
// @Router       /profiles/{user_id} [get]
// @Security     BearerAuth
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profileUC.GetProfile(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile", profile)
}

// Update godoc
// @Summary      Create or update own profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        profile  body      UpdateProfileRequest  true  "Profile JSON"
// @Success      200      {object}  response.Response{data=domain.Profile}
// @Failure      400      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Router       /profiles/me [put]
// @Security     BearerAuth
func (h *ProfileHandler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	toPtr := func(s string) *string {
		if s == "" {
			return nil
		}
		return &s
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	profile := &domain.Profile{
		UserID:          userID,
		Bio:             req.Bio,
		Skills:          domain.NewSkillSet(req.Skills...),
		ExperienceLevel: domain.ExperienceLevel(req.ExperienceLevel),
		GithubURL:       toPtr(req.GithubURL),
		LinkedinURL:     toPtr(req.LinkedinURL),
		PortfolioURL:    toPtr(req.PortfolioURL),
		Location:        req.Location,
		Timezone:        req.Timezone,
		PreferredRoles:  domain.NewSkillSet(req.PreferredRoles...),
		IsAvailable:     available,
	}

	if err := h.profileUC.UpdateProfile(c.Request.Context(), profile); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", profile)
}

// UploadAvatar godoc
// @Summary      Upload an avatar image
// @Description  Accepts a multipart file, resizes it to a 256px thumbnail, and stores it
// @Tags         profiles
// @Accept       multipart/form-data
// @Produce      json
// @Param        avatar  formData  file  true  "Avatar image (PNG, JPEG, or GIF)"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Router       /profiles/me/avatar [post]
// @Security     BearerAuth
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.Error(apperror.BadRequest("avatar file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.BadRequest("could not read avatar file"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.Error(apperror.BadRequest("could not read avatar file"))
		return
	}

	url, err := h.profileUC.UpdateAvatar(c.Request.Context(), userID, data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Avatar updated", gin.H{"avatar_url": url})
}

// GetPreference godoc
// @Summary      Get own matching preferences
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.MatchingPreference}
// @Router       /matchmaking/preferences [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetPreference(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	pref, err := h.profileUC.GetPreference(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Matching preferences", pref)
}

// UpdatePreference godoc
// @Summary      Update own matching preferences
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        preferences  body      UpdatePreferenceRequest  true  "Preferences JSON"
// @Success      200          {object}  response.Response{data=domain.MatchingPreference}
// @Failure      400          {object}  response.Response
// @Failure      422          {object}  response.Response
// @Router       /matchmaking/preferences [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdatePreference(c *gin.Context) {
	var req UpdatePreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	levels := make([]domain.ExperienceLevel, 0, len(req.ExperienceLevelPreference))
	for _, l := range req.ExperienceLevelPreference {
		levels = append(levels, domain.ExperienceLevel(l))
	}

	pref := &domain.MatchingPreference{
		UserID:                    userID,
		PreferredTeamSize:         req.PreferredTeamSize,
		PreferredRoles:            domain.NewSkillSet(req.PreferredRoles...),
		PreferredSkills:           domain.NewSkillSet(req.PreferredSkills...),
		ExperienceLevelPreference: levels,
		LocationPreference:        domain.LocationPreference(req.LocationPreference),
	}

	if err := h.profileUC.UpdatePreference(c.Request.Context(), pref); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Matching preferences updated", pref)
}

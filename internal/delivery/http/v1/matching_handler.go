package v1

import (
	"net/http"

	"go-hackmate-backend/internal/delivery/http/middleware"
	"go-hackmate-backend/internal/delivery/http/response"
	"go-hackmate-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type MatchingHandler struct {
	matchingUC domain.MatchingUsecase
}

func NewMatchingHandler(protected *gin.RouterGroup, matchingUC domain.MatchingUsecase) {
	handler := &MatchingHandler{matchingUC: matchingUC}

	matchLimiter := middleware.RateLimitMiddleware(middleware.MatchingRateLimitConfig())

	matchmaking := protected.Group("/matchmaking")
	{
		matchmaking.GET("/teammates", matchLimiter, handler.FindTeammates)
	}
	protected.GET("/recommendations", handler.GetRecommendations)
}

// FindTeammates godoc
// @Summary      Find compatible teammates
// @Description  Returns up to 20 available candidates ranked by compatibility with the caller's profile and matching preferences
// @Tags         matchmaking
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.ScoredCandidate}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /matchmaking/teammates [get]
// @Security     BearerAuth
func (h *MatchingHandler) FindTeammates(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	matches, err := h.matchingUC.FindTeammates(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Teammate matches", matches)
}

// GetRecommendations godoc
// @Summary      Get hackathon and team recommendations
// @Description  Returns up to 5 open hackathons and 5 recruiting teams whose required skills overlap the caller's
// @Tags         matchmaking
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Recommendations}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /recommendations [get]
// @Security     BearerAuth
func (h *MatchingHandler) GetRecommendations(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	recs, err := h.matchingUC.GetRecommendations(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Recommendations", recs)
}

package v1

import (
	"net/http"
	"time"

	"go-hackmate-backend/config"
	"go-hackmate-backend/internal/delivery/http/middleware"
	"go-hackmate-backend/internal/delivery/http/response"
	"go-hackmate-backend/internal/domain"
	"go-hackmate-backend/internal/usecase"
	"go-hackmate-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ProfileUC    domain.ProfileUsecase
	TeamUC       domain.TeamUsecase
	TaskUC       domain.TaskUsecase
	HackathonUC  domain.HackathonUsecase
	MatchingUC   domain.MatchingUsecase
	AnalyticsUC  domain.AnalyticsUsecase
	HealthUC     usecase.HealthUsecase
	JWKSProvider *auth.Provider
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig(
		deps.Config.RateLimitGlobalThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		status := deps.HealthUC.Check(c.Request.Context())
		code := http.StatusOK
		if status["status"] != "ok" {
			code = http.StatusServiceUnavailable
		}
		response.Success(c, code, "Health", status)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config))
	{
		NewProfileHandler(protected, deps.ProfileUC)
		NewTeamHandler(protected, deps.TeamUC)
		NewTaskHandler(protected, deps.TaskUC)
		NewHackathonHandler(protected, deps.HackathonUC)
		NewMatchingHandler(protected, deps.MatchingUC)
		NewAnalyticsHandler(protected, deps.AnalyticsUC)
	}

	return r
}

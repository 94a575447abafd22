package usecase

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"go-hackmate-backend/pkg/redis"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	db *pgxpool.Pool
}

func NewHealthUsecase(db *pgxpool.Pool) HealthUsecase {
	return &healthUsecase{db: db}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status":   "ok",
		"database": "ok",
		"redis":    "ok",
	}
	if u.db == nil {
		status["database"] = "not configured"
	} else if err := u.db.Ping(ctx); err != nil {
		status["status"] = "degraded"
		status["database"] = "unreachable"
	}
	if !redis.IsAvailable() {
		status["redis"] = "not configured"
	} else if err := redis.HealthCheck(ctx); err != nil {
		status["redis"] = "unreachable"
	}
	return status
}

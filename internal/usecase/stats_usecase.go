package usecase

import (
	"context"
	"encoding/json"
	"time"

	"go-hiring-backend/internal/domain"
	"go-hiring-backend/pkg/apperror"
	"go-hiring-backend/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const statsCacheKey = "dashboard:stats"

type statsUsecase struct {
	statsRepo domain.StatsRepository
	cache     *redis.Client // nil disables caching
	ttl       time.Duration
}

func NewStatsUsecase(statsRepo domain.StatsRepository, cache *redis.Client, ttl time.Duration) domain.StatsUsecase {
	return &statsUsecase{
		statsRepo: statsRepo,
		cache:     cache,
		ttl:       ttl,
	}
}

// GetDashboardStats serves the summary counts, short-circuiting through
// Redis when available. Cache failures are logged and ignored; the
// counts query is the source of truth.
func (u *statsUsecase) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	if u.cache != nil {
		if raw, err := u.cache.Get(ctx, statsCacheKey).Bytes(); err == nil {
			var cached domain.DashboardStats
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	stats, err := u.statsRepo.GetDashboardStats(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if u.cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := u.cache.Set(ctx, statsCacheKey, raw, u.ttl).Err(); err != nil {
				logger.Log.Debug("stats cache write failed", "error", err)
			}
		}
	}
	return stats, nil
}

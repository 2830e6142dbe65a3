package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-hiring-backend/internal/domain"
	"go-hiring-backend/internal/usecase"
	"go-hiring-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestGetDashboardStats(t *testing.T) {
	ctx := context.Background()

	t.Run("serves counts straight from the repository when cache is disabled", func(t *testing.T) {
		statsRepo := new(MockStatsRepo)
		statsRepo.On("GetDashboardStats", ctx).Return(&domain.DashboardStats{
			TotalJobs:           3,
			TotalUsers:          7,
			PendingApplications: 2,
		}, nil)

		uc := usecase.NewStatsUsecase(statsRepo, nil, time.Minute)
		stats, err := uc.GetDashboardStats(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), stats.TotalJobs)
		assert.Equal(t, int64(7), stats.TotalUsers)
		assert.Equal(t, int64(2), stats.PendingApplications)
	})

	t.Run("repository failure is internal", func(t *testing.T) {
		statsRepo := new(MockStatsRepo)
		statsRepo.On("GetDashboardStats", ctx).Return(nil, errors.New("connection refused"))

		uc := usecase.NewStatsUsecase(statsRepo, nil, time.Minute)
		_, err := uc.GetDashboardStats(ctx)

		assert.True(t, apperror.IsKind(err, apperror.KindInternal))
	})
}

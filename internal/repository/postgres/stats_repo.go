package postgres

import (
	"context"

	"go-hiring-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type statsRepo struct {
	db *pgxpool.Pool
}

func NewStatsRepository(db *pgxpool.Pool) domain.StatsRepository {
	return &statsRepo{db: db}
}

func (r *statsRepo) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	query := `SELECT
	            (SELECT COUNT(*) FROM jobs),
	            (SELECT COUNT(*) FROM accounts),
	            (SELECT COUNT(*) FROM applications WHERE status = $1)`
	var stats domain.DashboardStats
	err := r.db.QueryRow(ctx, query, domain.ApplicationStatusPending).Scan(
		&stats.TotalJobs, &stats.TotalUsers, &stats.PendingApplications,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

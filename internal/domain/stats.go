package domain

import "context"

// DashboardStats is the read-only summary across jobs, accounts and
// applications.
type DashboardStats struct {
	TotalJobs           int64 `json:"totalJobs"`
	TotalUsers          int64 `json:"totalUsers"`
	PendingApplications int64 `json:"pendingApplications"`
}

type StatsRepository interface {
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}

type StatsUsecase interface {
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}

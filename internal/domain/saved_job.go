package domain

import (
	"context"
	"time"
)

// SavedJob is a bookmark: one row per (userEmail, jobId), deletable
// independently of any application.
type SavedJob struct {
	UserEmail string    `json:"user_email"`
	JobID     Ref       `json:"job_id"`
	SavedAt   time.Time `json:"saved_at"`
}

type SavedJobRepository interface {
	Create(ctx context.Context, saved *SavedJob) error
	Exists(ctx context.Context, userEmail string, jobID Ref) (bool, error)
	Delete(ctx context.Context, userEmail string, jobID Ref) (bool, error)
	GetByUserEmail(ctx context.Context, userEmail string) ([]SavedJob, error)
}

type SavedJobUsecase interface {
	// SaveJob soft-fails on a duplicate bookmark instead of erroring.
	SaveJob(ctx context.Context, userEmail, jobID string) (OperationResult, error)
	DeleteSavedJob(ctx context.Context, userEmail, jobID string) (bool, error)
	GetSavedJobsByUser(ctx context.Context, userEmail string) ([]JobPosting, error)
}

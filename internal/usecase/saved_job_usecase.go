package usecase

import (
	"context"
	"errors"
	"time"

	"go-hiring-backend/internal/domain"
	"go-hiring-backend/pkg/apperror"
)

type savedJobUsecase struct {
	savedJobRepo domain.SavedJobRepository
	jobRepo      domain.JobRepository
}

func NewSavedJobUsecase(savedJobRepo domain.SavedJobRepository, jobRepo domain.JobRepository) domain.SavedJobUsecase {
	return &savedJobUsecase{
		savedJobRepo: savedJobRepo,
		jobRepo:      jobRepo,
	}
}

// SaveJob soft-fails on duplicates: a second bookmark of the same job
// yields {success:false} rather than an error, and callers depend on
// that shape.
func (u *savedJobUsecase) SaveJob(ctx context.Context, userEmail, jobID string) (domain.OperationResult, error) {
	id, err := ParseJobID(jobID)
	if err != nil {
		return domain.OperationResult{}, apperror.Validation("malformed job id")
	}

	exists, err := u.savedJobRepo.Exists(ctx, userEmail, id)
	if err != nil {
		return domain.OperationResult{}, apperror.Internal(err)
	}
	if exists {
		return domain.OperationResult{Success: false, Message: "job already saved"}, nil
	}

	saved := &domain.SavedJob{
		UserEmail: userEmail,
		JobID:     id,
		SavedAt:   time.Now(),
	}
	if err := u.savedJobRepo.Create(ctx, saved); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			// Lost the race to a concurrent save; same soft answer.
			return domain.OperationResult{Success: false, Message: "job already saved"}, nil
		}
		return domain.OperationResult{}, apperror.Internal(err)
	}

	return domain.OperationResult{Success: true, Message: "job saved"}, nil
}

func (u *savedJobUsecase) DeleteSavedJob(ctx context.Context, userEmail, jobID string) (bool, error) {
	id, err := ParseJobID(jobID)
	if err != nil {
		return false, apperror.Validation("malformed job id")
	}
	removed, err := u.savedJobRepo.Delete(ctx, userEmail, id)
	if err != nil {
		return false, apperror.Internal(err)
	}
	return removed, nil
}

// GetSavedJobsByUser joins bookmarks against job postings in application
// code, in arbitrary order.
func (u *savedJobUsecase) GetSavedJobsByUser(ctx context.Context, userEmail string) ([]domain.JobPosting, error) {
	saved, err := u.savedJobRepo.GetByUserEmail(ctx, userEmail)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	ids := make([]domain.Ref, 0, len(saved))
	for _, s := range saved {
		ids = append(ids, s.JobID)
	}

	jobs, err := u.jobRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

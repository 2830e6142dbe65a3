package usecase

import (
	"context"
	"errors"
	"time"

	"go-hiring-backend/internal/domain"
	"go-hiring-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	companyRepo   domain.CompanyProfileRepository
	candidateRepo domain.CandidateProfileRepository
	validate      *validator.Validate
}

func NewProfileUsecase(
	companyRepo domain.CompanyProfileRepository,
	candidateRepo domain.CandidateProfileRepository,
	validate *validator.Validate,
) domain.ProfileUsecase {
	return &profileUsecase{
		companyRepo:   companyRepo,
		candidateRepo: candidateRepo,
		validate:      validate,
	}
}

// SaveCompanyProfile is a full-replace upsert keyed by email.
func (u *profileUsecase) SaveCompanyProfile(ctx context.Context, input *domain.CompanyProfile) (*domain.CompanyProfile, error) {
	if input.Email == "" {
		return nil, apperror.Validation("email is required")
	}
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	if err := u.companyRepo.Upsert(ctx, input); err != nil {
		return nil, apperror.Internal(err)
	}
	return input, nil
}

func (u *profileUsecase) GetCompanyProfile(ctx context.Context, email string) (*domain.CompanyProfile, error) {
	profile, err := u.companyRepo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

// SaveCandidateProfile upserts by email and stamps UpdatedAt on every
// write. The returned record is fully defaulted: optional fields are
// plain strings, never absent.
func (u *profileUsecase) SaveCandidateProfile(ctx context.Context, input *domain.CandidateProfile) (*domain.CandidateProfile, error) {
	if input.Email == "" {
		return nil, apperror.Validation("email is required")
	}
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	input.UpdatedAt = time.Now()
	if err := u.candidateRepo.Upsert(ctx, input); err != nil {
		return nil, apperror.Internal(err)
	}
	return input, nil
}

func (u *profileUsecase) GetCandidateProfile(ctx context.Context, email string) (*domain.CandidateProfile, error) {
	profile, err := u.candidateRepo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

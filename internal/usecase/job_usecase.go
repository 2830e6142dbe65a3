package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-hiring-backend/internal/domain"
	"go-hiring-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type jobUsecase struct {
	jobRepo     domain.JobRepository
	companyRepo domain.CompanyProfileRepository
	validate    *validator.Validate
}

func NewJobUsecase(jobRepo domain.JobRepository, companyRepo domain.CompanyProfileRepository, validate *validator.Validate) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
		validate:    validate,
	}
}

// CreateJob requires a company profile with a non-empty name for the
// owning email. The resolved name is copied onto the posting and frozen;
// renaming the company later does not touch existing postings.
func (u *jobUsecase) CreateJob(ctx context.Context, input *domain.JobPosting) (*domain.JobPosting, error) {
	// 1. Validate input
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	// 2. Resolve the owning company
	company, err := u.companyRepo.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if company == nil || company.CompanyName == "" {
		return nil, apperror.Validation("no resolvable company for " + input.Email)
	}

	// 3. Freeze the snapshot and persist
	input.ID = domain.NewRef()
	input.CompanyName = company.CompanyName
	input.CreatedAt = time.Now()
	if input.MustHave == nil {
		input.MustHave = []string{}
	}

	if err := u.jobRepo.Create(ctx, input); err != nil {
		return nil, apperror.Internal(err)
	}
	return input, nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, id string, input *domain.JobPosting) (*domain.JobPosting, error) {
	jobID, err := ParseJobID(id)
	if err != nil {
		return nil, apperror.Validation("malformed job id")
	}

	existing, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("job not found")
		}
		return nil, apperror.Internal(err)
	}

	// Owner email, frozen company name and created_at are immutable.
	existing.Title = input.Title
	existing.Description = input.Description
	existing.Location = input.Location
	existing.Salary = input.Salary
	existing.Type = input.Type
	existing.Deadline = input.Deadline
	existing.AboutJob = input.AboutJob
	existing.AboutYou = input.AboutYou
	existing.WhatWeLookFor = input.WhatWeLookFor
	existing.Benefits = input.Benefits
	if input.MustHave != nil {
		existing.MustHave = input.MustHave
	}

	if err := u.jobRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("job not found")
		}
		return nil, apperror.Internal(err)
	}
	return existing, nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, id string) (bool, error) {
	jobID, err := ParseJobID(id)
	if err != nil {
		return false, apperror.Validation("malformed job id")
	}
	removed, err := u.jobRepo.Delete(ctx, jobID)
	if err != nil {
		return false, apperror.Internal(err)
	}
	return removed, nil
}

func (u *jobUsecase) GetAllJobs(ctx context.Context) ([]domain.JobPosting, error) {
	jobs, err := u.jobRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (u *jobUsecase) GetJobByID(ctx context.Context, id string) (*domain.JobPosting, error) {
	jobID, err := ParseJobID(id)
	if err != nil {
		return nil, apperror.Validation("malformed job id")
	}
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return job, nil
}

// ParseJobID accepts a bare 24-hex ref or the legacy wrapped identifier
// form ObjectID("...") that older clients still send, with optional
// surrounding quotes and whitespace.
func ParseJobID(id string) (domain.Ref, error) {
	s := strings.TrimSpace(id)
	if strings.HasPrefix(s, "ObjectID(") && strings.HasSuffix(s, ")") {
		s = s[len("ObjectID(") : len(s)-1]
	}
	s = strings.Trim(s, `"'`)
	return domain.ParseRef(s)
}

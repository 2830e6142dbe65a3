package domain

import (
	"context"
	"time"
)

// JobPosting is owned by the company identified by Email. CompanyName is
// a snapshot taken at creation and never re-derived, even if the company
// profile is renamed later.
type JobPosting struct {
	ID            Ref       `json:"id"`
	Title         string    `json:"title" validate:"required"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	Salary        string    `json:"salary"`
	Type          string    `json:"type"`
	Deadline      string    `json:"deadline"`
	AboutJob      string    `json:"about_job"`
	AboutYou      string    `json:"about_you"`
	WhatWeLookFor string    `json:"what_we_look_for"`
	MustHave      []string  `json:"must_have"`
	Benefits      string    `json:"benefits"`
	Email         string    `json:"email" validate:"required,email"`
	CompanyName   string    `json:"company_name"`
	CreatedAt     time.Time `json:"created_at"`
}

type JobRepository interface {
	Create(ctx context.Context, job *JobPosting) error
	Update(ctx context.Context, job *JobPosting) error
	// Delete reports whether a row was removed; a second delete of the
	// same id is not an error.
	Delete(ctx context.Context, id Ref) (bool, error)
	GetByID(ctx context.Context, id Ref) (*JobPosting, error)
	GetByIDs(ctx context.Context, ids []Ref) ([]JobPosting, error)
	GetAll(ctx context.Context) ([]JobPosting, error)
}

// JobUsecase operations take string ids because callers may still hold
// the legacy wrapped identifier form alongside bare refs.
type JobUsecase interface {
	CreateJob(ctx context.Context, input *JobPosting) (*JobPosting, error)
	UpdateJob(ctx context.Context, id string, input *JobPosting) (*JobPosting, error)
	DeleteJob(ctx context.Context, id string) (bool, error)
	GetAllJobs(ctx context.Context) ([]JobPosting, error)
	GetJobByID(ctx context.Context, id string) (*JobPosting, error)
}

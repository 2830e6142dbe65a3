package domain

import (
	"context"
	"time"
)

// Application status state machine: Pending is the only initial state,
// Accepted and Rejected are terminal. The persisted strings are part of
// the external format.
const (
	ApplicationStatusPending  = "Pending"
	ApplicationStatusAccepted = "Accepted"
	ApplicationStatusRejected = "Rejected"
)

// Application owns an embedded copy of the candidate profile taken at
// apply time. Later profile edits do not reach past applications.
type Application struct {
	ID             Ref              `json:"id"`
	JobID          Ref              `json:"job_id"`
	UserEmail      string           `json:"user_email"`
	Profile        CandidateProfile `json:"profile"`
	ResumeRef      string           `json:"resume_ref"`
	CoverLetterRef string           `json:"cover_letter_ref"`
	AppliedAt      time.Time        `json:"applied_at"`
	Status         string           `json:"status"`
}

// Applicant is the projected view employers see when listing who applied
// to a job.
type Applicant struct {
	ApplicationID  Ref       `json:"application_id"`
	UserEmail      string    `json:"user_email"`
	FullName       string    `json:"full_name"`
	Phone          string    `json:"phone"`
	Location       string    `json:"location"`
	Title          string    `json:"title"`
	ResumeRef      string    `json:"resume_ref"`
	CoverLetterRef string    `json:"cover_letter_ref"`
	AppliedAt      time.Time `json:"applied_at"`
	Status         string    `json:"status"`
}

// AppliedJob is a job posting with the caller's application status
// attached.
type AppliedJob struct {
	JobPosting
	Status string `json:"status"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	Exists(ctx context.Context, jobID Ref, userEmail string) (bool, error)
	GetByID(ctx context.Context, id Ref) (*Application, error)
	GetByJobID(ctx context.Context, jobID Ref) ([]Application, error)
	GetByUserEmail(ctx context.Context, userEmail string) ([]Application, error)
	UpdateStatus(ctx context.Context, id Ref, status string) error
}

type ApplicationUsecase interface {
	ApplyForJob(ctx context.Context, userEmail, jobID, resumeRef, coverLetterRef string) (*Application, error)
	GetApplicantsByJob(ctx context.Context, jobID string) ([]Applicant, error)
	GetAppliedJobsByUser(ctx context.Context, userEmail string) ([]AppliedJob, error)
	UpdateApplicantStatus(ctx context.Context, applicationID, status string) (*Application, error)
}

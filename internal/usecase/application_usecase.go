package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-hiring-backend/internal/domain"
	"go-hiring-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	candidateRepo   domain.CandidateProfileRepository
}

func NewApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	candidateRepo domain.CandidateProfileRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		candidateRepo:   candidateRepo,
	}
}

// ApplyForJob records a candidate's application. The candidate profile
// is copied into the application at this moment; later profile edits do
// not reach it.
func (u *applicationUsecase) ApplyForJob(ctx context.Context, userEmail, jobID, resumeRef, coverLetterRef string) (*domain.Application, error) {
	id, err := ParseJobID(jobID)
	if err != nil {
		return nil, apperror.Validation("malformed job id")
	}

	// 1. The target job must exist
	if _, err := u.jobRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("job not found")
		}
		return nil, apperror.Internal(err)
	}

	// 2. The candidate must have a profile to snapshot
	profile, err := u.candidateRepo.GetByEmail(ctx, userEmail)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("candidate profile not found")
		}
		return nil, apperror.Internal(err)
	}

	// 3. At most one application per (job, candidate). The pre-check
	// gives the friendly message; the unique index closes the race.
	exists, err := u.applicationRepo.Exists(ctx, id, userEmail)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Conflict("already applied")
	}

	if resumeRef == "" {
		resumeRef = profile.ResumeRef
	}
	if coverLetterRef == "" {
		coverLetterRef = profile.CoverLetterRef
	}

	app := &domain.Application{
		ID:             domain.NewRef(),
		JobID:          id,
		UserEmail:      userEmail,
		Profile:        *profile,
		ResumeRef:      resumeRef,
		CoverLetterRef: coverLetterRef,
		AppliedAt:      time.Now(),
		Status:         domain.ApplicationStatusPending,
	}

	if err := u.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("already applied")
		}
		return nil, apperror.Internal(err)
	}
	return app, nil
}

// GetApplicantsByJob projects each application into the view employers
// see, reading personal fields from the apply-time snapshot.
func (u *applicationUsecase) GetApplicantsByJob(ctx context.Context, jobID string) ([]domain.Applicant, error) {
	id, err := ParseJobID(jobID)
	if err != nil {
		return nil, apperror.Validation("malformed job id")
	}

	apps, err := u.applicationRepo.GetByJobID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	applicants := make([]domain.Applicant, 0, len(apps))
	for _, app := range apps {
		applicants = append(applicants, domain.Applicant{
			ApplicationID:  app.ID,
			UserEmail:      app.UserEmail,
			FullName:       app.Profile.FullName,
			Phone:          app.Profile.Phone,
			Location:       app.Profile.Location,
			Title:          app.Profile.Title,
			ResumeRef:      app.ResumeRef,
			CoverLetterRef: app.CoverLetterRef,
			AppliedAt:      app.AppliedAt,
			Status:         app.Status,
		})
	}
	return applicants, nil
}

// GetAppliedJobsByUser joins the user's applications against job
// postings in application code; there is no database-native join here by
// design. Jobs deleted since applying simply drop out.
func (u *applicationUsecase) GetAppliedJobsByUser(ctx context.Context, userEmail string) ([]domain.AppliedJob, error) {
	apps, err := u.applicationRepo.GetByUserEmail(ctx, userEmail)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	statusByJob := make(map[domain.Ref]string, len(apps))
	ids := make([]domain.Ref, 0, len(apps))
	for _, app := range apps {
		if _, seen := statusByJob[app.JobID]; !seen {
			ids = append(ids, app.JobID)
		}
		statusByJob[app.JobID] = app.Status
	}

	jobs, err := u.jobRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	applied := make([]domain.AppliedJob, 0, len(jobs))
	for _, job := range jobs {
		status, ok := statusByJob[job.ID]
		if !ok {
			// Safety net only; the dedup invariant means every fetched
			// job had a matching application.
			status = domain.ApplicationStatusPending
		}
		applied = append(applied, domain.AppliedJob{JobPosting: job, Status: status})
	}
	return applied, nil
}

// UpdateApplicantStatus drives the state machine. Accepted and Rejected
// are terminal: any attempt to transition away from them is rejected
// here rather than trusted to callers.
func (u *applicationUsecase) UpdateApplicantStatus(ctx context.Context, applicationID, status string) (*domain.Application, error) {
	if status != domain.ApplicationStatusAccepted && status != domain.ApplicationStatusRejected {
		return nil, apperror.Validation("invalid status; must be Accepted or Rejected")
	}

	id, err := domain.ParseRef(strings.TrimSpace(applicationID))
	if err != nil {
		return nil, apperror.Validation("malformed application id")
	}

	app, err := u.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("application not found")
		}
		return nil, apperror.Internal(err)
	}

	if app.Status != domain.ApplicationStatusPending {
		return nil, apperror.Conflict("application already " + strings.ToLower(app.Status))
	}

	if err := u.applicationRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("application not found")
		}
		return nil, apperror.Internal(err)
	}

	app.Status = status
	return app, nil
}

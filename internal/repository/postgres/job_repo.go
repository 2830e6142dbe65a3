package postgres

import (
	"context"

	"go-hiring-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `id, title, description, location, salary, job_type, deadline,
	about_job, about_you, what_we_look_for, must_have, benefits, email, company_name, created_at`

func scanJob(row pgx.Row) (*domain.JobPosting, error) {
	var job domain.JobPosting
	err := row.Scan(
		&job.ID, &job.Title, &job.Description, &job.Location, &job.Salary, &job.Type,
		&job.Deadline, &job.AboutJob, &job.AboutYou, &job.WhatWeLookFor, &job.MustHave,
		&job.Benefits, &job.Email, &job.CompanyName, &job.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if job.MustHave == nil {
		job.MustHave = []string{}
	}
	return &job, nil
}

func (r *jobRepo) Create(ctx context.Context, job *domain.JobPosting) error {
	query := `INSERT INTO jobs (id, title, description, location, salary, job_type, deadline,
	            about_job, about_you, what_we_look_for, must_have, benefits, email, company_name, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.Location, job.Salary, job.Type, job.Deadline,
		job.AboutJob, job.AboutYou, job.WhatWeLookFor, job.MustHave, job.Benefits,
		job.Email, job.CompanyName, job.CreatedAt,
	)
	return err
}

// Update rewrites the mutable fields only. Owner email, the frozen
// company name and created_at never change after creation.
func (r *jobRepo) Update(ctx context.Context, job *domain.JobPosting) error {
	query := `UPDATE jobs SET
	            title = $2,
	            description = $3,
	            location = $4,
	            salary = $5,
	            job_type = $6,
	            deadline = $7,
	            about_job = $8,
	            about_you = $9,
	            what_we_look_for = $10,
	            must_have = $11,
	            benefits = $12
	          WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.Location, job.Salary, job.Type, job.Deadline,
		job.AboutJob, job.AboutYou, job.WhatWeLookFor, job.MustHave, job.Benefits,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id domain.Ref) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

func (r *jobRepo) GetByID(ctx context.Context, id domain.Ref) (*domain.JobPosting, error) {
	job, err := scanJob(r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err != nil {
		return nil, translateScanErr(err)
	}
	return job, nil
}

// GetByIDs fetches the postings for the given ids in one round trip. Ids
// with no surviving posting are simply absent from the result; callers
// doing application-code joins handle the gap.
func (r *jobRepo) GetByIDs(ctx context.Context, ids []domain.Ref) ([]domain.JobPosting, error) {
	if len(ids) == 0 {
		return []domain.JobPosting{}, nil
	}
	idStrings := make([]string, len(ids))
	for i, id := range ids {
		idStrings[i] = string(id)
	}
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = ANY($1)`
	rows, err := r.db.Query(ctx, query, idStrings)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *jobRepo) GetAll(ctx context.Context) ([]domain.JobPosting, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func collectJobs(rows pgx.Rows) ([]domain.JobPosting, error) {
	jobs := []domain.JobPosting{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

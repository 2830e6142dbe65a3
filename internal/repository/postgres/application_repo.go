package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"go-hiring-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	snapshot, err := json.Marshal(app.Profile)
	if err != nil {
		return fmt.Errorf("marshal profile snapshot: %w", err)
	}
	query := `INSERT INTO applications (id, job_id, user_email, profile, resume_ref, cover_letter_ref, applied_at, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.db.Exec(ctx, query,
		app.ID, app.JobID, app.UserEmail, snapshot, app.ResumeRef, app.CoverLetterRef,
		app.AppliedAt, app.Status,
	)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *applicationRepo) Exists(ctx context.Context, jobID domain.Ref, userEmail string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND user_email = $2)`
	err := r.db.QueryRow(ctx, query, jobID, userEmail).Scan(&exists)
	return exists, err
}

const applicationColumns = `id, job_id, user_email, profile, resume_ref, cover_letter_ref, applied_at, status`

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var app domain.Application
	var snapshot []byte
	err := row.Scan(
		&app.ID, &app.JobID, &app.UserEmail, &snapshot, &app.ResumeRef, &app.CoverLetterRef,
		&app.AppliedAt, &app.Status,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(snapshot, &app.Profile); err != nil {
		return nil, fmt.Errorf("unmarshal profile snapshot: %w", err)
	}
	return &app, nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id domain.Ref) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	app, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateScanErr(err)
	}
	return app, nil
}

func (r *applicationRepo) GetByJobID(ctx context.Context, jobID domain.Ref) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE job_id = $1 ORDER BY applied_at DESC`
	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectApplications(rows)
}

func (r *applicationRepo) GetByUserEmail(ctx context.Context, userEmail string) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE user_email = $1 ORDER BY applied_at DESC`
	rows, err := r.db.Query(ctx, query, userEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectApplications(rows)
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id domain.Ref, status string) error {
	result, err := r.db.Exec(ctx, `UPDATE applications SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func collectApplications(rows pgx.Rows) ([]domain.Application, error) {
	apps := []domain.Application{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}

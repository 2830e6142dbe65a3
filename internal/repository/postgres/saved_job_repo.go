package postgres

import (
	"context"

	"go-hiring-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type savedJobRepo struct {
	db *pgxpool.Pool
}

func NewSavedJobRepository(db *pgxpool.Pool) domain.SavedJobRepository {
	return &savedJobRepo{db: db}
}

func (r *savedJobRepo) Create(ctx context.Context, saved *domain.SavedJob) error {
	query := `INSERT INTO saved_jobs (user_email, job_id, saved_at) VALUES ($1, $2, $3)`
	_, err := r.db.Exec(ctx, query, saved.UserEmail, saved.JobID, saved.SavedAt)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *savedJobRepo) Exists(ctx context.Context, userEmail string, jobID domain.Ref) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM saved_jobs WHERE user_email = $1 AND job_id = $2)`
	err := r.db.QueryRow(ctx, query, userEmail, jobID).Scan(&exists)
	return exists, err
}

func (r *savedJobRepo) Delete(ctx context.Context, userEmail string, jobID domain.Ref) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM saved_jobs WHERE user_email = $1 AND job_id = $2`, userEmail, jobID)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

func (r *savedJobRepo) GetByUserEmail(ctx context.Context, userEmail string) ([]domain.SavedJob, error) {
	query := `SELECT user_email, job_id, saved_at FROM saved_jobs WHERE user_email = $1`
	rows, err := r.db.Query(ctx, query, userEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	saved := []domain.SavedJob{}
	for rows.Next() {
		var s domain.SavedJob
		if err := rows.Scan(&s.UserEmail, &s.JobID, &s.SavedAt); err != nil {
			return nil, err
		}
		saved = append(saved, s)
	}
	return saved, rows.Err()
}

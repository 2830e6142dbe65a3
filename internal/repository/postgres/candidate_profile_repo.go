package postgres

import (
	"context"

	"go-hiring-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type candidateProfileRepo struct {
	db *pgxpool.Pool
}

func NewCandidateProfileRepository(db *pgxpool.Pool) domain.CandidateProfileRepository {
	return &candidateProfileRepo{db: db}
}

func (r *candidateProfileRepo) Upsert(ctx context.Context, profile *domain.CandidateProfile) error {
	query := `INSERT INTO candidate_profiles
	            (email, full_name, phone, location, title, summary, skills, education, experience,
	             linkedin, website, resume_ref, cover_letter_ref, photo_ref, intro_video_ref, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	          ON CONFLICT (email) DO UPDATE SET
	            full_name = EXCLUDED.full_name,
	            phone = EXCLUDED.phone,
	            location = EXCLUDED.location,
	            title = EXCLUDED.title,
	            summary = EXCLUDED.summary,
	            skills = EXCLUDED.skills,
	            education = EXCLUDED.education,
	            experience = EXCLUDED.experience,
	            linkedin = EXCLUDED.linkedin,
	            website = EXCLUDED.website,
	            resume_ref = EXCLUDED.resume_ref,
	            cover_letter_ref = EXCLUDED.cover_letter_ref,
	            photo_ref = EXCLUDED.photo_ref,
	            intro_video_ref = EXCLUDED.intro_video_ref,
	            updated_at = EXCLUDED.updated_at`
	_, err := r.db.Exec(ctx, query,
		profile.Email, profile.FullName, profile.Phone, profile.Location, profile.Title,
		profile.Summary, profile.Skills, profile.Education, profile.Experience,
		profile.LinkedIn, profile.Website, profile.ResumeRef, profile.CoverLetterRef,
		profile.PhotoRef, profile.IntroVideoRef, profile.UpdatedAt,
	)
	return err
}

func (r *candidateProfileRepo) GetByEmail(ctx context.Context, email string) (*domain.CandidateProfile, error) {
	query := `SELECT email, full_name, phone, location, title, summary, skills, education, experience,
	                 linkedin, website, resume_ref, cover_letter_ref, photo_ref, intro_video_ref, updated_at
	          FROM candidate_profiles WHERE email = $1`
	var profile domain.CandidateProfile
	err := r.db.QueryRow(ctx, query, email).Scan(
		&profile.Email, &profile.FullName, &profile.Phone, &profile.Location, &profile.Title,
		&profile.Summary, &profile.Skills, &profile.Education, &profile.Experience,
		&profile.LinkedIn, &profile.Website, &profile.ResumeRef, &profile.CoverLetterRef,
		&profile.PhotoRef, &profile.IntroVideoRef, &profile.UpdatedAt,
	)
	if err != nil {
		return nil, translateScanErr(err)
	}
	return &profile, nil
}

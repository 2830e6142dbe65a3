package postgres

import (
	"context"

	"go-hiring-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type companyProfileRepo struct {
	db *pgxpool.Pool
}

func NewCompanyProfileRepository(db *pgxpool.Pool) domain.CompanyProfileRepository {
	return &companyProfileRepo{db: db}
}

// Upsert replaces the whole profile document for the email in one
// statement, so concurrent saves cannot interleave partial writes.
func (r *companyProfileRepo) Upsert(ctx context.Context, profile *domain.CompanyProfile) error {
	query := `INSERT INTO company_profiles
	            (email, company_name, industry, registration_number, founded_year, team_size,
	             website, phone, address, overview, linkedin, twitter, facebook, instagram)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	          ON CONFLICT (email) DO UPDATE SET
	            company_name = EXCLUDED.company_name,
	            industry = EXCLUDED.industry,
	            registration_number = EXCLUDED.registration_number,
	            founded_year = EXCLUDED.founded_year,
	            team_size = EXCLUDED.team_size,
	            website = EXCLUDED.website,
	            phone = EXCLUDED.phone,
	            address = EXCLUDED.address,
	            overview = EXCLUDED.overview,
	            linkedin = EXCLUDED.linkedin,
	            twitter = EXCLUDED.twitter,
	            facebook = EXCLUDED.facebook,
	            instagram = EXCLUDED.instagram`
	_, err := r.db.Exec(ctx, query,
		profile.Email, profile.CompanyName, profile.Industry, profile.RegistrationNumber,
		profile.FoundedYear, profile.TeamSize, profile.Website, profile.Phone, profile.Address,
		profile.Overview, profile.LinkedIn, profile.Twitter, profile.Facebook, profile.Instagram,
	)
	return err
}

func (r *companyProfileRepo) GetByEmail(ctx context.Context, email string) (*domain.CompanyProfile, error) {
	query := `SELECT email, company_name, industry, registration_number, founded_year, team_size,
	                 website, phone, address, overview, linkedin, twitter, facebook, instagram
	          FROM company_profiles WHERE email = $1`
	var profile domain.CompanyProfile
	err := r.db.QueryRow(ctx, query, email).Scan(
		&profile.Email, &profile.CompanyName, &profile.Industry, &profile.RegistrationNumber,
		&profile.FoundedYear, &profile.TeamSize, &profile.Website, &profile.Phone, &profile.Address,
		&profile.Overview, &profile.LinkedIn, &profile.Twitter, &profile.Facebook, &profile.Instagram,
	)
	if err != nil {
		return nil, translateScanErr(err)
	}
	return &profile, nil
}

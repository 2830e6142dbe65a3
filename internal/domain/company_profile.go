package domain

import "context"

// CompanyProfile is keyed by email, not by id. Saving is a full-replace
// upsert; there are no partial-merge semantics.
type CompanyProfile struct {
	Email              string `json:"email" validate:"required,email"`
	CompanyName        string `json:"company_name"`
	Industry           string `json:"industry"`
	RegistrationNumber string `json:"registration_number"`
	FoundedYear        int    `json:"founded_year"`
	TeamSize           string `json:"team_size"`
	Website            string `json:"website"`
	Phone              string `json:"phone"`
	Address            string `json:"address"`
	Overview           string `json:"overview"`
	LinkedIn           string `json:"linkedin"`
	Twitter            string `json:"twitter"`
	Facebook           string `json:"facebook"`
	Instagram          string `json:"instagram"`
}

type CompanyProfileRepository interface {
	Upsert(ctx context.Context, profile *CompanyProfile) error
	GetByEmail(ctx context.Context, email string) (*CompanyProfile, error)
}

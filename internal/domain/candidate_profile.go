package domain

import (
	"context"
	"time"
)

// CandidateProfile is keyed by email. The four asset fields hold blob
// references (or are empty); every optional field is a plain string so a
// saved profile always comes back fully defaulted rather than with
// absent members.
type CandidateProfile struct {
	Email      string `json:"email" validate:"required,email"`
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	Location   string `json:"location"`
	Title      string `json:"title"`
	Summary    string `json:"summary"`
	Skills     string `json:"skills"`
	Education  string `json:"education"`
	Experience string `json:"experience"`
	LinkedIn   string `json:"linkedin"`
	Website    string `json:"website"`

	ResumeRef      string `json:"resume_ref"`
	CoverLetterRef string `json:"cover_letter_ref"`
	PhotoRef       string `json:"photo_ref"`
	IntroVideoRef  string `json:"intro_video_ref"`

	UpdatedAt time.Time `json:"updated_at"`
}

type CandidateProfileRepository interface {
	Upsert(ctx context.Context, profile *CandidateProfile) error
	GetByEmail(ctx context.Context, email string) (*CandidateProfile, error)
}

// ProfileUsecase covers both profile collections. Gets return (nil, nil)
// when no profile exists for the email.
type ProfileUsecase interface {
	SaveCompanyProfile(ctx context.Context, input *CompanyProfile) (*CompanyProfile, error)
	GetCompanyProfile(ctx context.Context, email string) (*CompanyProfile, error)
	SaveCandidateProfile(ctx context.Context, input *CandidateProfile) (*CandidateProfile, error)
	GetCandidateProfile(ctx context.Context, email string) (*CandidateProfile, error)
}

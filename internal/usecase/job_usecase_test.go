package usecase_test

import (
	"context"
	"testing"

	"go-hiring-backend/internal/domain"
	"go-hiring-backend/internal/usecase"
	"go-hiring-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newJobUC(jobRepo *MockJobRepo, companyRepo *MockCompanyProfileRepo) domain.JobUsecase {
	return usecase.NewJobUsecase(jobRepo, companyRepo, validator.New())
}

func TestCreateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("freezes company name from the profile", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		companyRepo := new(MockCompanyProfileRepo)
		companyRepo.On("GetByEmail", ctx, "acme@example.com").
			Return(&domain.CompanyProfile{Email: "acme@example.com", CompanyName: "Acme Corp"}, nil)
		jobRepo.On("Create", ctx, mock.AnythingOfType("*domain.JobPosting")).Return(nil)

		uc := newJobUC(jobRepo, companyRepo)
		created, err := uc.CreateJob(ctx, &domain.JobPosting{
			Title:       "Backend Engineer",
			Email:       "acme@example.com",
			CompanyName: "Spoofed Name",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Acme Corp", created.CompanyName)
		assert.True(t, domain.IsRef(string(created.ID)))
		assert.NotNil(t, created.MustHave)
		assert.False(t, created.CreatedAt.IsZero())
	})

	t.Run("fails when no company profile exists", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		companyRepo := new(MockCompanyProfileRepo)
		companyRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, domain.ErrNotFound)

		uc := newJobUC(jobRepo, companyRepo)
		_, err := uc.CreateJob(ctx, &domain.JobPosting{
			Title: "Backend Engineer",
			Email: "nobody@example.com",
		})

		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
		assert.Contains(t, err.Error(), "no resolvable company")
		jobRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("fails when the profile has an empty company name", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		companyRepo := new(MockCompanyProfileRepo)
		companyRepo.On("GetByEmail", ctx, "unnamed@example.com").
			Return(&domain.CompanyProfile{Email: "unnamed@example.com"}, nil)

		uc := newJobUC(jobRepo, companyRepo)
		_, err := uc.CreateJob(ctx, &domain.JobPosting{
			Title: "Backend Engineer",
			Email: "unnamed@example.com",
		})

		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})
}

func TestUpdateJob(t *testing.T) {
	ctx := context.Background()
	jobID := domain.NewRef()

	t.Run("keeps identity and snapshot fields fixed", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		existing := &domain.JobPosting{
			ID:          jobID,
			Title:       "Old Title",
			Email:       "acme@example.com",
			CompanyName: "Acme Corp",
			MustHave:    []string{"Go"},
		}
		jobRepo.On("GetByID", ctx, jobID).Return(existing, nil)
		jobRepo.On("Update", ctx, mock.AnythingOfType("*domain.JobPosting")).Return(nil)

		uc := newJobUC(jobRepo, new(MockCompanyProfileRepo))
		updated, err := uc.UpdateJob(ctx, string(jobID), &domain.JobPosting{
			Title:       "New Title",
			Email:       "attacker@example.com",
			CompanyName: "Evil Corp",
		})

		assert.NoError(t, err)
		assert.Equal(t, "New Title", updated.Title)
		assert.Equal(t, "acme@example.com", updated.Email)
		assert.Equal(t, "Acme Corp", updated.CompanyName)
		// Omitted must-have list keeps the stored value.
		assert.Equal(t, []string{"Go"}, updated.MustHave)
	})

	t.Run("malformed id", func(t *testing.T) {
		uc := newJobUC(new(MockJobRepo), new(MockCompanyProfileRepo))
		_, err := uc.UpdateJob(ctx, "not-a-ref", &domain.JobPosting{Title: "x"})
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})

	t.Run("unknown id", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, jobID).Return(nil, domain.ErrNotFound)

		uc := newJobUC(jobRepo, new(MockCompanyProfileRepo))
		_, err := uc.UpdateJob(ctx, string(jobID), &domain.JobPosting{Title: "x"})
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}

func TestDeleteJob(t *testing.T) {
	ctx := context.Background()
	jobID := domain.NewRef()

	t.Run("second delete reports false without error", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("Delete", ctx, jobID).Return(false, nil)

		uc := newJobUC(jobRepo, new(MockCompanyProfileRepo))
		removed, err := uc.DeleteJob(ctx, string(jobID))

		assert.NoError(t, err)
		assert.False(t, removed)
	})
}

func TestGetJobByID(t *testing.T) {
	ctx := context.Background()
	jobID := domain.NewRef()

	t.Run("absent job is nil, not an error", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, jobID).Return(nil, domain.ErrNotFound)

		uc := newJobUC(jobRepo, new(MockCompanyProfileRepo))
		job, err := uc.GetJobByID(ctx, string(jobID))

		assert.NoError(t, err)
		assert.Nil(t, job)
	})
}

func TestParseJobID(t *testing.T) {
	ref := domain.NewRef()

	cases := []struct {
		name  string
		input string
		ok    bool
	}{
		{"bare ref", string(ref), true},
		{"wrapped legacy form", `ObjectID("` + string(ref) + `")`, true},
		{"wrapped without quotes", "ObjectID(" + string(ref) + ")", true},
		{"surrounding whitespace", "  " + string(ref) + "  ", true},
		{"too short", "abc123", false},
		{"non-hex", "zzzzzzzzzzzzzzzzzzzzzzzz", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := usecase.ParseJobID(tc.input)
			if tc.ok {
				assert.NoError(t, err)
				assert.Equal(t, ref, parsed)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

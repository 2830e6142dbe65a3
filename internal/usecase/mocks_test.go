package usecase_test

import (
	"context"

	"go-hiring-backend/internal/domain"
	"go-hiring-backend/pkg/logger"

	"github.com/stretchr/testify/mock"
)

func init() {
	logger.Init()
}

// Mock Repositories

type MockAccountRepo struct {
	mock.Mock
}

func (m *MockAccountRepo) Create(ctx context.Context, account *domain.Account) error {
	// Record a call-time snapshot so assertions see the account as it was
	// passed in, not as later mutated by the caller.
	snapshot := *account
	return m.Called(ctx, &snapshot).Error(0)
}

func (m *MockAccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepo) UpdatePassword(ctx context.Context, email, passwordHash string) (bool, error) {
	args := m.Called(ctx, email, passwordHash)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockCompanyProfileRepo struct {
	mock.Mock
}

func (m *MockCompanyProfileRepo) Upsert(ctx context.Context, profile *domain.CompanyProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockCompanyProfileRepo) GetByEmail(ctx context.Context, email string) (*domain.CompanyProfile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyProfile), args.Error(1)
}

type MockCandidateProfileRepo struct {
	mock.Mock
}

func (m *MockCandidateProfileRepo) Upsert(ctx context.Context, profile *domain.CandidateProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockCandidateProfileRepo) GetByEmail(ctx context.Context, email string) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.JobPosting) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) Update(ctx context.Context, job *domain.JobPosting) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) Delete(ctx context.Context, id domain.Ref) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id domain.Ref) (*domain.JobPosting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPosting), args.Error(1)
}

func (m *MockJobRepo) GetByIDs(ctx context.Context, ids []domain.Ref) ([]domain.JobPosting, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobPosting), args.Error(1)
}

func (m *MockJobRepo) GetAll(ctx context.Context) ([]domain.JobPosting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobPosting), args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) Exists(ctx context.Context, jobID domain.Ref, userEmail string) (bool, error) {
	args := m.Called(ctx, jobID, userEmail)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationRepo) GetByID(ctx context.Context, id domain.Ref) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) GetByJobID(ctx context.Context, jobID domain.Ref) ([]domain.Application, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) GetByUserEmail(ctx context.Context, userEmail string) ([]domain.Application, error) {
	args := m.Called(ctx, userEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id domain.Ref, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockSavedJobRepo struct {
	mock.Mock
}

func (m *MockSavedJobRepo) Create(ctx context.Context, saved *domain.SavedJob) error {
	return m.Called(ctx, saved).Error(0)
}

func (m *MockSavedJobRepo) Exists(ctx context.Context, userEmail string, jobID domain.Ref) (bool, error) {
	args := m.Called(ctx, userEmail, jobID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSavedJobRepo) Delete(ctx context.Context, userEmail string, jobID domain.Ref) (bool, error) {
	args := m.Called(ctx, userEmail, jobID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSavedJobRepo) GetByUserEmail(ctx context.Context, userEmail string) ([]domain.SavedJob, error) {
	args := m.Called(ctx, userEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavedJob), args.Error(1)
}

type MockStatsRepo struct {
	mock.Mock
}

func (m *MockStatsRepo) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

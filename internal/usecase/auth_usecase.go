package usecase

import (
	"context"
	"errors"
	"time"

	"go-hiring-backend/internal/domain"
	"go-hiring-backend/pkg/apperror"
	"go-hiring-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	accountRepo domain.AccountRepository
	validate    *validator.Validate
	jwtSecret   []byte
	tokenTTL    time.Duration
}

func NewAuthUsecase(accountRepo domain.AccountRepository, validate *validator.Validate, jwtSecret string, tokenTTL time.Duration) domain.AuthUsecase {
	return &authUsecase{
		accountRepo: accountRepo,
		validate:    validate,
		jwtSecret:   []byte(jwtSecret),
		tokenTTL:    tokenTTL,
	}
}

func (u *authUsecase) Signup(ctx context.Context, input domain.SignupInput) (*domain.Account, error) {
	// 1. Validate input shape
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.Validation(err.Error())
	}
	if input.Role == "" {
		input.Role = domain.RoleUser
	}

	// 2. Email is the unique account key (case-sensitive)
	existing, err := u.accountRepo.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("email already registered")
	}

	// 3. One-way salted hash; the plaintext is never stored
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	account := &domain.Account{
		ID:           domain.NewRef(),
		Email:        input.Email,
		PasswordHash: string(hash),
		Name:         input.Name,
		Role:         input.Role,
		CreatedAt:    time.Now(),
	}

	// 4. The unique index backstops the pre-check under concurrency
	if err := u.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("email already registered")
		}
		return nil, apperror.Internal(err)
	}

	account.PasswordHash = ""
	return account, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.Account, string, error) {
	account, err := u.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", apperror.NotFound("no account registered for this email")
		}
		return nil, "", apperror.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperror.Auth("invalid credentials")
	}

	token, err := u.signToken(account)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	account.PasswordHash = ""
	return account, token, nil
}

// ChangePassword deliberately returns a result object rather than an
// error: callers key UI behavior off Success, and that soft-failure
// contract has to survive the reimplementation.
func (u *authUsecase) ChangePassword(ctx context.Context, email, newPassword string) domain.OperationResult {
	if email == "" || newPassword == "" {
		return domain.OperationResult{Success: false, Message: "email and new password are required"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("hash password", "error", err)
		return domain.OperationResult{Success: false, Message: "could not update password"}
	}

	applied, err := u.accountRepo.UpdatePassword(ctx, email, string(hash))
	if err != nil {
		logger.Log.Error("update password", "email", email, "error", err)
		return domain.OperationResult{Success: false, Message: "could not update password"}
	}
	if !applied {
		return domain.OperationResult{Success: false, Message: "account not found"}
	}

	return domain.OperationResult{Success: true, Message: "password updated"}
}

func (u *authUsecase) signToken(account *domain.Account) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  account.Email,
		"role": account.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(u.tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.jwtSecret)
}

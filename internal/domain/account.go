package domain

import (
	"context"
	"time"
)

// Account roles. Two values only; anything richer is out of scope.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type Account struct {
	ID           Ref       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type SignupInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=admin user"`
}

// OperationResult is the soft-failure shape used by changePassword and
// saveJob. Callers key UI behavior off Success, so these two operations
// never surface their documented failure modes as errors.
type OperationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	GetByEmail(ctx context.Context, email string) (*Account, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type AuthUsecase interface {
	Signup(ctx context.Context, input SignupInput) (*Account, error)
	// Login returns the account and a signed token for the session.
	Login(ctx context.Context, email, password string) (*Account, string, error)
	ChangePassword(ctx context.Context, email, newPassword string) OperationResult
}

package postgres

import (
	"context"

	"go-hiring-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type accountRepo struct {
	db *pgxpool.Pool
}

func NewAccountRepository(db *pgxpool.Pool) domain.AccountRepository {
	return &accountRepo{db: db}
}

func (r *accountRepo) Create(ctx context.Context, account *domain.Account) error {
	query := `INSERT INTO accounts (id, email, password_hash, name, role, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		account.ID, account.Email, account.PasswordHash, account.Name, account.Role, account.CreatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *accountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `SELECT id, email, password_hash, name, role, created_at FROM accounts WHERE email = $1`
	var account domain.Account
	err := r.db.QueryRow(ctx, query, email).Scan(
		&account.ID, &account.Email, &account.PasswordHash, &account.Name, &account.Role, &account.CreatedAt,
	)
	if err != nil {
		return nil, translateScanErr(err)
	}
	return &account, nil
}

func (r *accountRepo) UpdatePassword(ctx context.Context, email, passwordHash string) (bool, error) {
	query := `UPDATE accounts SET password_hash = $2 WHERE email = $1`
	result, err := r.db.Exec(ctx, query, email, passwordHash)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

func (r *accountRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&total)
	return total, err
}

package postgres

import (
	"errors"

	"go-hiring-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// translateScanErr maps driver-level "no rows" onto the domain sentinel.
func translateScanErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

// isUniqueViolation reports whether err is a SQLSTATE 23505 unique
// constraint violation. The unique indexes are what actually enforce the
// at-most-one invariants; this is how repos report them upward.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

package domain

import "errors"

// Storage-level sentinels. Repositories translate driver errors into
// these; usecases translate them into apperror kinds.
var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("duplicate resource")
)

package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies a failure so callers can branch on cause without
// string-matching messages.
type Kind string

const (
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindNotFound   Kind = "not_found"
	KindAuth       Kind = "auth"
	KindUpload     Kind = "upload"
	KindInternal   Kind = "internal"
)

type AppError struct {
	Kind    Kind   `json:"kind"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(kind Kind, code int, message string, err error) *AppError {
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation flags missing or malformed required input.
func Validation(message string) *AppError {
	return New(KindValidation, http.StatusBadRequest, message, nil)
}

// Conflict flags a uniqueness violation.
func Conflict(message string) *AppError {
	return New(KindConflict, http.StatusConflict, message, nil)
}

// NotFound flags an absent referenced entity.
func NotFound(message string) *AppError {
	return New(KindNotFound, http.StatusNotFound, message, nil)
}

// Auth flags a credential mismatch.
func Auth(message string) *AppError {
	return New(KindAuth, http.StatusUnauthorized, message, nil)
}

// Upload flags an I/O failure during blob ingestion or retrieval.
func Upload(message string, err error) *AppError {
	return New(KindUpload, http.StatusBadGateway, message, err)
}

func Internal(err error) *AppError {
	return New(KindInternal, http.StatusInternalServerError, "Internal Server Error", err)
}

// KindOf reports the kind carried by err, or KindInternal for anything
// that is not an *AppError.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

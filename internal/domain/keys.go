package domain

type contextKey string

// Context keys set by the auth and request-id middleware.
const (
	KeyUserEmail contextKey = "UserEmail"
	KeyUserRole  contextKey = "UserRole"
	KeyRequestID contextKey = "RequestID"
)

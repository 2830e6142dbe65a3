package middleware

import (
	"errors"
	"net/http"

	"go-hiring-backend/internal/delivery/http/response"
	"go-hiring-backend/pkg/apperror"
	"go-hiring-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler translates errors appended to the context into the JSON
// envelope. AppError kinds surface with their own status and kind so the
// frontend can branch on cause; everything else becomes an opaque 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, gin.H{"kind": appErr.Kind})
			} else {
				// Never expose internal error details to clients.
				logger.Log.Error("internal server error", "error", err)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}

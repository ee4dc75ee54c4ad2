package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justdesigndev/citys-residences-contact-form/internal/delivery/http/response"
	"github.com/justdesigndev/citys-residences-contact-form/pkg/apperror"
	"github.com/justdesigndev/citys-residences-contact-form/pkg/logger"
)

// ErrorHandler drains gin's error list after the handler chain and renders
// the last error through the standard envelope. Unknown errors are logged
// server-side and surfaced as a generic message only.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				logger.Log.Error("unhandled request error", "error", err, "path", c.FullPath())
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}

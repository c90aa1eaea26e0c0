package middleware

import (
	"errors"
	"net/http"

	"go-cv-backend/internal/delivery/http/response"
	"go-cv-backend/pkg/apperror"
	"go-cv-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, nil)
				return
			}
			// Log the real error server-side; the client only gets a
			// generic message.
			logger.Log.Error("Unhandled request error",
				"method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
			response.Error(c, http.StatusInternalServerError,
				"An unexpected error occurred. Please try again later.", nil)
		}
	}
}

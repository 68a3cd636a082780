package middleware

import (
	"errors"
	"net/http"

	"go-jobmarket-backend/internal/delivery/http/response"
	"go-jobmarket-backend/pkg/apperror"
	"go-jobmarket-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors appended to the context. Validation
// failures carry their ordered violation list and become a 400
// {errors: [...]} body; everything else is {error: message}. Internal
// detail is logged, never sent to the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Error("request failed",
					"path", c.FullPath(),
					"status", appErr.Code,
					"error", appErr.Err,
				)
			}
			if appErr.Details != nil {
				c.JSON(appErr.Code, gin.H{"errors": appErr.Details})
				return
			}
			response.Err(c, appErr.Code, appErr.Message)
			return
		}

		logger.Log.Error("unhandled error", "path", c.FullPath(), "error", err)
		response.Err(c, http.StatusInternalServerError, "Error interno del servidor")
	}
}

// Package api mounts the HTTP surface under /api and keeps handlers
// thin: bind, call the usecase, render the wire shape.
package api

import (
	"errors"
	"net/http"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// callerID returns the authenticated account id set by the auth
// middleware. Empty on public routes.
func callerID(c *gin.Context) string {
	return c.GetString(string(domain.KeyUserID))
}

// fail forwards business errors as-is and wraps anything else in a
// route-specific 500 message so internals never leak.
func fail(c *gin.Context, err error, message string) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.Error(appErr)
		return
	}
	c.Error(apperror.New(http.StatusInternalServerError, message, err))
}

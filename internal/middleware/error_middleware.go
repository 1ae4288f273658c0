package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anvaya-club/backend/internal/app/models/dto"
	"github.com/anvaya-club/backend/internal/pkg/apperrors"
	"github.com/anvaya-club/backend/internal/pkg/logger"
)

// HandleAPIError maps an error to the uniform JSON error body and aborts the
// request. Domain errors carry their own status and code; anything else is
// logged fully and surfaced as an opaque 500.
func HandleAPIError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Kind == apperrors.KindAuthentication {
			c.Header("WWW-Authenticate", "Bearer")
		}

		event := logger.Warn()
		if appErr.Status() >= http.StatusInternalServerError {
			event = logger.Error()
		}
		event.Err(err).
			Str("code", appErr.Code()).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")

		c.AbortWithStatusJSON(appErr.Status(), dto.ErrorResponse{
			Detail:    appErr.Detail,
			ErrorCode: appErr.Code(),
			Details:   appErr.Details,
		})
		return
	}

	logger.Error().Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("Unhandled error")

	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
		Detail:    "An unexpected error occurred",
		ErrorCode: "INTERNAL_SERVER_ERROR",
	})
}

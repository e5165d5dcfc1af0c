package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursehub/catalog/internal/app/models/dto"
	"github.com/coursehub/catalog/internal/pkg/apperrors"
	"github.com/coursehub/catalog/internal/pkg/logger"
)

// StatusFor maps an error kind to its HTTP status
func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrUploadFailed), errors.Is(err, apperrors.ErrAuthFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// HandleAPIError writes {"error": "..."} with the status matching the error kind.
// Client errors carry their message; server side failures are logged in full and
// answered with the error kind only.
func HandleAPIError(c *gin.Context, err error) {
	status := StatusFor(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		logger.Ctx(c.Request.Context()).Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", status).
			Msg("Request failed")
		message = publicMessage(err)
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message))
}

func publicMessage(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrAuthFailed):
		return apperrors.ErrAuthFailed.Error()
	case errors.Is(err, apperrors.ErrUploadFailed):
		return "failed to upload files to object storage"
	case errors.Is(err, apperrors.ErrStorage):
		var custom *apperrors.CustomError
		if errors.As(err, &custom) {
			if msg, ok := custom.Details[apperrors.PublicMessageKey].(string); ok {
				return msg
			}
		}
		return apperrors.ErrStorage.Error()
	default:
		return "internal server error"
	}
}

package handler

import (
	"errors"
	"net/http"

	"volcano-insurance-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid zip code"`
}

// statusFor maps a service error to an HTTP status and a message that is safe
// to show the caller.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrAddressResolutionFailed):
		return http.StatusUnprocessableEntity, resolutionReason(err)
	case errors.Is(err, service.ErrQuoteNotFound):
		return http.StatusNotFound, service.ErrQuoteNotFound.Error()
	case errors.Is(err, service.ErrPolicyNotFound):
		return http.StatusNotFound, service.ErrPolicyNotFound.Error()
	case errors.Is(err, service.ErrQuoteAlreadyCheckedOut):
		return http.StatusConflict, service.ErrQuoteAlreadyCheckedOut.Error()
	case errors.Is(err, service.ErrUserExists):
		return http.StatusConflict, service.ErrUserExists.Error()
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, service.ErrInvalidCredentials.Error()
	case errors.Is(err, service.ErrInvalidUser):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func resolutionReason(err error) string {
	for _, reason := range []error{service.ErrInvalidZipCode, service.ErrInvalidState, service.ErrAddressTaggingFailed} {
		if errors.Is(err, reason) {
			return reason.Error()
		}
	}
	return service.ErrAddressResolutionFailed.Error()
}

func writeError(c *gin.Context, err error) {
	status, msg := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.Ctx(c.Request.Context()).Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	}
	_ = c.Error(err)
	c.JSON(status, ErrorResponse{Error: msg})
}

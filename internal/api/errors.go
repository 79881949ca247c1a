package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/ankigen/internal/api/shared"
	"github.com/phrazzld/ankigen/internal/domain"
	"github.com/phrazzld/ankigen/internal/export"
	"github.com/phrazzld/ankigen/internal/generation"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad request errors: validation failed before anything else ran
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Credential rejected by the endpoint, or missing entirely
	case errors.Is(err, generation.ErrAuthentication):
		return http.StatusUnauthorized

	// Endpoint throttling passes through as-is
	case errors.Is(err, generation.ErrRateLimited):
		return http.StatusTooManyRequests

	// Safety filters refused the subject matter
	case errors.Is(err, generation.ErrContentBlocked):
		return http.StatusUnprocessableEntity

	// Upstream failures: the call or its response was unusable
	case errors.Is(err, generation.ErrTransport),
		errors.Is(err, generation.ErrMalformedResponse):
		return http.StatusBadGateway

	// Export I/O failures
	case errors.Is(err, export.ErrWriteFailed):
		return http.StatusInternalServerError

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrEmptySubject):
		return "Subject is required"

	case errors.Is(err, domain.ErrInvalidTopicCount):
		return "Topic count must be at least 1"

	case errors.Is(err, domain.ErrInvalidCardsPerTopic):
		return "Cards per topic must be at least 1"

	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrValidation):
		return "Invalid request parameters"

	case errors.Is(err, generation.ErrAuthentication):
		return "API key was rejected or missing"

	case errors.Is(err, generation.ErrRateLimited):
		return "Generation endpoint is throttling requests, try again later"

	case errors.Is(err, generation.ErrContentBlocked):
		return "The model declined to generate cards for this subject"

	case errors.Is(err, generation.ErrMalformedResponse):
		return "The model response could not be parsed, try again"

	case errors.Is(err, generation.ErrTransport):
		return "Could not reach the generation endpoint"

	case errors.Is(err, export.ErrWriteFailed):
		return "Failed to write the export"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps err onto a status code and safe message and writes the
// error response, logging the redacted detail.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
}

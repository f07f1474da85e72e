// Package httputil converts domain errors into the uniform JSON error envelope.
//
// Every failure leaving the service is a JSON object with a single "error" key
// and a status code taken from the domain error kind. Responses are never HTML
// and never a 200 with an embedded error.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/edulabs/classauth/internal/errors"
)

// Client-facing error messages. Expired and tampered tokens share one message
// so responses never reveal why a token was rejected; only the missing-token
// case is worded differently.
const (
	MsgMissingToken       = "Authentication token is missing"
	MsgInvalidToken       = "Invalid or expired authentication token"
	MsgInvalidCredentials = "Invalid username or password"
	MsgForbidden          = "You do not have permission to perform this action"
	MsgNotFound           = "The requested resource was not found"
	MsgUnavailable        = "A required service is temporarily unavailable, please retry"
	MsgInternal           = "An internal error occurred"
)

// ErrorResponse is the uniform error envelope returned on every failure path.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HandleError maps domain errors to HTTP status codes and writes the JSON envelope.
func HandleError(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	var statusCode int
	var message string

	switch {
	case apperrors.Is(err, apperrors.ErrMissingToken):
		statusCode = http.StatusUnauthorized
		message = MsgMissingToken

	case apperrors.Is(err, apperrors.ErrInvalidToken):
		statusCode = http.StatusUnauthorized
		message = MsgInvalidToken

	case apperrors.Is(err, apperrors.ErrInvalidCredentials):
		statusCode = http.StatusUnauthorized
		message = MsgInvalidCredentials

	case apperrors.Is(err, apperrors.ErrInvalidInput):
		statusCode = http.StatusUnprocessableEntity
		message = err.Error()

	case apperrors.Is(err, apperrors.ErrForbidden):
		statusCode = http.StatusForbidden
		message = MsgForbidden

	case apperrors.Is(err, apperrors.ErrNotFound):
		statusCode = http.StatusNotFound
		message = MsgNotFound

	case apperrors.Is(err, apperrors.ErrUnavailable):
		statusCode = http.StatusServiceUnavailable
		message = MsgUnavailable

	default:
		// For unknown/internal errors, don't expose details to the client
		statusCode = http.StatusInternalServerError
		message = MsgInternal
	}

	// Log the full error details (including wrapped errors)
	if logger != nil {
		logger.Error("request failed",
			slog.Int("status_code", statusCode),
			slog.Any("error", err),
		)
	}

	c.JSON(statusCode, ErrorResponse{Error: message})
}

// HandleValidationError writes a 422 Unprocessable Entity response for
// validation failures and malformed request bodies.
func HandleValidationError(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("validation failed", slog.Any("error", err))
	}

	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
}

// NoRouteHandler returns the handler for unmatched routes so framework-level
// 404s still use the JSON envelope instead of HTML.
func NoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: MsgNotFound})
	}
}

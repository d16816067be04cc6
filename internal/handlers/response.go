package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/GunarsK-portfolio/recipe-service/internal/service"
	"github.com/gin-gonic/gin"
)

// Client-facing error messages.
const (
	MsgUnauthorized        = "Unauthorized"
	MsgInvalidCredentials  = "Invalid username or password"
	MsgDuplicateUsername   = "Username already exists"
	MsgValidationErrors    = "Validation errors"
	MsgRecipeNotCreated    = "Recipe could not be created"
	MsgInternalServerError = "Internal server error"
)

// ErrorResponse is the body of authentication failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorsResponse is the body of validation failures.
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// RespondError writes {"error": message}.
func RespondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}

// RespondErrors writes {"errors": [messages...]}.
func RespondErrors(c *gin.Context, status int, messages ...string) {
	c.AbortWithStatusJSON(status, ErrorsResponse{Errors: messages})
}

// respondServiceError maps the service error taxonomy onto HTTP responses.
// persistenceMessage is the client message for storage failures of the
// calling endpoint.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, persistenceMessage string) {
	var validationErr *service.ValidationError

	switch {
	case errors.As(err, &validationErr):
		RespondErrors(c, http.StatusUnprocessableEntity, validationErr.Messages...)
	case errors.Is(err, service.ErrDuplicateUsername):
		RespondErrors(c, http.StatusUnprocessableEntity, MsgDuplicateUsername)
	case errors.Is(err, service.ErrPersistence):
		logger.WarnContext(c.Request.Context(), "write rejected by storage", "path", c.FullPath(), "error", err)
		RespondErrors(c, http.StatusUnprocessableEntity, persistenceMessage)
	case errors.Is(err, service.ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, MsgInvalidCredentials)
	case errors.Is(err, service.ErrUnauthenticated):
		RespondError(c, http.StatusUnauthorized, MsgUnauthorized)
	default:
		logger.ErrorContext(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
		RespondError(c, http.StatusInternalServerError, MsgInternalServerError)
	}
}

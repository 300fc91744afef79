package v1

import (
	"errors"
	"net/http"

	"github.com/centavo/backend/internal/auth"
	"github.com/centavo/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no category matching your query"`
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, auth.ErrUnauthorized) || errors.Is(err, auth.ErrAuthFailed) {
		return http.StatusUnauthorized
	}

	// Conflicts: duplicate names and deleting referenced resources
	if errors.Is(err, models.ErrUserEmailNotUnique) ||
		errors.Is(err, models.ErrCategoryNameNotUnique) ||
		errors.Is(err, models.ErrCategoryReferenced) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

var (
	errMonthNotSetInQuery = errors.New("the month query parameter must be set")
	errEmailNotSet        = errors.New("the email field must be set")
	errPasswordNotSet     = errors.New("the password field must be set")
)

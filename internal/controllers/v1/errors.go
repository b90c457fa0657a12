package v1

import (
	"errors"
	"net/http"

	"github.com/fincontrol/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"name: must not be empty"`
}

// status returns the appropriate status for an error.
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")

// Package server provides the HTTP REST API for the resume builder.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-builder/internal/photo"
	"github.com/jonathan/resume-builder/internal/resume"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUnknownCategory indicates a section category outside the closed set
type ErrUnknownCategory struct {
	Category string
}

func (e *ErrUnknownCategory) Error() string {
	return fmt.Sprintf("unknown section category: %s", e.Category)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		categoryErr   *ErrUnknownCategory
		loadErr       *resume.LoadError
		rejectedErr   *photo.RejectedError
		tooLargeErr   *http.MaxBytesError
	)
	switch {
	case errors.As(err, &tooLargeErr):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &rejectedErr):
		switch rejectedErr.Reason {
		case photo.ReasonTooLarge:
			return http.StatusRequestEntityTooLarge
		case photo.ReasonUnsupportedType:
			return http.StatusUnsupportedMediaType
		default:
			return http.StatusBadRequest
		}
	case errors.As(err, &validationErr), errors.As(err, &loadErr):
		return http.StatusBadRequest
	case errors.As(err, &categoryErr):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Package server provides the HTTP REST API for resume analysis, ATS
// scoring, job matching and cover-letter generation.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/careercraft/internal/schemas"
	"github.com/jonathan/careercraft/internal/types"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		unsupported *types.ErrUnsupportedFormat
		missing     *types.ErrMissingField
		unavailable *types.ErrCollaboratorUnavailable
		validation  *schemas.ValidationError
		fieldErrors validator.ValidationErrors
	)

	switch {
	case errors.As(err, &unsupported):
		return http.StatusUnprocessableEntity
	case errors.As(err, &missing):
		return http.StatusBadRequest
	case errors.As(err, &validation), errors.As(err, &fieldErrors):
		return http.StatusBadRequest
	case errors.As(err, &unavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// extractValidationErrors extracts a readable message from validator errors.
func extractValidationErrors(err error) string {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		ve := fieldErrors[0]
		return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
	}
	return "validation error: invalid request"
}

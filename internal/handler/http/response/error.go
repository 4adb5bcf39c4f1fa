package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/device-benefit-calculator/internal/domain/comparison"
	"github.com/cmlabs-hris/device-benefit-calculator/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, comparison.ErrInvalidRequestBody):
		BadRequest(w, "Invalid request body", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

package handlers

import (
	"fmt"

	"storefront/internal/models"

	"github.com/go-playground/validator/v10"
)

// toValidationError maps a validator error to the client-facing payload,
// pointing at the first offending field.
func toValidationError(err error) models.APIError {
	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		e := validationErrors[0]
		return models.NewFieldAPIError(
			fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag()), e.Field())
	}
	return models.NewAPIError("Validation failed")
}

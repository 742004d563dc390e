package usecase

import (
	"clipstream/pkg/apperrors"

	"github.com/google/uuid"
)

// validateID rejects malformed ids before any store access.
func validateID(id, what string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.Invalid("Invalid " + what + " ID")
	}
	return nil
}

package categories

import "errors"

var (
	// ErrCategoryNotFound indicates the requested category doesn't exist
	ErrCategoryNotFound = errors.New("category not found")

	// ErrIDRequired indicates a seed entry is missing its identifier
	ErrIDRequired = errors.New("category id is required")

	// ErrNameRequired indicates a seed entry is missing its display name
	ErrNameRequired = errors.New("category name is required")

	// ErrDuplicateSeedID indicates the seed set names the same id twice
	ErrDuplicateSeedID = errors.New("duplicate category id in seed")
)

// IsValidationError checks if an error is a seed validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrIDRequired) ||
		errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrDuplicateSeedID)
}

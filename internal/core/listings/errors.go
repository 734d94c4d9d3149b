package listings

import "errors"

var (
	// ErrCategoryNotFound indicates the parent category doesn't exist
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryRequired indicates the category id is missing from the request
	ErrCategoryRequired = errors.New("category id is required")

	// ErrTitleRequired indicates the listing title is empty
	ErrTitleRequired = errors.New("listing title is required")

	// ErrNegativePrice indicates a supplied price is below zero
	ErrNegativePrice = errors.New("listing price cannot be negative")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCategoryNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrCategoryRequired) ||
		errors.Is(err, ErrTitleRequired) ||
		errors.Is(err, ErrNegativePrice)
}

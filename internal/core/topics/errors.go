package topics

import "errors"

var (
	// ErrCategoryNotFound indicates the parent category doesn't exist
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryRequired indicates the category id is missing from the request
	ErrCategoryRequired = errors.New("category id is required")

	// ErrTitleRequired indicates the topic title is empty
	ErrTitleRequired = errors.New("topic title is required")

	// ErrContentRequired indicates the topic content is empty
	ErrContentRequired = errors.New("topic content is required")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCategoryNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrCategoryRequired) ||
		errors.Is(err, ErrTitleRequired) ||
		errors.Is(err, ErrContentRequired)
}

package replies

import "errors"

var (
	// ErrTopicNotFound indicates the parent topic doesn't exist
	ErrTopicNotFound = errors.New("topic not found")

	// ErrTopicRequired indicates the topic id is missing from the request
	ErrTopicRequired = errors.New("topic id is required")

	// ErrContentRequired indicates the reply content is empty
	ErrContentRequired = errors.New("reply content is required")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTopicNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrTopicRequired) ||
		errors.Is(err, ErrContentRequired)
}

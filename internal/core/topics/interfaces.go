package topics

import "context"

// Repository defines the data access interface for topics
type Repository interface {
	// Create allocates an identifier, assigns CreatedAt, stores the topic,
	// and appends it to the category's child index as one atomic step. The
	// allocated id and timestamp are set on the passed topic.
	// Returns ErrCategoryNotFound if the category does not exist.
	Create(ctx context.Context, topic *Topic) error

	// ListByCategory returns the category's topics in insertion order.
	// An unknown category yields an empty slice, never an error.
	ListByCategory(ctx context.Context, categoryID string) ([]*Topic, error)
}

// Service defines the topic business logic interface
type Service interface {
	// CreateTopic validates the request and stores a new topic authored by
	// the caller identity in ctx. Requires an authenticated caller.
	CreateTopic(ctx context.Context, req CreateTopicRequest) (*CreateTopicResponse, error)

	// ListByCategory returns a category's topics in insertion order
	ListByCategory(ctx context.Context, categoryID string) ([]*Topic, error)
}

package replies

import "context"

// Repository defines the data access interface for replies
type Repository interface {
	// Create allocates an identifier, assigns CreatedAt, stores the reply,
	// and appends it to the topic's child index as one atomic step. The
	// allocated id and timestamp are set on the passed reply.
	// Returns ErrTopicNotFound if the topic does not exist.
	Create(ctx context.Context, reply *Reply) error

	// ListByTopic returns the topic's replies in insertion order.
	// An unknown topic yields an empty slice, never an error.
	ListByTopic(ctx context.Context, topicID string) ([]*Reply, error)
}

// Service defines the reply business logic interface
type Service interface {
	// CreateReply validates the request and stores a new reply authored by
	// the caller identity in ctx. Requires an authenticated caller.
	CreateReply(ctx context.Context, req CreateReplyRequest) (*CreateReplyResponse, error)

	// ListByTopic returns a topic's replies in insertion order
	ListByTopic(ctx context.Context, topicID string) ([]*Reply, error)
}

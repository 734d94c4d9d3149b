package listings

import "context"

// Repository defines the data access interface for listings
type Repository interface {
	// Create allocates an identifier, stores the listing, and appends it to
	// the category's child index as one atomic step. The allocated id is set
	// on the passed listing.
	// Returns ErrCategoryNotFound if the category does not exist.
	Create(ctx context.Context, listing *Listing) error

	// ListByCategory returns the category's listings in insertion order.
	// An unknown category yields an empty slice, never an error: on the read
	// side a missing parent simply has no children.
	ListByCategory(ctx context.Context, categoryID string) ([]*Listing, error)
}

// Service defines the listing business logic interface
type Service interface {
	// CreateListing validates the request and stores a new listing.
	// Open to any caller; listings carry no authorship.
	CreateListing(ctx context.Context, req CreateListingRequest) (*CreateListingResponse, error)

	// ListByCategory returns a category's listings in insertion order
	ListByCategory(ctx context.Context, categoryID string) ([]*Listing, error)
}

package categories

import "context"

// Repository defines the data access interface for categories
type Repository interface {
	// Insert stores a category. Idempotent: inserting an id that already
	// exists is a no-op, so seeding on every startup never duplicates.
	// Only the seeding path calls this; it is never exposed to callers.
	Insert(ctx context.Context, category *Category) error

	// List returns all categories in insertion order
	List(ctx context.Context) ([]*Category, error)
}

// Service defines the category business logic interface
type Service interface {
	// Seed validates and inserts the configured category set.
	// Called once at service initialization.
	Seed(ctx context.Context, seed []Category) error

	// ListCategories returns all categories in insertion order
	ListCategories(ctx context.Context) ([]*Category, error)
}

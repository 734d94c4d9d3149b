package categories

import (
	"context"
	"fmt"
)

type categoryService struct {
	repo Repository
}

// NewCategoryService creates a new category service
func NewCategoryService(repo Repository) Service {
	return &categoryService{repo: repo}
}

// Seed validates the configured categories and inserts them.
// Inserts are idempotent, so re-running at every startup is safe.
func (s *categoryService) Seed(ctx context.Context, seed []Category) error {
	seen := make(map[string]bool, len(seed))
	for _, c := range seed {
		if c.ID == "" {
			return fmt.Errorf("seed category %q: %w", c.Name, ErrIDRequired)
		}
		if c.Name == "" {
			return fmt.Errorf("seed category %q: %w", c.ID, ErrNameRequired)
		}
		if seen[c.ID] {
			return fmt.Errorf("seed category %q: %w", c.ID, ErrDuplicateSeedID)
		}
		seen[c.ID] = true
	}

	for _, c := range seed {
		c := c
		if err := s.repo.Insert(ctx, &c); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", c.ID, err)
		}
	}

	return nil
}

// ListCategories returns all categories in insertion order
func (s *categoryService) ListCategories(ctx context.Context) ([]*Category, error) {
	return s.repo.List(ctx)
}

package listings

import (
	"context"
	"strings"
)

type listingService struct {
	repo Repository
}

// NewListingService creates a new listing service
func NewListingService(repo Repository) Service {
	return &listingService{repo: repo}
}

// CreateListing creates a new listing under a category.
// Flow:
// 1. Validate input (before touching the store)
// 2. Delegate to the repository, which allocates the id and appends to the
//    category's index atomically
// 3. Return the new identifier
func (s *listingService) CreateListing(ctx context.Context, req CreateListingRequest) (*CreateListingResponse, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	listing := &Listing{
		CategoryID:  req.CategoryID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Price:       req.Price,
	}

	if err := s.repo.Create(ctx, listing); err != nil {
		return nil, err
	}

	return &CreateListingResponse{ID: listing.ID}, nil
}

// ListByCategory returns a category's listings in insertion order
func (s *listingService) ListByCategory(ctx context.Context, categoryID string) ([]*Listing, error) {
	return s.repo.ListByCategory(ctx, categoryID)
}

func validateCreateRequest(req CreateListingRequest) error {
	if req.CategoryID == "" {
		return ErrCategoryRequired
	}
	if strings.TrimSpace(req.Title) == "" {
		return ErrTitleRequired
	}
	if req.Price != nil && *req.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

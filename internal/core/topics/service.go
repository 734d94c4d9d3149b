package topics

import (
	"context"
	"strings"

	"Agora/internal/core/identity"
)

type topicService struct {
	repo Repository
	gate *identity.Gate
}

// NewTopicService creates a new topic service
func NewTopicService(repo Repository, gate *identity.Gate) Service {
	return &topicService{repo: repo, gate: gate}
}

// CreateTopic creates a new topic in a category.
// Flow:
// 1. Consult the authorization gate with the caller identity from ctx; on
//    rejection return immediately without touching the store
// 2. Validate input
// 3. Delegate to the repository, which allocates the id, assigns CreatedAt,
//    and appends to the category's index atomically
// 4. Return the new identifier
func (s *topicService) CreateTopic(ctx context.Context, req CreateTopicRequest) (*CreateTopicResponse, error) {
	caller := identity.FromContext(ctx)
	if err := s.gate.Authorize(caller); err != nil {
		return nil, err
	}

	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	topic := &Topic{
		CategoryID: req.CategoryID,
		Title:      strings.TrimSpace(req.Title),
		Content:    req.Content,
		Author:     caller.String(),
	}

	if err := s.repo.Create(ctx, topic); err != nil {
		return nil, err
	}

	return &CreateTopicResponse{ID: topic.ID}, nil
}

// ListByCategory returns a category's topics in insertion order
func (s *topicService) ListByCategory(ctx context.Context, categoryID string) ([]*Topic, error) {
	return s.repo.ListByCategory(ctx, categoryID)
}

func validateCreateRequest(req CreateTopicRequest) error {
	if req.CategoryID == "" {
		return ErrCategoryRequired
	}
	if strings.TrimSpace(req.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(req.Content) == "" {
		return ErrContentRequired
	}
	return nil
}

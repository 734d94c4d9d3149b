package replies

import (
	"context"
	"strings"

	"Agora/internal/core/identity"
)

type replyService struct {
	repo Repository
	gate *identity.Gate
}

// NewReplyService creates a new reply service
func NewReplyService(repo Repository, gate *identity.Gate) Service {
	return &replyService{repo: repo, gate: gate}
}

// CreateReply creates a new reply within a topic.
// Same flow as topic creation: gate, validate, delegate, return identifier.
func (s *replyService) CreateReply(ctx context.Context, req CreateReplyRequest) (*CreateReplyResponse, error) {
	caller := identity.FromContext(ctx)
	if err := s.gate.Authorize(caller); err != nil {
		return nil, err
	}

	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	reply := &Reply{
		TopicID: req.TopicID,
		Content: req.Content,
		Author:  caller.String(),
	}

	if err := s.repo.Create(ctx, reply); err != nil {
		return nil, err
	}

	return &CreateReplyResponse{ID: reply.ID}, nil
}

// ListByTopic returns a topic's replies in insertion order
func (s *replyService) ListByTopic(ctx context.Context, topicID string) ([]*Reply, error) {
	return s.repo.ListByTopic(ctx, topicID)
}

func validateCreateRequest(req CreateReplyRequest) error {
	if req.TopicID == "" {
		return ErrTopicRequired
	}
	if strings.TrimSpace(req.Content) == "" {
		return ErrContentRequired
	}
	return nil
}

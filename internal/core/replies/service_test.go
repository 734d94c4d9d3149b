package replies

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Agora/internal/core/identity"
)

// mockReplyRepo is a mock implementation of the reply Repository interface
type mockReplyRepo struct {
	topics  map[string]bool
	byTopic map[string][]*Reply
	nextID  int
}

func newMockReplyRepo(topicIDs ...string) *mockReplyRepo {
	m := &mockReplyRepo{
		topics:  make(map[string]bool),
		byTopic: make(map[string][]*Reply),
	}
	for _, id := range topicIDs {
		m.topics[id] = true
	}
	return m
}

func (m *mockReplyRepo) Create(ctx context.Context, reply *Reply) error {
	if !m.topics[reply.TopicID] {
		return ErrTopicNotFound
	}
	m.nextID++
	reply.ID = "rpl_" + strconv.Itoa(m.nextID)
	reply.CreatedAt = time.Now().UTC()
	m.byTopic[reply.TopicID] = append(m.byTopic[reply.TopicID], reply)
	return nil
}

func (m *mockReplyRepo) ListByTopic(ctx context.Context, topicID string) ([]*Reply, error) {
	return m.byTopic[topicID], nil
}

func authedCtx(principal string) context.Context {
	return identity.WithPrincipal(context.Background(), identity.Principal(principal))
}

func TestCreateReply_StampsAuthor(t *testing.T) {
	repo := newMockReplyRepo("t1")
	service := NewReplyService(repo, identity.NewGate())

	resp, err := service.CreateReply(authedCtx("did:plc:bob"), CreateReplyRequest{
		TopicID: "t1",
		Content: "Nice",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)

	got, err := service.ListByTopic(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "did:plc:bob", got[0].Author)
	assert.Equal(t, "Nice", got[0].Content)
}

func TestCreateReply_CreationOrder(t *testing.T) {
	service := NewReplyService(newMockReplyRepo("t1"), identity.NewGate())
	ctx := authedCtx("did:plc:alice")

	for _, content := range []string{"first", "second", "third"} {
		_, err := service.CreateReply(ctx, CreateReplyRequest{TopicID: "t1", Content: content})
		require.NoError(t, err)
	}

	got, err := service.ListByTopic(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].Content)
	assert.Equal(t, "second", got[1].Content)
	assert.Equal(t, "third", got[2].Content)
}

func TestCreateReply_AnonymousRejected(t *testing.T) {
	repo := newMockReplyRepo("t1")
	service := NewReplyService(repo, identity.NewGate())

	_, err := service.CreateReply(context.Background(), CreateReplyRequest{
		TopicID: "t1",
		Content: "Nice",
	})
	assert.ErrorIs(t, err, identity.ErrUnauthorized)
	assert.Empty(t, repo.byTopic["t1"])
}

func TestCreateReply_Validation(t *testing.T) {
	service := NewReplyService(newMockReplyRepo("t1"), identity.NewGate())
	ctx := authedCtx("did:plc:alice")

	_, err := service.CreateReply(ctx, CreateReplyRequest{Content: "Nice"})
	assert.ErrorIs(t, err, ErrTopicRequired)

	_, err = service.CreateReply(ctx, CreateReplyRequest{TopicID: "t1", Content: " "})
	assert.ErrorIs(t, err, ErrContentRequired)
	assert.True(t, IsValidationError(err))
}

func TestCreateReply_UnknownTopic(t *testing.T) {
	service := NewReplyService(newMockReplyRepo("t1"), identity.NewGate())

	_, err := service.CreateReply(authedCtx("did:plc:alice"), CreateReplyRequest{
		TopicID: "nope",
		Content: "Nice",
	})
	assert.ErrorIs(t, err, ErrTopicNotFound)
	assert.True(t, IsNotFound(err))
}

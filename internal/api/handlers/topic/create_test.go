package topic

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"Agora/internal/core/identity"
	"Agora/internal/core/topics"
)

// mockTopicService is a mock implementation of topics.Service
type mockTopicService struct {
	createFunc func(ctx context.Context, req topics.CreateTopicRequest) (*topics.CreateTopicResponse, error)
}

func (m *mockTopicService) CreateTopic(ctx context.Context, req topics.CreateTopicRequest) (*topics.CreateTopicResponse, error) {
	return m.createFunc(ctx, req)
}

func (m *mockTopicService) ListByCategory(ctx context.Context, categoryID string) ([]*topics.Topic, error) {
	return nil, nil
}

func TestHandleCreate_Success(t *testing.T) {
	service := &mockTopicService{
		createFunc: func(ctx context.Context, req topics.CreateTopicRequest) (*topics.CreateTopicResponse, error) {
			assert.Equal(t, "c1", req.CategoryID)
			assert.Equal(t, "Hi", req.Title)
			return &topics.CreateTopicResponse{ID: "top_1"}, nil
		},
	}
	handler := NewCreateHandler(service)

	req := httptest.NewRequest(http.MethodPost, "/api/topics",
		strings.NewReader(`{"categoryId":"c1","title":"Hi","content":"Hello"}`))
	rec := httptest.NewRecorder()

	handler.HandleCreate(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"top_1"}`, rec.Body.String())
}

func TestHandleCreate_Unauthorized(t *testing.T) {
	service := &mockTopicService{
		createFunc: func(ctx context.Context, req topics.CreateTopicRequest) (*topics.CreateTopicResponse, error) {
			return nil, identity.ErrUnauthorized
		},
	}
	handler := NewCreateHandler(service)

	req := httptest.NewRequest(http.MethodPost, "/api/topics",
		strings.NewReader(`{"categoryId":"c1","title":"Hi","content":"Hello"}`))
	rec := httptest.NewRecorder()

	handler.HandleCreate(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unauthorized")
}

func TestHandleCreate_NotFound(t *testing.T) {
	service := &mockTopicService{
		createFunc: func(ctx context.Context, req topics.CreateTopicRequest) (*topics.CreateTopicResponse, error) {
			return nil, topics.ErrCategoryNotFound
		},
	}
	handler := NewCreateHandler(service)

	req := httptest.NewRequest(http.MethodPost, "/api/topics",
		strings.NewReader(`{"categoryId":"ghost","title":"Hi","content":"Hello"}`))
	rec := httptest.NewRecorder()

	handler.HandleCreate(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NotFound")
}

func TestHandleCreate_ValidationError(t *testing.T) {
	service := &mockTopicService{
		createFunc: func(ctx context.Context, req topics.CreateTopicRequest) (*topics.CreateTopicResponse, error) {
			return nil, topics.ErrTitleRequired
		},
	}
	handler := NewCreateHandler(service)

	req := httptest.NewRequest(http.MethodPost, "/api/topics",
		strings.NewReader(`{"categoryId":"c1","title":"","content":"Hello"}`))
	rec := httptest.NewRecorder()

	handler.HandleCreate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "InvalidInput")
}

func TestHandleCreate_MalformedBody(t *testing.T) {
	handler := NewCreateHandler(&mockTopicService{})

	req := httptest.NewRequest(http.MethodPost, "/api/topics", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()

	handler.HandleCreate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "InvalidRequest")
}

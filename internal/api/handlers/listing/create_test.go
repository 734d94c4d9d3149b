package listing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Agora/internal/core/listings"
)

// mockListingService is a mock implementation of listings.Service
type mockListingService struct {
	createFunc func(ctx context.Context, req listings.CreateListingRequest) (*listings.CreateListingResponse, error)
}

func (m *mockListingService) CreateListing(ctx context.Context, req listings.CreateListingRequest) (*listings.CreateListingResponse, error) {
	return m.createFunc(ctx, req)
}

func (m *mockListingService) ListByCategory(ctx context.Context, categoryID string) ([]*listings.Listing, error) {
	return nil, nil
}

func TestHandleCreate_Success(t *testing.T) {
	service := &mockListingService{
		createFunc: func(ctx context.Context, req listings.CreateListingRequest) (*listings.CreateListingResponse, error) {
			assert.Equal(t, "c1", req.CategoryID)
			require.NotNil(t, req.Price)
			assert.Equal(t, 100.0, *req.Price)
			return &listings.CreateListingResponse{ID: "lst_1"}, nil
		},
	}
	handler := NewCreateHandler(service)

	req := httptest.NewRequest(http.MethodPost, "/api/listings",
		strings.NewReader(`{"categoryId":"c1","title":"Phone","description":"Used","price":100.0}`))
	rec := httptest.NewRecorder()

	handler.HandleCreate(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"lst_1"}`, rec.Body.String())
}

func TestHandleCreate_OmittedPrice(t *testing.T) {
	service := &mockListingService{
		createFunc: func(ctx context.Context, req listings.CreateListingRequest) (*listings.CreateListingResponse, error) {
			assert.Nil(t, req.Price, "omitted price must arrive as nil, not zero")
			return &listings.CreateListingResponse{ID: "lst_1"}, nil
		},
	}
	handler := NewCreateHandler(service)

	req := httptest.NewRequest(http.MethodPost, "/api/listings",
		strings.NewReader(`{"categoryId":"c1","title":"Bike","description":"Offers"}`))
	rec := httptest.NewRecorder()

	handler.HandleCreate(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleCreate_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{"missing category", listings.ErrCategoryNotFound, http.StatusNotFound, "NotFound"},
		{"empty title", listings.ErrTitleRequired, http.StatusBadRequest, "InvalidInput"},
		{"negative price", listings.ErrNegativePrice, http.StatusBadRequest, "InvalidInput"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service := &mockListingService{
				createFunc: func(ctx context.Context, req listings.CreateListingRequest) (*listings.CreateListingResponse, error) {
					return nil, tc.err
				},
			}
			handler := NewCreateHandler(service)

			req := httptest.NewRequest(http.MethodPost, "/api/listings",
				strings.NewReader(`{"categoryId":"c1","title":"Phone"}`))
			rec := httptest.NewRecorder()

			handler.HandleCreate(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantType)
		})
	}
}

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	_ "time/tzdata" // Embed timezone database for CI/minimal containers

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mkowalczyk/lullaby/internal/domain"
)

func TestChildHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockService    *MockChildService
		wantStatusCode int
	}{
		{
			name:           "valid child",
			body:           `{"name": "Ana", "birth_date": "2023-06-01T00:00:00Z", "timezone": "Europe/Madrid"}`,
			mockService:    &MockChildService{},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "missing name",
			body:           `{"birth_date": "2023-06-01T00:00:00Z", "timezone": "Europe/Madrid"}`,
			mockService:    &MockChildService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid timezone",
			body:           `{"name": "Ana", "birth_date": "2023-06-01T00:00:00Z", "timezone": "Mars/Olympus"}`,
			mockService:    &MockChildService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			body:           `{invalid}`,
			mockService:    &MockChildService{},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewChildHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodPost, "/v1/children", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Create() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestChildHandler_GetByID(t *testing.T) {
	childID := uuid.New()

	t.Run("existing child", func(t *testing.T) {
		handler := NewChildHandler(&MockChildService{})

		req := httptest.NewRequest(http.MethodGet, "/v1/children/"+childID.String(), nil)
		rec := httptest.NewRecorder()

		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("childId", childID.String())
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

		handler.GetByID(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("GetByID() status = %d, want 200, body: %s", rec.Code, rec.Body.String())
		}

		var resp domain.ChildResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Name != "Ana" {
			t.Errorf("GetByID() name = %q, want Ana", resp.Name)
		}
	})

	t.Run("unknown child", func(t *testing.T) {
		handler := NewChildHandler(&MockChildService{
			getByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Child, error) {
				return nil, domain.ErrNotFound
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/v1/children/"+childID.String(), nil)
		rec := httptest.NewRecorder()

		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("childId", childID.String())
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

		handler.GetByID(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("GetByID() status = %d, want 404", rec.Code)
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		handler := NewChildHandler(&MockChildService{})

		req := httptest.NewRequest(http.MethodGet, "/v1/children/not-a-uuid", nil)
		rec := httptest.NewRecorder()

		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("childId", "not-a-uuid")
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

		handler.GetByID(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("GetByID() status = %d, want 400", rec.Code)
		}
	})
}

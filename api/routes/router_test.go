package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stockroomhq/inventory-backend/api/responses"
	"github.com/stockroomhq/inventory-backend/internal/inventory"
	"github.com/stockroomhq/inventory-backend/pkg/logger"
)

type noopService struct{}

func (noopService) Create(ctx context.Context, payload inventory.RecordPayload) (*inventory.RecordDTO, error) {
	return &inventory.RecordDTO{ID: 1}, nil
}
func (noopService) Get(ctx context.Context, id uint) (*inventory.RecordDTO, error) {
	return &inventory.RecordDTO{ID: id}, nil
}
func (noopService) Update(ctx context.Context, id uint, payload inventory.RecordPayload) (*inventory.RecordDTO, error) {
	return &inventory.RecordDTO{ID: id}, nil
}
func (noopService) Delete(ctx context.Context, id uint) error { return nil }
func (noopService) Restock(ctx context.Context, id uint) (*inventory.RecordDTO, error) {
	return &inventory.RecordDTO{ID: id}, nil
}
func (noopService) List(ctx context.Context, input inventory.ListInput) ([]inventory.RecordDTO, error) {
	return []inventory.RecordDTO{}, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return New(Deps{
		Inventory: noopService{},
		Logger:    logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard}),
	})
}

func TestRouterRoutes(t *testing.T) {
	router := newTestRouter(t)

	do := func(method, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("health", func(t *testing.T) {
		rec := do(http.MethodGet, "/health")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("index", func(t *testing.T) {
		if rec := do(http.MethodGet, "/"); rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("metrics", func(t *testing.T) {
		if rec := do(http.MethodGet, "/metrics"); rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		if rec := do(http.MethodGet, "/api/inventory"); rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("numeric id resolves", func(t *testing.T) {
		if rec := do(http.MethodGet, "/api/inventory/15"); rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("non-numeric id is a 404 not a 400", func(t *testing.T) {
		rec := do(http.MethodGet, "/api/inventory/abc")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		var body responses.ErrorBody
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decoding 404 body: %v", err)
		}
		if body.Status != http.StatusNotFound || body.Error != "Not Found" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("unknown path uses error shape", func(t *testing.T) {
		rec := do(http.MethodGet, "/nope")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("wrong method is a 405", func(t *testing.T) {
		rec := do(http.MethodPatch, "/api/inventory/15")
		if rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("expected 405, got %d", rec.Code)
		}
		var body responses.ErrorBody
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decoding 405 body: %v", err)
		}
		if body.Error != "Method Not Allowed" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("restock route", func(t *testing.T) {
		if rec := do(http.MethodPut, "/api/inventory/15/restock"); rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("delete is 204", func(t *testing.T) {
		if rec := do(http.MethodDelete, "/api/inventory/15"); rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
	})
}

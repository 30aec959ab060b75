package router

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kdelarosa/deliverytrack/internal/domain/model"
	"github.com/kdelarosa/deliverytrack/internal/server/http/dto"
	"github.com/kdelarosa/deliverytrack/internal/server/http/handlers"
	testhelpers "github.com/kdelarosa/deliverytrack/internal/test"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := testhelpers.OrderFacadeStub{
		OrdersFn: func(context.Context, model.OrderFilter) ([]model.Order, error) {
			return []model.Order{testhelpers.SampleOrder()}, nil
		},
	}
	engine := Setup(facade, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for list, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/orders/1", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for retrieve, got %d", resp.Code)
	}

	// Static siblings must win over the :id parameter.
	req = httptest.NewRequest(http.MethodGet, "/api/orders/by_status?status=pending", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for by_status, got %d", resp.Code)
	}
	var decoded dto.StatusOrdersResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Status != "PENDING" {
		t.Fatalf("unexpected status %q", decoded.Status)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/orders/by_driver", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for missing driver, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPatch, "/api/orders/1/update_status", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for empty status body, got %d", resp.Code)
	}
}

var _ handlers.DeliveryFacade = testhelpers.OrderFacadeStub{}

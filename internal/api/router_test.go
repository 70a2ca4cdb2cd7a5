package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/simpletrade/blotter/internal/domain/dto"
	"github.com/simpletrade/blotter/internal/ledger"
	"github.com/simpletrade/blotter/internal/service"
)

func TestNewRouter_WiringAndMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := ledger.NewStore()
	if _, err := store.Book(ledger.BookInput{
		Subject:      "VANILLA_SWAPTION",
		Source:       "INTERNAL_UI",
		Counterparty: "GOLDMAN_SACHS",
		Notional:     decimal.NewFromInt(1000000),
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	h := NewHandler(service.NewBlotterService(store))
	r := NewRouter(h)

	// Hit the list route through the router created by NewRouter.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/trades?status=LIVE", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	// Ensure RequestID middleware injected header.
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}

	var out dto.BlotterResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if len(out.Trades) != 1 || out.KPIs.Total != 1 {
		t.Fatalf("unexpected body: %+v", out)
	}
}

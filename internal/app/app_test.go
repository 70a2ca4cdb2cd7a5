package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/simpletrade/blotter/config"
	"github.com/simpletrade/blotter/internal/seed"
)

func TestInitializeApp_HappyPath(t *testing.T) {
	old := config.AppConfig
	t.Cleanup(func() { config.AppConfig = old })
	config.AppConfig = config.Config{
		Server: config.ServerConfig{Port: "8080"},
		Seed:   config.SeedConfig{Actor: "system"},
	}

	router, cleanup, err := InitializeApp()
	if err != nil {
		t.Fatalf("InitializeApp: %v", err)
	}
	t.Cleanup(cleanup)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("healthz=%d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("readyz=%d", w.Code)
	}
}

func TestInitializeApp_SeedsLedger(t *testing.T) {
	dir := t.TempDir()
	content := "subject,source,counterparty,notional,status\nVANILLA_SWAPTION,INTERNAL_UI,GOLDMAN_SACHS,1000000,LIVE\n"
	if err := os.WriteFile(filepath.Join(dir, "01_TRADES.csv"), []byte(content), 0644); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	old := config.AppConfig
	t.Cleanup(func() { config.AppConfig = old })
	config.AppConfig = config.Config{
		Server: config.ServerConfig{Port: "8080"},
		Seed:   config.SeedConfig{Dir: dir, Actor: "system"},
	}

	router, cleanup, err := InitializeApp()
	if err != nil {
		t.Fatalf("InitializeApp: %v", err)
	}
	t.Cleanup(cleanup)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/kpis", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("kpis=%d", w.Code)
	}
	if body := w.Body.String(); !strings.Contains(body, `"total":1`) {
		t.Fatalf("expected one seeded trade, got %s", body)
	}
}

func TestInitializeApp_SeedFailure(t *testing.T) {
	oldCfg := config.AppConfig
	oldLoader := seedLoader
	t.Cleanup(func() {
		config.AppConfig = oldCfg
		seedLoader = oldLoader
	})
	config.AppConfig = config.Config{
		Server: config.ServerConfig{Port: "8080"},
		Seed:   config.SeedConfig{Dir: "/somewhere", Actor: "system"},
	}
	seedLoader = func(context.Context, string, seed.Ledger, string) (int, error) {
		return 0, errors.New("boom")
	}

	router, cleanup, err := InitializeApp()
	if err == nil || router != nil || cleanup != nil {
		if cleanup != nil {
			cleanup()
		}
		t.Fatalf("expected error from InitializeApp when seeding fails")
	}
}

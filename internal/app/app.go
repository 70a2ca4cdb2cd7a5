package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/simpletrade/blotter/config"
	"github.com/simpletrade/blotter/internal/api"
	"github.com/simpletrade/blotter/internal/ledger"
	"github.com/simpletrade/blotter/internal/seed"
	"github.com/simpletrade/blotter/internal/service"
)

// seedLoader is an indirection used by InitializeApp; overridden in tests.
var seedLoader = seed.LoadDirectory

// InitializeApp sets up all application dependencies and returns a fully
// configured Gin router, a cleanup function for graceful shutdown, and any
// error encountered during initialization.
//
// Responsibilities:
//   - Creates the in-memory trade ledger (the sole source of truth).
//   - Optionally seeds it from SEED_DIR.
//   - Initializes the service layer (business logic).
//   - Creates the HTTP handler layer and configures the Gin router.
//   - Registers health and readiness probes.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	// The ledger owns every trade record; nothing else holds a mutable
	// reference to them.
	store := ledger.NewStore()

	if cfg.Seed.Dir != "" {
		// indirection for unit testing
		if _, err := seedLoader(context.Background(), cfg.Seed.Dir, store, cfg.Seed.Actor); err != nil {
			return nil, nil, fmt.Errorf("failed to seed ledger: %w", err)
		}
	}

	// Initialize service layer (business logic)
	svc := service.NewBlotterService(store)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(store.Ping)
	healthHandler.Register(router)

	// Nothing external to release; kept for symmetry with shutdown flow.
	cleanup := func() {}

	return router, cleanup, nil
}

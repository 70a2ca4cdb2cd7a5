package main

//
//  @title           SimpleTrade Blotter API
//  @version         1.0
//  @description     In-process trade ledger with a blotter view API.
//  @contact.name    API Support
//  @contact.url     https://github.com/simpletrade/blotter
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        trades
//  @tag.description Booking, amending and lifecycle transitions
//
//  @tag.name        kpis
//  @tag.description Aggregate blotter metrics
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/simpletrade/blotter/config"
	_ "github.com/simpletrade/blotter/docs" // swagger docs
	"github.com/simpletrade/blotter/internal/app"
	"github.com/simpletrade/blotter/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate
// goroutine and returns the server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and runs the
// cleanup callback when an OS interrupt signal (SIGINT, SIGTERM) is
// received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the blotter service.
//
// Flags:
//   - --port: Port for the API server. Defaults to config (SERVER_PORT).
//   - --seed: Directory with *_TRADES.csv files booked into the ledger on
//     startup. Defaults to config (SEED_DIR); empty disables seeding.
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	port := flag.String("port", config.AppConfig.Server.Port, "Port for the API server")
	seedDir := flag.String("seed", config.AppConfig.Seed.Dir, "Directory with *_TRADES.csv seed files (empty disables seeding)")
	flag.Parse()

	config.AppConfig.Seed.Dir = *seedDir

	router, cleanup, err := app.InitializeApp()
	if err != nil {
		logger.L().Fatal().Err(err).Msg("app init error")
	}

	server := startServer(router, *port)
	gracefulShutdown(ctx, server, cleanup)
}

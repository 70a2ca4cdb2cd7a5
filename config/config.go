package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// ENV equivalent:
//
//	SERVER_PORT=8080
//	SEED_DIR=./data/seed
//	SEED_ACTOR=system
type Config struct {
	Server ServerConfig // HTTP server configuration
	Seed   SeedConfig   // Initial-data seeding settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// SeedConfig defines where initial trades are loaded from at startup.
//
// Fields:
//   - Dir: directory holding *_TRADES.csv seed files; empty disables seeding.
//   - Actor: audit-trail user recorded for seeded bookings.
type SeedConfig struct {
	Dir   string
	Actor string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and read throughout the
// application instead of reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SEED_DIR", "")
	viper.SetDefault("SEED_ACTOR", "system")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Seed: SeedConfig{
			Dir:   viper.GetString("SEED_DIR"),
			Actor: viper.GetString("SEED_ACTOR"),
		},
	}

	validateConfig()
}

// validateConfig ensures required variables are present and terminates the
// application if they are missing. This avoids unexpected runtime failures
// due to incomplete configuration.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Seed.Actor == "" {
		missing = append(missing, "SEED_ACTOR")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}

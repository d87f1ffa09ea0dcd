// Alert Console - operations console backend
//
// This is the main entry point for the Alert Console service. It serves
// the embedded web frontend and a JSON API for authentication, user
// administration, and host status, backed by a local SQLite database.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/alertsys/alert-console/migrations"

	"github.com/alertsys/alert-console/internal/api"
	"github.com/alertsys/alert-console/internal/auth"
	"github.com/alertsys/alert-console/internal/infrastructure/config"
	"github.com/alertsys/alert-console/internal/infrastructure/database"
	"github.com/alertsys/alert-console/internal/infrastructure/logging"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Create a context that cancels on interrupt signals (Ctrl+C, SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
// Returning an error allows main to handle exit codes consistently.
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting Alert Console",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	// Load configuration
	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Open database
	db, err := database.Open(ctx, database.Config{
		Path:        cfg.Database.Path,
		WALMode:     cfg.Database.WALMode,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		log.Info("closing database")
		if closeErr := db.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()
	log.Info("database connected", "path", cfg.Database.Path)

	// Run migrations
	if migrateErr := db.Migrate(ctx); migrateErr != nil {
		return fmt.Errorf("running migrations: %w", migrateErr)
	}
	log.Info("database migrations complete")

	// Seed the initial admin account on an empty directory
	userRepo := auth.NewUserRepository(db.DB)
	seeded, err := auth.SeedAdmin(ctx, userRepo, log.Logger)
	if err != nil {
		return fmt.Errorf("seeding admin account: %w", err)
	}
	if seeded {
		log.Info("default admin account created", "username", auth.DefaultAdminUsername)
	}

	// Start API server
	server, err := api.New(api.Deps{
		Config:  cfg.Server,
		Auth:    cfg.Auth,
		Logger:  log,
		DB:      db,
		Users:   userRepo,
		Version: version,
		WebDir:  cfg.Web.Dir,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}
	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("starting API server: %w", err)
	}
	defer func() {
		if closeErr := server.Close(); closeErr != nil {
			log.Error("error closing API server", "error", closeErr)
		}
	}()

	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	log.Info("initialisation complete, waiting for shutdown signal",
		"address", fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
	)

	// Wait for shutdown signal
	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")
	log.Info("Alert Console stopped")
	return nil
}

// getConfigPath returns the configuration file path.
// Uses ALERTCONSOLE_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("ALERTCONSOLE_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}

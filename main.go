// Package main is the entry point for the todo API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	stdlog "log"
	"os"

	"todoapi/src/app/server"
	"todoapi/src/infra/config"
	"todoapi/src/infra/db"
	"todoapi/src/infra/logger"
	"todoapi/src/infra/repo"
)

func main() {
	if err := run(); err != nil {
		stdlog.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info("starting application",
		"environment", cfg.App.Environment,
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
	)

	// Initialize database connection pool. An unreachable database is not
	// fatal: the service starts degraded so orchestrator probes can see it,
	// and recovers once the database is back.
	ctx := context.Background()
	pg, err := db.New(ctx, cfg.Database, logger.WithComponent(log, "db"))
	if err != nil {
		return err
	}
	defer pg.Close()

	// Ensure the schema exists before accepting traffic. Failure here is a
	// startup error: logged and survived, requests fail until resolved.
	if err := pg.InitSchema(ctx); err != nil {
		log.Error("schema initialization failed, continuing degraded", "error", err)
	}

	// Initialize repository
	todoRepo := repo.NewPostgresTodoRepository(pg, cfg.Database.AcquireTimeout, logger.WithComponent(log, "repo"))

	// Create and run HTTP server
	srv := server.New(cfg, log, todoRepo)

	// Run blocks until shutdown signal is received
	return srv.Run()
}

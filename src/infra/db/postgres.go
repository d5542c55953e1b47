// Package db provides database connection management for PostgreSQL.
// It uses pgx as the database driver for better performance and features.
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"todoapi/src/infra/config"
)

// Postgres wraps a pgx connection pool with helper methods.
type Postgres struct {
	Pool *pgxpool.Pool
	log  *slog.Logger
}

// New creates a new PostgreSQL connection pool bounded by
// [MinConns, MaxConns]. MinConns connections are established eagerly so the
// first requests do not pay connection-setup latency.
//
// An unreachable database is not an error here: the pool connects lazily, so
// the process can still start, serve health checks reporting degraded status,
// and recover once the database comes back. Only an invalid configuration
// fails pool creation.
func New(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*Postgres, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// Apply connection pool bounds
	poolCfg.MinConns = int32(cfg.MinConns)
	poolCfg.MaxConns = int32(cfg.MaxConns)
	poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Verify connectivity. Failure is logged, not fatal: the service starts
	// degraded and the health endpoint reports it.
	if err := pool.Ping(ctx); err != nil {
		log.Error("database unreachable at startup, starting degraded",
			"host", cfg.Host,
			"port", cfg.Port,
			"database", cfg.Name,
			"error", err,
		)
	} else {
		log.Info("database connection established",
			"host", cfg.Host,
			"port", cfg.Port,
			"database", cfg.Name,
			"min_conns", cfg.MinConns,
			"max_conns", cfg.MaxConns,
		)
	}

	return &Postgres{
		Pool: pool,
		log:  log,
	}, nil
}

// Close closes the connection pool.
// Call this during graceful shutdown.
func (p *Postgres) Close() {
	if p.Pool != nil {
		p.Pool.Close()
		p.log.Info("database connection closed")
	}
}

// Health checks if the database is reachable.
// Returns nil if healthy, error otherwise.
func (p *Postgres) Health(ctx context.Context) error {
	return p.Pool.Ping(ctx)
}

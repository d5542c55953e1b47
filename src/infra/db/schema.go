package db

import (
	"context"
	"fmt"
)

// schemaDDL is safe to run against an already-initialized database: the
// table is created only if absent and existing rows are untouched.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS todos (
    id         SERIAL PRIMARY KEY,
    title      VARCHAR(255) NOT NULL,
    completed  BOOLEAN DEFAULT FALSE,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

// InitSchema ensures the todos table exists. It runs once during startup,
// before traffic is accepted, on a pool connection that is released on every
// exit path. A failure is returned to the startup sequence; steady-state
// request handling never calls this.
func (p *Postgres) InitSchema(ctx context.Context) error {
	conn, err := p.Pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection for schema init: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	p.log.Info("database schema initialized")
	return nil
}

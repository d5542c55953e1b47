// Package db provides database connection and schema management.
//
// This package is responsible for:
//   - PostgreSQL connection pool initialization with [min, max] bounds
//   - Connection health checks
//   - Idempotent schema initialization at startup
//
// Example usage:
//
//	pg, err := db.New(ctx, cfg.Database, log)
//	if err != nil {
//	    return err
//	}
//	defer pg.Close()
//
//	if err := pg.InitSchema(ctx); err != nil {
//	    // log and continue degraded; requests will fail until resolved
//	}
package db

// Package repo contains the PostgreSQL implementation of the repository
// ports defined in src/core/ports.
//
// Connection discipline: every operation checks a connection out of the
// pool with a bounded wait and releases it on all exit paths. Mutations run
// in a transaction that commits on success and rolls back on any failure,
// so a connection is never returned to the pool mid-transaction. Driver
// errors are logged here and surface to callers only as domain errors.
package repo

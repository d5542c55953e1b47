// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/repo. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"todoapi/src/core/domain"
)

// TodoRepository is the storage port for todo items.
//
// Every method acquires a pool connection for the duration of the call and
// releases it on all exit paths. Mutating methods run inside a transaction
// that is committed on success and rolled back on any failure; a connection
// is never returned to the pool with a transaction open.
type TodoRepository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error

	// List returns all todos in ascending id order.
	List(ctx context.Context) ([]domain.Todo, error)

	// GetByID returns a single todo, or a not-found error.
	GetByID(ctx context.Context, id int64) (*domain.Todo, error)

	// Create inserts a todo and returns the stored row, including the
	// server-assigned id and timestamps.
	Create(ctx context.Context, title string, completed bool) (*domain.Todo, error)

	// Update applies a partial update: only fields present in the patch
	// change, and updated_at is refreshed. Returns the stored row after
	// the update, or a not-found error.
	Update(ctx context.Context, id int64, patch domain.TodoPatch) (*domain.Todo, error)

	// Delete removes a todo. Returns a not-found error if no row existed.
	Delete(ctx context.Context, id int64) error
}

package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"todoapi/src/core/domain"
	"todoapi/src/infra/db"
)

const todoColumns = "id, title, completed, created_at, updated_at"

// PostgresTodoRepository implements ports.TodoRepository using pgx.
type PostgresTodoRepository struct {
	pool           *pgxpool.Pool
	log            *slog.Logger
	acquireTimeout time.Duration
}

// NewPostgresTodoRepository constructs a repository backed by Postgres.
// acquireTimeout bounds how long a request waits for a pool connection.
func NewPostgresTodoRepository(pg *db.Postgres, acquireTimeout time.Duration, log *slog.Logger) *PostgresTodoRepository {
	return &PostgresTodoRepository{
		pool:           pg.Pool,
		log:            log,
		acquireTimeout: acquireTimeout,
	}
}

// withConn runs fn with a connection checked out from the pool. Acquisition
// waits at most acquireTimeout; exceeding it fails the request instead of
// blocking indefinitely. The connection is released on every exit path, and
// this deferred Release is the only release site, so a connection can never
// be returned twice or leaked.
func (r *PostgresTodoRepository) withConn(ctx context.Context, fn func(conn *pgxpool.Conn) error) error {
	acquireCtx, cancel := context.WithTimeout(ctx, r.acquireTimeout)
	defer cancel()

	conn, err := r.pool.Acquire(acquireCtx)
	if err != nil {
		r.log.Error("failed to acquire database connection", "error", err)
		return domain.NewStorageError("connection unavailable")
	}
	defer conn.Release()

	return fn(conn)
}

// withTx runs fn inside a transaction on a pooled connection. The deferred
// Rollback is a no-op once Commit has succeeded, so every failure path rolls
// back before the connection goes back to the pool; a connection is never
// released in a transaction-open state.
func (r *PostgresTodoRepository) withTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return r.withConn(ctx, func(conn *pgxpool.Conn) error {
		tx, err := conn.Begin(ctx)
		if err != nil {
			r.log.Error("failed to begin transaction", "error", err)
			return domain.NewStorageError("transaction begin failed")
		}
		defer tx.Rollback(ctx)

		if err := fn(tx); err != nil {
			return err
		}
		if err := tx.Commit(ctx); err != nil {
			r.log.Error("failed to commit transaction", "error", err)
			return domain.NewStorageError("transaction commit failed")
		}
		return nil
	})
}

// storageErr logs the driver error and returns the sanitized domain error.
func (r *PostgresTodoRepository) storageErr(op string, err error) error {
	r.log.Error("query failed", "op", op, "error", err)
	return domain.NewStorageError(op + " failed")
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func (r *PostgresTodoRepository) Health(ctx context.Context) error {
	return r.withConn(ctx, func(conn *pgxpool.Conn) error {
		var one int
		if err := conn.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
			return r.storageErr("health probe", err)
		}
		return nil
	})
}

func (r *PostgresTodoRepository) List(ctx context.Context) ([]domain.Todo, error) {
	const q = `SELECT ` + todoColumns + ` FROM todos ORDER BY id`

	todos := []domain.Todo{}
	err := r.withConn(ctx, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, q)
		if err != nil {
			return r.storageErr("list todos", err)
		}
		defer rows.Close()

		for rows.Next() {
			var t domain.Todo
			if err := rows.Scan(&t.ID, &t.Title, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
				return r.storageErr("scan todo", err)
			}
			todos = append(todos, t)
		}
		if err := rows.Err(); err != nil {
			return r.storageErr("list todos", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *PostgresTodoRepository) GetByID(ctx context.Context, id int64) (*domain.Todo, error) {
	const q = `SELECT ` + todoColumns + ` FROM todos WHERE id = $1`

	var t domain.Todo
	err := r.withConn(ctx, func(conn *pgxpool.Conn) error {
		if err := conn.QueryRow(ctx, q, id).Scan(&t.ID, &t.Title, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.NewNotFoundError("todo")
			}
			return r.storageErr("get todo", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PostgresTodoRepository) Create(ctx context.Context, title string, completed bool) (*domain.Todo, error) {
	const q = `
		INSERT INTO todos (title, completed)
		VALUES ($1, $2)
		RETURNING ` + todoColumns

	var t domain.Todo
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, q, title, completed).Scan(&t.ID, &t.Title, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
			if isUniqueViolation(err) {
				return domain.NewConflictError("todo already exists")
			}
			return r.storageErr("create todo", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	r.log.Info("created todo", "id", t.ID)
	return &t, nil
}

// Update applies a partial update inside a single transaction: existence is
// checked first so absence maps to not-found, then only the columns present
// in the patch are written. updated_at is always refreshed, even for an
// empty patch. All values are bound parameters.
func (r *PostgresTodoRepository) Update(ctx context.Context, id int64, patch domain.TodoPatch) (*domain.Todo, error) {
	var t domain.Todo
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		var existing int64
		if err := tx.QueryRow(ctx, `SELECT id FROM todos WHERE id = $1`, id).Scan(&existing); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.NewNotFoundError("todo")
			}
			return r.storageErr("check todo", err)
		}

		set, args := updateSet(patch)
		args = append(args, id)
		q := fmt.Sprintf(
			"UPDATE todos SET %s WHERE id = $%d RETURNING %s",
			set, len(args), todoColumns,
		)
		if err := tx.QueryRow(ctx, q, args...).Scan(&t.ID, &t.Title, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return r.storageErr("update todo", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	r.log.Info("updated todo", "id", id)
	return &t, nil
}

// updateSet builds the SET clause for a partial update from exactly the
// fields present in the patch, with positional placeholders starting at $1.
func updateSet(patch domain.TodoPatch) (string, []any) {
	var (
		updates []string
		args    []any
	)
	if patch.Title != nil {
		args = append(args, *patch.Title)
		updates = append(updates, fmt.Sprintf("title = $%d", len(args)))
	}
	if patch.Completed != nil {
		args = append(args, *patch.Completed)
		updates = append(updates, fmt.Sprintf("completed = $%d", len(args)))
	}
	updates = append(updates, "updated_at = CURRENT_TIMESTAMP")
	return strings.Join(updates, ", "), args
}

// Delete removes a todo. A single delete-and-return statement determines
// both the side effect and whether the target existed.
func (r *PostgresTodoRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM todos WHERE id = $1 RETURNING id`

	err := r.withTx(ctx, func(tx pgx.Tx) error {
		var deleted int64
		if err := tx.QueryRow(ctx, q, id).Scan(&deleted); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.NewNotFoundError("todo")
			}
			return r.storageErr("delete todo", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	r.log.Info("deleted todo", "id", id)
	return nil
}

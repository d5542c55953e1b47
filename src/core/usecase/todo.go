package usecase

import (
	"context"
	"log/slog"
	"strings"

	"todoapi/src/core/domain"
	"todoapi/src/core/ports"
)

// TodoService handles todo workflows: validation, then delegation to the
// repository. Business validation never touches the database.
type TodoService struct {
	repo ports.TodoRepository
	log  *slog.Logger
}

// NewTodoService creates a new TodoService.
func NewTodoService(repo ports.TodoRepository, log *slog.Logger) *TodoService {
	return &TodoService{repo: repo, log: log}
}

// List returns all todos in ascending id order.
func (s *TodoService) List(ctx context.Context) ([]domain.Todo, error) {
	todos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.log.Debug("retrieved todos", "count", len(todos))
	return todos, nil
}

// Get returns a single todo by id.
func (s *TodoService) Get(ctx context.Context, id int64) (*domain.Todo, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates and inserts a new todo. The title is required, must be
// non-blank, and is bounded by the column width.
func (s *TodoService) Create(ctx context.Context, title *string, completed bool) (*domain.Todo, error) {
	if title == nil {
		return nil, domain.NewValidationError("title", "title is required")
	}
	if err := validateTitle(*title); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, *title, completed)
}

// Update applies a partial update: only fields present in the patch change.
func (s *TodoService) Update(ctx context.Context, id int64, patch domain.TodoPatch) (*domain.Todo, error) {
	if patch.Title != nil {
		if err := validateTitle(*patch.Title); err != nil {
			return nil, err
		}
	}
	return s.repo.Update(ctx, id, patch)
}

// Delete removes a todo by id.
func (s *TodoService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return domain.NewValidationError("title", "title must not be blank")
	}
	if len(title) > domain.MaxTitleLength {
		return domain.NewValidationError("title", "title too long")
	}
	return nil
}

package usecase

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoapi/src/core/domain"
)

// stubRepo records calls and returns canned results.
type stubRepo struct {
	healthErr error
	listErr   error

	todos []domain.Todo

	createTitle     string
	createCompleted bool
	createCalled    bool

	updatePatch  domain.TodoPatch
	updateCalled bool

	deleteCalled bool
}

func (s *stubRepo) Health(ctx context.Context) error { return s.healthErr }

func (s *stubRepo) List(ctx context.Context) ([]domain.Todo, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.todos, nil
}

func (s *stubRepo) GetByID(ctx context.Context, id int64) (*domain.Todo, error) {
	for i := range s.todos {
		if s.todos[i].ID == id {
			return &s.todos[i], nil
		}
	}
	return nil, domain.NewNotFoundError("todo")
}

func (s *stubRepo) Create(ctx context.Context, title string, completed bool) (*domain.Todo, error) {
	s.createCalled = true
	s.createTitle = title
	s.createCompleted = completed
	now := time.Now()
	return &domain.Todo{ID: 1, Title: title, Completed: completed, CreatedAt: now, UpdatedAt: now}, nil
}

func (s *stubRepo) Update(ctx context.Context, id int64, patch domain.TodoPatch) (*domain.Todo, error) {
	s.updateCalled = true
	s.updatePatch = patch
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := *t
	if patch.Title != nil {
		out.Title = *patch.Title
	}
	if patch.Completed != nil {
		out.Completed = *patch.Completed
	}
	out.UpdatedAt = out.UpdatedAt.Add(time.Second)
	return &out, nil
}

func (s *stubRepo) Delete(ctx context.Context, id int64) error {
	s.deleteCalled = true
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCreateRequiresTitle(t *testing.T) {
	repo := &stubRepo{}
	svc := NewTodoService(repo, testLogger())

	_, err := svc.Create(context.Background(), nil, false)
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
	assert.False(t, repo.createCalled, "validation failures must not reach storage")
}

func TestCreateRejectsBlankTitle(t *testing.T) {
	repo := &stubRepo{}
	svc := NewTodoService(repo, testLogger())

	_, err := svc.Create(context.Background(), strPtr("   "), false)
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
	assert.False(t, repo.createCalled)
}

func TestCreateRejectsOverlongTitle(t *testing.T) {
	repo := &stubRepo{}
	svc := NewTodoService(repo, testLogger())

	_, err := svc.Create(context.Background(), strPtr(strings.Repeat("x", domain.MaxTitleLength+1)), false)
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
	assert.False(t, repo.createCalled)
}

func TestCreatePassesFieldsThrough(t *testing.T) {
	repo := &stubRepo{}
	svc := NewTodoService(repo, testLogger())

	todo, err := svc.Create(context.Background(), strPtr("Buy milk"), true)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", repo.createTitle)
	assert.True(t, repo.createCompleted)
	assert.Equal(t, "Buy milk", todo.Title)
	assert.False(t, todo.CreatedAt.IsZero())
}

func TestUpdateValidatesPatchTitle(t *testing.T) {
	repo := &stubRepo{todos: []domain.Todo{{ID: 1, Title: "A"}}}
	svc := NewTodoService(repo, testLogger())

	_, err := svc.Update(context.Background(), 1, domain.TodoPatch{Title: strPtr("")})
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
	assert.False(t, repo.updateCalled)
}

func TestUpdatePassesPatchThrough(t *testing.T) {
	repo := &stubRepo{todos: []domain.Todo{{ID: 1, Title: "A"}}}
	svc := NewTodoService(repo, testLogger())

	todo, err := svc.Update(context.Background(), 1, domain.TodoPatch{Completed: boolPtr(true)})
	require.NoError(t, err)
	assert.Nil(t, repo.updatePatch.Title, "absent fields stay absent")
	require.NotNil(t, repo.updatePatch.Completed)
	assert.Equal(t, "A", todo.Title, "title untouched by partial update")
	assert.True(t, todo.Completed)
}

func TestUpdateNotFoundPropagates(t *testing.T) {
	repo := &stubRepo{}
	svc := NewTodoService(repo, testLogger())

	_, err := svc.Update(context.Background(), 42, domain.TodoPatch{Completed: boolPtr(true)})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestDeleteNotFoundPropagates(t *testing.T) {
	repo := &stubRepo{}
	svc := NewTodoService(repo, testLogger())

	err := svc.Delete(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestListPropagatesStorageError(t *testing.T) {
	repo := &stubRepo{listErr: domain.NewStorageError("list todos failed")}
	svc := NewTodoService(repo, testLogger())

	_, err := svc.List(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
}

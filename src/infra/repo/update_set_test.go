package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"todoapi/src/core/domain"
)

func TestUpdateSetEmptyPatch(t *testing.T) {
	set, args := updateSet(domain.TodoPatch{})
	assert.Equal(t, "updated_at = CURRENT_TIMESTAMP", set)
	assert.Empty(t, args)
}

func TestUpdateSetTitleOnly(t *testing.T) {
	title := "Buy milk"
	set, args := updateSet(domain.TodoPatch{Title: &title})
	assert.Equal(t, "title = $1, updated_at = CURRENT_TIMESTAMP", set)
	assert.Equal(t, []any{"Buy milk"}, args)
}

func TestUpdateSetCompletedOnly(t *testing.T) {
	done := true
	set, args := updateSet(domain.TodoPatch{Completed: &done})
	assert.Equal(t, "completed = $1, updated_at = CURRENT_TIMESTAMP", set)
	assert.Equal(t, []any{true}, args)
}

func TestUpdateSetBothFields(t *testing.T) {
	title := "Buy milk"
	done := false
	set, args := updateSet(domain.TodoPatch{Title: &title, Completed: &done})
	assert.Equal(t, "title = $1, completed = $2, updated_at = CURRENT_TIMESTAMP", set)
	assert.Equal(t, []any{"Buy milk", false}, args)
}

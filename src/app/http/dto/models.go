package dto

import "todoapi/src/core/domain"

// CreateTodoRequest is the payload for POST /api/todos.
// Title is a pointer so a missing field can be told apart from an empty one.
type CreateTodoRequest struct {
	Title     *string `json:"title"`
	Completed bool    `json:"completed"`
}

// UpdateTodoRequest is the payload for PUT /api/todos/:id. Both fields are
// optional; only fields present in the request are applied.
type UpdateTodoRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateTodoRequest) ToPatch() domain.TodoPatch {
	return domain.TodoPatch{
		Title:     r.Title,
		Completed: r.Completed,
	}
}

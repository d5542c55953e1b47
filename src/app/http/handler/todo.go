// Package handler contains HTTP handlers for the API.
// Handlers are responsible for:
// - Parsing and validating HTTP requests
// - Calling use case methods
// - Converting results to HTTP responses
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"todoapi/src/app/http/dto"
	"todoapi/src/app/http/response"
	"todoapi/src/app/middleware"
	"todoapi/src/core/usecase"
)

// TodoHandler handles todo CRUD endpoints.
type TodoHandler struct {
	todoService *usecase.TodoService
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(todoService *usecase.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

func parseTodoID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid todo id", middleware.GetRequestID(c))
		return 0, false
	}
	return id, true
}

// List returns all todos in ascending id order.
// GET /api/todos
func (h *TodoHandler) List(c *gin.Context) {
	todos, err := h.todoService.List(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, todos)
}

// Create inserts a new todo.
// POST /api/todos
func (h *TodoHandler) Create(c *gin.Context) {
	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	todo, err := h.todoService.Create(c.Request.Context(), req.Title, req.Completed)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, todo)
}

// Get returns a single todo.
// GET /api/todos/:id
func (h *TodoHandler) Get(c *gin.Context) {
	id, ok := parseTodoID(c)
	if !ok {
		return
	}

	todo, err := h.todoService.Get(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, todo)
}

// Update applies a partial update: only fields present in the payload change.
// PUT /api/todos/:id
func (h *TodoHandler) Update(c *gin.Context) {
	id, ok := parseTodoID(c)
	if !ok {
		return
	}

	var req dto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	todo, err := h.todoService.Update(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, todo)
}

// Delete removes a todo.
// DELETE /api/todos/:id
func (h *TodoHandler) Delete(c *gin.Context) {
	id, ok := parseTodoID(c)
	if !ok {
		return
	}

	if err := h.todoService.Delete(c.Request.Context(), id); err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.NoContent(c)
}

package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"mytodo/internal/cache"
	"mytodo/internal/model"
	"mytodo/internal/repository"
)

// TodoStore is the slice of the repository the handler needs; tests provide
// a mock.
type TodoStore interface {
	Create(ctx context.Context, todo *model.Todo) error
	GetByID(ctx context.Context, id int) (*model.Todo, error)
	List(ctx context.Context, skip, limit int, sort string) ([]model.Todo, error)
	Update(ctx context.Context, todo *model.Todo) error
	Delete(ctx context.Context, id int) error
	Reorder(ctx context.Context, ids []int) error
}

type TodoHandler struct {
	todoRepo TodoStore
	cache    *cache.TodoCache
}

func NewTodoHandler(todoRepo TodoStore, todoCache *cache.TodoCache) *TodoHandler {
	return &TodoHandler{
		todoRepo: todoRepo,
		cache:    todoCache,
	}
}

type TodoRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	ProjectID   *int       `json:"project_id"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	DeadlineAt  *time.Time `json:"deadline_at"`
	Order       *int       `json:"order"`
}

type ReorderRequest struct {
	TodoOrders []int `json:"todo_orders" binding:"required"`
}

// validate normalizes defaults and rejects bad enum values. The legacy
// status "undone" gets its own message: old clients must migrate, the server
// will not alias it silently.
func (r *TodoRequest) validate() (status int, message string) {
	if r.Status == "" {
		r.Status = model.StatusPending
	}
	if r.Priority == "" {
		r.Priority = model.PriorityLow
	}
	if r.Status == model.StatusUndone {
		return http.StatusUnprocessableEntity, "status 'undone' is no longer accepted, use 'pending'"
	}
	if !model.ValidStatus(r.Status) {
		return http.StatusBadRequest, "invalid status"
	}
	if !model.ValidPriority(r.Priority) {
		return http.StatusBadRequest, "invalid priority"
	}
	return 0, ""
}

func (r *TodoRequest) apply(todo *model.Todo) {
	todo.Title = r.Title
	todo.Description = r.Description
	todo.Status = r.Status
	todo.Priority = r.Priority
	todo.ProjectID = r.ProjectID
	todo.ScheduledAt = r.ScheduledAt
	todo.DeadlineAt = r.DeadlineAt
	todo.Order = r.Order
}

// Create creates a new todo
func (h *TodoHandler) Create(c *gin.Context) {
	var req TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if status, msg := req.validate(); status != 0 {
		c.JSON(status, gin.H{"error": msg})
		return
	}

	var todo model.Todo
	req.apply(&todo)
	if todo.Status == model.StatusCompleted {
		now := time.Now()
		todo.CompletedAt = &now
	}

	if err := h.todoRepo.Create(c.Request.Context(), &todo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create todo"})
		return
	}

	h.invalidateCache(c)
	c.JSON(http.StatusCreated, todo)
}

// List returns todos with skip/limit pagination and an optional sort key
func (h *TodoHandler) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	sort := c.DefaultQuery("sort", "id")

	key := cache.ListKey(skip, limit, sort)
	todos, err := h.cache.ListThrough(c.Request.Context(), key, func() ([]model.Todo, error) {
		return h.todoRepo.List(c.Request.Context(), skip, limit, sort)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve todos"})
		return
	}
	if todos == nil {
		todos = []model.Todo{}
	}
	c.JSON(http.StatusOK, todos)
}

// GetByID returns one todo
func (h *TodoHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid todo ID"})
		return
	}

	todo, err := h.todoRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve todo"})
		}
		return
	}
	c.JSON(http.StatusOK, todo)
}

// Update replaces a todo wholesale
func (h *TodoHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid todo ID"})
		return
	}

	var req TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if status, msg := req.validate(); status != 0 {
		c.JSON(status, gin.H{"error": msg})
		return
	}

	todo, err := h.todoRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve todo"})
		}
		return
	}

	wasCompleted := todo.Completed()
	req.apply(todo)
	switch {
	case todo.Status == model.StatusCompleted && !wasCompleted:
		now := time.Now()
		todo.CompletedAt = &now
	case todo.Status != model.StatusCompleted:
		todo.CompletedAt = nil
	}

	if err := h.todoRepo.Update(c.Request.Context(), todo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update todo"})
		return
	}

	h.invalidateCache(c)
	c.JSON(http.StatusOK, todo)
}

// Delete removes a todo
func (h *TodoHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid todo ID"})
		return
	}

	if err := h.todoRepo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete todo"})
		}
		return
	}

	h.invalidateCache(c)
	c.Status(http.StatusNoContent)
}

// Reorder rewrites the display order from a full list of todo ids
func (h *TodoHandler) Reorder(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := h.todoRepo.Reorder(c.Request.Context(), req.TodoOrders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder todos"})
		return
	}

	h.invalidateCache(c)
	c.JSON(http.StatusAccepted, gin.H{"message": "Todos reordered"})
}

func (h *TodoHandler) invalidateCache(c *gin.Context) {
	// Cache failures must not fail the write that already happened.
	_ = h.cache.Invalidate(c.Request.Context())
}

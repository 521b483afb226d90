package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"mytodo/internal/model"
)

// Sort keys accepted by List. Anything else falls back to id order, which is
// the server's insertion order and what the clients rely on.
var todoSortColumns = map[string]string{
	"id":          "id",
	"order":       "display_order",
	"deadline_at": "deadline_at",
	"priority":    "priority",
	"updated_at":  "updated_at",
}

type TodoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// Create adds a new todo; the database assigns the id.
func (r *TodoRepository) Create(ctx context.Context, todo *model.Todo) error {
	now := time.Now()
	todo.UpdatedAt = &now
	return r.db.WithContext(ctx).Create(todo).Error
}

// GetByID retrieves a todo by its id.
func (r *TodoRepository) GetByID(ctx context.Context, id int) (*model.Todo, error) {
	var todo model.Todo
	result := r.db.WithContext(ctx).First(&todo, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, result.Error
	}
	return &todo, nil
}

// List retrieves todos with offset pagination and an optional sort key.
func (r *TodoRepository) List(ctx context.Context, skip, limit int, sort string) ([]model.Todo, error) {
	column, ok := todoSortColumns[sort]
	if !ok {
		column = "id"
	}
	if limit <= 0 {
		limit = 100
	}

	var todos []model.Todo
	result := r.db.WithContext(ctx).
		Order(column).
		Offset(skip).
		Limit(limit).
		Find(&todos)
	if result.Error != nil {
		return nil, result.Error
	}
	return todos, nil
}

// Update replaces the stored record wholesale. Clients always send the
// complete object, so Save semantics are exactly right here.
func (r *TodoRepository) Update(ctx context.Context, todo *model.Todo) error {
	now := time.Now()
	todo.UpdatedAt = &now
	result := r.db.WithContext(ctx).Save(todo)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTodoNotFound
	}
	return nil
}

// Delete removes a todo by its id.
func (r *TodoRepository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&model.Todo{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTodoNotFound
	}
	return nil
}

// Reorder rewrites the display order of every listed todo in one
// transaction: position i in ids gets display_order i. Ids that do not
// exist are skipped rather than failing the whole batch.
func (r *TodoRepository) Reorder(ctx context.Context, ids []int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for position, id := range ids {
			if err := tx.Model(&model.Todo{}).
				Where("id = ?", id).
				Update("display_order", position).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// CountByProject returns how many todos reference the project.
func (r *TodoRepository) CountByProject(ctx context.Context, projectID int) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.Todo{}).
		Where("project_id = ?", projectID).
		Count(&count)
	return count, result.Error
}

package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"mytodo/internal/model"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create adds a new project; the database assigns the id.
func (r *ProjectRepository) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// GetByID retrieves a project by its id.
func (r *ProjectRepository) GetByID(ctx context.Context, id int) (*model.Project, error) {
	var project model.Project
	result := r.db.WithContext(ctx).First(&project, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, result.Error
	}
	return &project, nil
}

// List retrieves projects with offset pagination in id order.
func (r *ProjectRepository) List(ctx context.Context, skip, limit int) ([]model.Project, error) {
	if limit <= 0 {
		limit = 100
	}
	var projects []model.Project
	result := r.db.WithContext(ctx).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&projects)
	if result.Error != nil {
		return nil, result.Error
	}
	return projects, nil
}

// Update replaces the stored record wholesale.
func (r *ProjectRepository) Update(ctx context.Context, project *model.Project) error {
	result := r.db.WithContext(ctx).Save(project)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

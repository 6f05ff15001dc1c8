package repository

import (
	"github.com/docforge/docforge/internal/models"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// ListByOwner lists all projects owned by a user
func (r *GormProjectRepository) ListByOwner(ownerID uint64) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Where("user_id = ?", ownerID).Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// FindByIDAndOwner finds a project by id scoped to its owner. The id and
// owner filter stays in a single WHERE clause; do not split it into a
// fetch followed by an owner check.
func (r *GormProjectRepository) FindByIDAndOwner(id, ownerID uint64, preload ...string) (*models.Project, error) {
	query := r.db
	for _, p := range preload {
		if p == "Sections" {
			query = query.Preload(p, func(db *gorm.DB) *gorm.DB {
				return db.Order("position ASC")
			})
			continue
		}
		query = query.Preload(p)
	}

	var project models.Project
	if err := query.Where("id = ? AND user_id = ?", id, ownerID).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Save persists changes to an existing project
func (r *GormProjectRepository) Save(project *models.Project) error {
	return r.db.Save(project).Error
}

// DeleteByIDAndOwner deletes a project scoped to its owner along with all
// of its sections in one transaction.
func (r *GormProjectRepository) DeleteByIDAndOwner(id, ownerID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Section{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ? AND user_id = ?", id, ownerID).Delete(&models.Project{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// Rolls back the section delete above for non-owned ids.
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

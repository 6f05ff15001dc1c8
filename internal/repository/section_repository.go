package repository

import (
	"github.com/docforge/docforge/internal/models"
	"gorm.io/gorm"
)

// GormSectionRepository is a GORM implementation of SectionRepository
type GormSectionRepository struct {
	db *gorm.DB
}

// NewSectionRepository creates a new SectionRepository
func NewSectionRepository(db *gorm.DB) SectionRepository {
	return &GormSectionRepository{db: db}
}

// ListByProject lists a project's sections ordered by position
func (r *GormSectionRepository) ListByProject(projectID uint64) ([]models.Section, error) {
	var sections []models.Section
	if err := r.db.Where("project_id = ?", projectID).Order("position ASC").Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

// ReplaceForProject deletes all existing sections of a project and
// inserts the given set within one transaction. A failed insert rolls
// back the delete, so a project never ends up with a partial set from a
// single call. Concurrent replacements for the same project are not
// mutually excluded; the last commit wins.
func (r *GormSectionRepository) ReplaceForProject(projectID uint64, sections []models.Section) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&models.Section{}).Error; err != nil {
			return err
		}

		if len(sections) == 0 {
			return nil
		}

		for i := range sections {
			sections[i].ProjectID = projectID
		}
		return tx.Create(&sections).Error
	})
}

// FindByIDAndOwner finds a section by id scoped to the owner of its
// parent project, joined in a single query so that a foreign section is
// indistinguishable from a missing one.
func (r *GormSectionRepository) FindByIDAndOwner(id, ownerID uint64) (*models.Section, error) {
	var section models.Section
	err := r.db.
		Joins("JOIN projects ON projects.id = sections.project_id").
		Where("sections.id = ? AND projects.user_id = ?", id, ownerID).
		First(&section).Error
	if err != nil {
		return nil, err
	}
	return &section, nil
}

// Save persists changes to an existing section
func (r *GormSectionRepository) Save(section *models.Section) error {
	return r.db.Save(section).Error
}

package repository

import (
	"github.com/docforge/docforge/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}

// ProjectRepository defines the interface for project data access.
//
// Every read and write that targets a single project filters by project
// id and owner id together in one query. That combined filter is the
// access-control mechanism: a non-owner sees the same "not found" as a
// request for a project that does not exist.
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// ListByOwner lists all projects owned by a user
	ListByOwner(ownerID uint64) ([]models.Project, error)

	// FindByIDAndOwner finds a project by id scoped to its owner,
	// with optional preloading
	FindByIDAndOwner(id, ownerID uint64, preload ...string) (*models.Project, error)

	// Save persists changes to an existing project
	Save(project *models.Project) error

	// DeleteByIDAndOwner deletes a project scoped to its owner along
	// with all of its sections; gorm.ErrRecordNotFound when no row matches
	DeleteByIDAndOwner(id, ownerID uint64) error
}

// SectionRepository defines the interface for section data access
type SectionRepository interface {
	// ListByProject lists a project's sections ordered by position
	ListByProject(projectID uint64) ([]models.Section, error)

	// ReplaceForProject atomically replaces all sections of a project
	ReplaceForProject(projectID uint64, sections []models.Section) error

	// FindByIDAndOwner finds a section by id scoped to the owner of
	// its parent project
	FindByIDAndOwner(id, ownerID uint64) (*models.Section, error)

	// Save persists changes to an existing section
	Save(section *models.Section) error
}

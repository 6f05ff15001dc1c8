package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/docforge/docforge/internal/models"
	"github.com/docforge/docforge/internal/repository"
)

var (
	ErrProjectNotFound        = errors.New("project not found")
	ErrSectionNotFound        = errors.New("section not found")
	ErrInvalidDocumentType    = errors.New("document type must be docx or pptx")
	ErrGeneratorNotConfigured = errors.New("generation service is not configured")
	ErrGenerationFailed       = errors.New("content generation failed")
)

// ProjectService handles document project business logic. All operations
// are scoped to the requesting owner; a project belonging to someone
// else behaves exactly like a missing one.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	sectionRepo repository.SectionRepository
	generator   Generator
}

// NewProjectService creates a new ProjectService. generator may be nil
// when no API key is configured; generation operations then fail with
// ErrGeneratorNotConfigured.
func NewProjectService(projectRepo repository.ProjectRepository, sectionRepo repository.SectionRepository, generator Generator) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		sectionRepo: sectionRepo,
		generator:   generator,
	}
}

// CreateProjectInput represents input for creating a project.
type CreateProjectInput struct {
	Title        string
	DocumentType models.DocumentType
	Outline      string
	OwnerID      uint64
}

// CreateProject creates a new document project for a user.
func (s *ProjectService) CreateProject(input CreateProjectInput) (*models.Project, error) {
	if !input.DocumentType.Valid() {
		return nil, ErrInvalidDocumentType
	}

	project := &models.Project{
		Title:        input.Title,
		DocumentType: input.DocumentType,
		Outline:      input.Outline,
		UserID:       input.OwnerID,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// ListProjects returns all projects owned by a user.
func (s *ProjectService) ListProjects(ownerID uint64) ([]models.Project, error) {
	projects, err := s.projectRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// GetProject returns a single owned project with its sections.
func (s *ProjectService) GetProject(id, ownerID uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByIDAndOwner(id, ownerID, "Sections")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// UpdateProjectInput represents a partial project update. Empty fields
// are ignored rather than clearing the stored value, so a field cannot
// be explicitly blanked through update.
type UpdateProjectInput struct {
	Title   string
	Outline string
	Content string
}

// UpdateProject merges non-empty input fields into an owned project.
func (s *ProjectService) UpdateProject(id, ownerID uint64, input UpdateProjectInput) (*models.Project, error) {
	project, err := s.projectRepo.FindByIDAndOwner(id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if input.Title != "" {
		project.Title = input.Title
	}
	if input.Outline != "" {
		project.Outline = input.Outline
	}
	if input.Content != "" {
		project.Content = input.Content
	}

	if err := s.projectRepo.Save(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

// DeleteProject removes an owned project and all of its sections.
func (s *ProjectService) DeleteProject(id, ownerID uint64) error {
	if err := s.projectRepo.DeleteByIDAndOwner(id, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// GenerateOutline produces an outline for a topic without touching the
// database.
func (s *ProjectService) GenerateOutline(ctx context.Context, topic string, documentType models.DocumentType) (string, error) {
	if s.generator == nil {
		return "", ErrGeneratorNotConfigured
	}
	if !documentType.Valid() {
		return "", ErrInvalidDocumentType
	}

	outline, err := s.generator.GenerateOutline(ctx, topic, documentType)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrGenerationFailed, err)
	}
	return outline, nil
}

// GenerateContentInput represents input for generating a project's
// full content.
type GenerateContentInput struct {
	Outline                string
	DocumentType           models.DocumentType
	AdditionalInstructions string
}

// GenerateContent invokes the generator and replaces the project's
// sections with the result. The ownership check happens before the
// generator call; on generator failure nothing is written.
func (s *ProjectService) GenerateContent(ctx context.Context, projectID, ownerID uint64, input GenerateContentInput) ([]models.Section, error) {
	if _, err := s.projectRepo.FindByIDAndOwner(projectID, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if s.generator == nil {
		return nil, ErrGeneratorNotConfigured
	}

	generated, err := s.generator.GenerateContent(ctx, input.Outline, input.DocumentType, input.AdditionalInstructions)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrGenerationFailed, err)
	}

	sections := make([]models.Section, len(generated))
	for i, g := range generated {
		sections[i] = models.Section{
			Title:     g.Title,
			Content:   g.Content,
			Position:  g.Order,
			ProjectID: projectID,
		}
	}

	if err := s.sectionRepo.ReplaceForProject(projectID, sections); err != nil {
		return nil, fmt.Errorf("failed to replace sections: %w", err)
	}

	stored, err := s.sectionRepo.ListByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}
	return stored, nil
}

// RefineSection rewrites one owned section's content per the given
// instructions and persists only that field.
func (s *ProjectService) RefineSection(ctx context.Context, sectionID, ownerID uint64, currentContent, instructions string) (string, error) {
	section, err := s.sectionRepo.FindByIDAndOwner(sectionID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrSectionNotFound
		}
		return "", fmt.Errorf("failed to find section: %w", err)
	}

	if s.generator == nil {
		return "", ErrGeneratorNotConfigured
	}

	refined, err := s.generator.RefineContent(ctx, currentContent, instructions)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrGenerationFailed, err)
	}

	section.Content = refined
	if err := s.sectionRepo.Save(section); err != nil {
		return "", fmt.Errorf("failed to save section: %w", err)
	}

	return refined, nil
}

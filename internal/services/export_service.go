package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/docforge/docforge/internal/models"
	"github.com/docforge/docforge/internal/ooxml"
	"github.com/docforge/docforge/internal/repository"
	"github.com/docforge/docforge/internal/utils"
)

const (
	mimeWord  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeSlide = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
)

var ErrRenderFailed = errors.New("document rendering failed")

// ExportedDocument is a rendered binary document ready to stream.
type ExportedDocument struct {
	Data        []byte
	ContentType string
	Filename    string
}

// ExportService renders an owned project's sections into an office
// document dispatched by the project's document type.
type ExportService struct {
	projectRepo repository.ProjectRepository
}

// NewExportService creates a new ExportService.
func NewExportService(projectRepo repository.ProjectRepository) *ExportService {
	return &ExportService{
		projectRepo: projectRepo,
	}
}

// Export renders the document for an owned project. Sections are
// assembled in position order.
func (s *ExportService) Export(projectID, ownerID uint64) (*ExportedDocument, error) {
	project, err := s.projectRepo.FindByIDAndOwner(projectID, ownerID, "Sections")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	name := utils.SafeFilename(project.Title)

	switch project.DocumentType {
	case models.DocumentTypeSlide:
		slides := make([]ooxml.Slide, len(project.Sections))
		for i, section := range project.Sections {
			slides[i] = ooxml.Slide{Title: section.Title, Body: section.Content}
		}
		data, err := ooxml.WritePptx(project.Title, slides)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrRenderFailed, err)
		}
		return &ExportedDocument{
			Data:        data,
			ContentType: mimeSlide,
			Filename:    name + ".pptx",
		}, nil
	default:
		docSections := make([]ooxml.DocSection, len(project.Sections))
		for i, section := range project.Sections {
			docSections[i] = ooxml.DocSection{Title: section.Title, Content: section.Content}
		}
		data, err := ooxml.WriteDocx(project.Title, docSections)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrRenderFailed, err)
		}
		return &ExportedDocument{
			Data:        data,
			ContentType: mimeWord,
			Filename:    name + ".docx",
		}, nil
	}
}

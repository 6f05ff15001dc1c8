package dto

import (
	"time"

	"github.com/docforge/docforge/internal/models"
)

// SectionDTO represents a section in API responses
type SectionDTO struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Order     int       `json:"order"`
	ProjectID uint64    `json:"project_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID           uint64              `json:"id"`
	Title        string              `json:"title"`
	DocumentType models.DocumentType `json:"document_type"`
	Outline      string              `json:"outline"`
	Content      string              `json:"content"`
	UserID       uint64              `json:"user_id"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
	Sections     []SectionDTO        `json:"sections,omitempty"`
}

// ToSectionDTO converts a Section model to SectionDTO
func ToSectionDTO(section models.Section) SectionDTO {
	return SectionDTO{
		ID:        section.ID,
		Title:     section.Title,
		Content:   section.Content,
		Order:     section.Position,
		ProjectID: section.ProjectID,
		CreatedAt: section.CreatedAt,
		UpdatedAt: section.UpdatedAt,
	}
}

// ToSectionDTOs converts a slice of Section models
func ToSectionDTOs(sections []models.Section) []SectionDTO {
	dtos := make([]SectionDTO, len(sections))
	for i, section := range sections {
		dtos[i] = ToSectionDTO(section)
	}
	return dtos
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	dto := ProjectDTO{
		ID:           project.ID,
		Title:        project.Title,
		DocumentType: project.DocumentType,
		Outline:      project.Outline,
		Content:      project.Content,
		UserID:       project.UserID,
		CreatedAt:    project.CreatedAt,
		UpdatedAt:    project.UpdatedAt,
	}

	// Include sections if preloaded
	if len(project.Sections) > 0 {
		dto.Sections = ToSectionDTOs(project.Sections)
	}

	return dto
}

// ToProjectDTOs converts a slice of Project models
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		dtos[i] = ToProjectDTO(project)
	}
	return dtos
}

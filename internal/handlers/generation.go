package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docforge/docforge/internal/dto"
	apierrors "github.com/docforge/docforge/internal/errors"
	"github.com/docforge/docforge/internal/middleware"
	"github.com/docforge/docforge/internal/models"
	"github.com/docforge/docforge/internal/services"
)

// GenerationHandler coordinates the language-model operations: outline
// drafting, full content generation, and section refinement.
type GenerationHandler struct {
	projectService *services.ProjectService
}

// NewGenerationHandler creates a new GenerationHandler.
func NewGenerationHandler(projectService *services.ProjectService) *GenerationHandler {
	return &GenerationHandler{
		projectService: projectService,
	}
}

// GenerateOutline drafts an outline for a topic. Nothing is persisted.
func (h *GenerationHandler) GenerateOutline(c *gin.Context) {
	type GenerateOutlineRequest struct {
		Topic        string              `json:"topic" binding:"required"`
		DocumentType models.DocumentType `json:"document_type" binding:"required"`
	}

	var req GenerateOutlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	outline, err := h.projectService.GenerateOutline(c.Request.Context(), req.Topic, req.DocumentType)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"outline": outline,
	})
}

// GenerateContent generates the full content for an owned project and
// replaces any previously generated sections.
func (h *GenerationHandler) GenerateContent(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	projectID, ok := parseIDParam(c, "project_id")
	if !ok {
		return
	}

	type GenerateContentRequest struct {
		Outline                string              `json:"outline" binding:"required"`
		DocumentType           models.DocumentType `json:"document_type" binding:"required"`
		AdditionalInstructions string              `json:"additional_instructions"`
	}

	var req GenerateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	sections, err := h.projectService.GenerateContent(c.Request.Context(), projectID, userID, services.GenerateContentInput{
		Outline:                req.Outline,
		DocumentType:           req.DocumentType,
		AdditionalInstructions: req.AdditionalInstructions,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Content generated successfully",
		"sections": dto.ToSectionDTOs(sections),
	})
}

// RefineSection rewrites one owned section's content.
func (h *GenerationHandler) RefineSection(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	sectionID, ok := parseIDParam(c, "section_id")
	if !ok {
		return
	}

	type RefineSectionRequest struct {
		CurrentContent         string `json:"current_content" binding:"required"`
		RefinementInstructions string `json:"refinement_instructions" binding:"required"`
	}

	var req RefineSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	content, err := h.projectService.RefineSection(c.Request.Context(), sectionID, userID, req.CurrentContent, req.RefinementInstructions)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"content": content,
	})
}

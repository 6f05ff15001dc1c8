package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/docforge/docforge/internal/errors"
	"github.com/docforge/docforge/internal/middleware"
	"github.com/docforge/docforge/internal/services"
)

// ExportHandler streams rendered documents.
type ExportHandler struct {
	exportService *services.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService *services.ExportService) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// Export renders an owned project into its configured document format
// and streams it as an attachment.
func (h *ExportHandler) Export(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	projectID, ok := parseIDParam(c, "project_id")
	if !ok {
		return
	}

	doc, err := h.exportService.Export(projectID, userID)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}

package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/docforge/docforge/internal/dto"
	"github.com/docforge/docforge/internal/models"
	"github.com/docforge/docforge/internal/services"
)

func TestGenerateOutline(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.registerUser(t, "user@example.com", "writer")
	env.generator.outline = "1. Intro\n2. Body\n3. Conclusion"

	w := env.request(t, http.MethodPost, "/generate-outline", map[string]string{
		"topic":         "Climate change",
		"document_type": "docx",
	}, token)

	requireStatus(t, w, http.StatusOK)

	var response map[string]string
	decodeJSON(t, w, &response)
	require.Equal(t, env.generator.outline, response["outline"])
}

func TestGenerateOutline_UpstreamFailure(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.registerUser(t, "user@example.com", "writer")
	env.generator.err = errors.New("rate limit exceeded")

	w := env.request(t, http.MethodPost, "/generate-outline", map[string]string{
		"topic":         "Climate change",
		"document_type": "pptx",
	}, token)

	requireStatus(t, w, http.StatusInternalServerError)
	// the upstream message survives into the response detail
	require.Contains(t, w.Body.String(), "rate limit exceeded")
}

func TestGenerateContent_ReplacesSections(t *testing.T) {
	env := setupTestEnv(t)
	user, token := env.registerUser(t, "user@example.com", "writer")
	project := env.createProject(t, user.ID, "My Report", models.DocumentTypeWord)

	// three stale sections from a previous run
	for i := 1; i <= 3; i++ {
		env.createSection(t, project.ID, fmt.Sprintf("Old %d", i), i)
	}

	env.generator.sections = []services.GeneratedSection{
		{Title: "New B", Content: "b", Order: 2},
		{Title: "New A", Content: "a", Order: 1},
	}

	w := env.request(t, http.MethodPost, fmt.Sprintf("/generate-content/%d", project.ID), map[string]string{
		"outline":       "1. A\n2. B",
		"document_type": "docx",
	}, token)

	requireStatus(t, w, http.StatusOK)

	var response struct {
		Message  string           `json:"message"`
		Sections []dto.SectionDTO `json:"sections"`
	}
	decodeJSON(t, w, &response)
	require.Len(t, response.Sections, 2)
	// the response comes back ordered by the generated order field
	require.Equal(t, "New A", response.Sections[0].Title)
	require.Equal(t, "New B", response.Sections[1].Title)

	var stored []models.Section
	require.NoError(t, env.db.Where("project_id = ?", project.ID).Order("position ASC").Find(&stored).Error)
	require.Len(t, stored, 2)
	require.Equal(t, "New A", stored[0].Title)
	require.Equal(t, "New B", stored[1].Title)
}

func TestGenerateContent_FailureLeavesSectionsIntact(t *testing.T) {
	env := setupTestEnv(t)
	user, token := env.registerUser(t, "user@example.com", "writer")
	project := env.createProject(t, user.ID, "My Report", models.DocumentTypeWord)
	env.createSection(t, project.ID, "Survivor", 1)

	env.generator.err = errors.New("model timeout")

	w := env.request(t, http.MethodPost, fmt.Sprintf("/generate-content/%d", project.ID), map[string]string{
		"outline":       "1. A",
		"document_type": "docx",
	}, token)

	requireStatus(t, w, http.StatusInternalServerError)
	require.Contains(t, w.Body.String(), "model timeout")

	var count int64
	env.db.Model(&models.Section{}).Where("project_id = ?", project.ID).Count(&count)
	require.Equal(t, int64(1), count)
}

func TestGenerateContent_NotOwned(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.registerUser(t, "user@example.com", "writer")
	other, _ := env.registerUser(t, "other@example.com", "other")
	project := env.createProject(t, other.ID, "Theirs", models.DocumentTypeWord)

	w := env.request(t, http.MethodPost, fmt.Sprintf("/generate-content/%d", project.ID), map[string]string{
		"outline":       "1. A",
		"document_type": "docx",
	}, token)

	requireStatus(t, w, http.StatusNotFound)
	// the ownership check comes before the generator call
	require.Zero(t, env.generator.calls)
}

func TestRefineSection(t *testing.T) {
	env := setupTestEnv(t)
	user, token := env.registerUser(t, "user@example.com", "writer")
	project := env.createProject(t, user.ID, "My Report", models.DocumentTypeWord)
	target := env.createSection(t, project.ID, "Target", 1)
	sibling := env.createSection(t, project.ID, "Sibling", 2)

	env.generator.refined = "polished prose"

	w := env.request(t, http.MethodPost, fmt.Sprintf("/refine-section/%d", target.ID), map[string]string{
		"current_content":         target.Content,
		"refinement_instructions": "make it shine",
	}, token)

	requireStatus(t, w, http.StatusOK)

	var response map[string]string
	decodeJSON(t, w, &response)
	require.Equal(t, "polished prose", response["content"])

	var storedTarget, storedSibling models.Section
	require.NoError(t, env.db.First(&storedTarget, target.ID).Error)
	require.NoError(t, env.db.First(&storedSibling, sibling.ID).Error)
	require.Equal(t, "polished prose", storedTarget.Content)
	// only the targeted section changes
	require.Equal(t, sibling.Content, storedSibling.Content)
	require.Equal(t, target.Title, storedTarget.Title)
}

func TestRefineSection_NotOwned(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.registerUser(t, "user@example.com", "writer")
	other, _ := env.registerUser(t, "other@example.com", "other")
	project := env.createProject(t, other.ID, "Theirs", models.DocumentTypeWord)
	section := env.createSection(t, project.ID, "Foreign", 1)

	env.generator.refined = "should never land"

	w := env.request(t, http.MethodPost, fmt.Sprintf("/refine-section/%d", section.ID), map[string]string{
		"current_content":         "x",
		"refinement_instructions": "y",
	}, token)

	requireStatus(t, w, http.StatusNotFound)

	var stored models.Section
	require.NoError(t, env.db.First(&stored, section.ID).Error)
	require.Equal(t, section.Content, stored.Content)
}

package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/docforge/docforge/internal/auth"
	"github.com/docforge/docforge/internal/handlers"
	"github.com/docforge/docforge/internal/models"
	"github.com/docforge/docforge/internal/repository"
	"github.com/docforge/docforge/internal/router"
	"github.com/docforge/docforge/internal/services"
)

// fakeGenerator is a canned Generator so tests can exercise the
// handlers without a live language-model service.
type fakeGenerator struct {
	outline  string
	sections []services.GeneratedSection
	refined  string
	err      error
	calls    int
}

func (f *fakeGenerator) GenerateOutline(ctx context.Context, topic string, documentType models.DocumentType) (string, error) {
	f.calls++
	return f.outline, f.err
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, outline string, documentType models.DocumentType, extraInstructions string) ([]services.GeneratedSection, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.sections, nil
}

func (f *fakeGenerator) RefineContent(ctx context.Context, currentContent, instructions string) (string, error) {
	f.calls++
	return f.refined, f.err
}

type testEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	issuer      *auth.TokenIssuer
	authService *services.AuthService
	generator   *fakeGenerator
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Section{},
	)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	sectionRepo := repository.NewSectionRepository(db)

	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	generator := &fakeGenerator{}

	authService := services.NewAuthService(userRepo)
	projectService := services.NewProjectService(projectRepo, sectionRepo, generator)
	exportService := services.NewExportService(projectRepo)

	r := router.New(router.Deps{
		Auth:       handlers.NewAuthHandler(authService, issuer),
		Projects:   handlers.NewProjectHandler(projectService),
		Generation: handlers.NewGenerationHandler(projectService),
		Export:     handlers.NewExportHandler(exportService),
		Issuer:     issuer,
		Users:      userRepo,
		CORSOrigin: "http://localhost:3000",
	})

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return &testEnv{
		db:          db,
		router:      r,
		issuer:      issuer,
		authService: authService,
		generator:   generator,
	}
}

// registerUser creates an account and returns it with a valid token.
func (e *testEnv) registerUser(t *testing.T, email, username string) (*models.User, string) {
	t.Helper()

	user, err := e.authService.Register(services.RegisterInput{
		Email:    email,
		Username: username,
		Password: "supersecret",
	})
	require.NoError(t, err)

	token, err := e.issuer.Issue(username)
	require.NoError(t, err)

	return user, token
}

func (e *testEnv) createProject(t *testing.T, ownerID uint64, title string, documentType models.DocumentType) *models.Project {
	t.Helper()

	project := &models.Project{
		Title:        title,
		DocumentType: documentType,
		Outline:      "1. Intro\n2. Body",
		UserID:       ownerID,
	}
	require.NoError(t, e.db.Create(project).Error)
	return project
}

func (e *testEnv) createSection(t *testing.T, projectID uint64, title string, position int) *models.Section {
	t.Helper()

	section := &models.Section{
		Title:     title,
		Content:   title + " content",
		Position:  position,
		ProjectID: projectID,
	}
	require.NoError(t, e.db.Create(section).Error)
	return section
}

// request performs an HTTP request against the full router, optionally
// authenticated with a bearer token.
func (e *testEnv) request(t *testing.T, method, url string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "body: %s", w.Body.String())
}

package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/docforge/docforge/internal/auth"
	"github.com/docforge/docforge/internal/handlers"
	"github.com/docforge/docforge/internal/middleware"
	"github.com/docforge/docforge/internal/repository"
)

// Deps holds everything the HTTP surface needs. All dependencies are
// constructed once at startup and injected; there is no package-level
// state behind the routes.
type Deps struct {
	Auth       *handlers.AuthHandler
	Projects   *handlers.ProjectHandler
	Generation *handlers.GenerationHandler
	Export     *handlers.ExportHandler
	Issuer     *auth.TokenIssuer
	Users      repository.UserRepository
	CORSOrigin string
}

// New builds the gin engine with all routes registered.
func New(d Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{d.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	requireAuth := middleware.RequireAuth(d.Issuer, d.Users)

	r.GET("/health", handlers.Health)

	r.POST("/register", d.Auth.Register)
	r.POST("/token", d.Auth.Token)
	r.GET("/users/me", requireAuth, d.Auth.Me)

	projects := r.Group("/projects", requireAuth)
	{
		projects.POST("", d.Projects.CreateProject)
		projects.GET("", d.Projects.ListProjects)
		projects.GET("/:id", d.Projects.GetProject)
		projects.PUT("/:id", d.Projects.UpdateProject)
		projects.DELETE("/:id", d.Projects.DeleteProject)
	}

	r.POST("/generate-outline", requireAuth, d.Generation.GenerateOutline)
	r.POST("/generate-content/:project_id", requireAuth, d.Generation.GenerateContent)
	r.POST("/refine-section/:section_id", requireAuth, d.Generation.RefineSection)
	r.GET("/export/:project_id", requireAuth, d.Export.Export)

	return r
}

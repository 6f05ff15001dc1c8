package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/docforge/docforge/internal/auth"
	"github.com/docforge/docforge/internal/config"
	"github.com/docforge/docforge/internal/database"
	"github.com/docforge/docforge/internal/handlers"
	"github.com/docforge/docforge/internal/repository"
	"github.com/docforge/docforge/internal/router"
	"github.com/docforge/docforge/internal/services"
)

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, using environment")
	}

	cfg := config.Load()

	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	sectionRepo := repository.NewSectionRepository(db)

	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	var generator services.Generator
	if cfg.OpenAIAPIKey != "" {
		generator = services.NewGenerationService(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	} else {
		log.Println("OPENAI_API_KEY not set, generation endpoints will report failure")
	}

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
		CORSOrigin: cfg.CORSOrigin,
	})

	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

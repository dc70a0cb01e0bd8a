package router

import (
	"log"

	"github.com/chatup/backend/internal/handlers"
	"github.com/chatup/backend/internal/middleware"
	"github.com/chatup/backend/internal/models"
	"github.com/chatup/backend/internal/repositories"
	"github.com/chatup/backend/internal/services"
	"github.com/chatup/backend/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, cfg *config.Config) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Relation{},
		&models.Message{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewRepository[models.User](pgdb)
	sessionRepo := repositories.NewRepository[models.Session](pgdb)
	relationRepo := repositories.NewRepository[models.Relation](pgdb)
	messageRepo := repositories.NewRepository[models.Message](pgdb)

	// --- Initialize Services ---
	authService := services.NewAuthService(userRepo, sessionRepo, cfg.TokenTTL, cfg.RefreshTTL)
	relationsService := services.NewRelationsService(relationRepo)
	messagingService := services.NewMessagingService(messageRepo, relationRepo)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/auth")
	authHandler := handlers.NewAuthHandler(authService, cfg.TokenTTL, cfg.RefreshTTL)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require a valid session) ---
	api := e.Group("/api")
	api.Use(middleware.SessionAuthMiddleware(authService))
	log.Println("Session authentication middleware applied to /api group.")

	// Relation routes
	relationsHandler := handlers.NewRelationsHandler(relationsService)
	relationsHandler.RegisterRelationRoutes(api)
	log.Println("Relation routes configured.")

	// Message routes
	messagingHandler := handlers.NewMessagingHandler(messagingService)
	messagingHandler.RegisterMessageRoutes(api)
	log.Println("Message routes configured.")

	log.Println("All routes configured.")
}

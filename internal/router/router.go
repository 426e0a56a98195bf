package router

import (
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"github.com/socially-app/backend/internal/handlers"
	"github.com/socially-app/backend/internal/identity"
	"github.com/socially-app/backend/internal/middleware"
	"github.com/socially-app/backend/internal/models"
	"github.com/socially-app/backend/internal/repositories"
	"github.com/socially-app/backend/internal/revalidate"
	"github.com/socially-app/backend/pkg/config"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client, firebaseAuthClient *auth.Client, cfg *config.Config) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Notification{},
		&models.Post{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.Static("/uploads", cfg.UploadDir)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	followRepo := repositories.NewPostgresFollowRepository(pgdb)
	notificationRepo := repositories.NewPostgresNotificationRepository(pgdb)
	postRepo := repositories.NewPostgresPostRepository(pgdb)
	uploadRepo := repositories.NewMongoUploadRepository(mgClient.Database("socially"))

	// --- External collaborators ---
	profiles := identity.NewFirebaseFetcher(firebaseAuthClient)
	var revalidator revalidate.Revalidator = revalidate.Noop{}
	if cfg.RevalidateURL != "" {
		revalidator = revalidate.NewWebhook(cfg.RevalidateURL)
	}

	// --- Routes that tolerate anonymous sessions (sync, suggestions) ---
	public := e.Group("/api/v1")
	public.Use(middleware.OptionalFirebaseAuthMiddleware(firebaseAuthClient))

	userHandler := handlers.NewUserHandler(userRepo, followRepo, postRepo, profiles)
	userHandler.RegisterPublicRoutes(public)
	log.Println("Sync and suggestion routes configured.")

	// --- Protected routes (require a verified Firebase ID token) ---
	api := e.Group("/api/v1")
	api.Use(middleware.FirebaseAuthMiddleware(firebaseAuthClient))
	log.Println("Firebase authentication middleware applied to /api/v1 group.")

	userHandler.RegisterProfileRoutes(api)
	log.Println("User profile routes configured.")

	followHandler := handlers.NewFollowHandler(followRepo, userRepo, revalidator)
	followHandler.RegisterFollowRoutes(api)
	log.Println("Follow routes configured.")

	postHandler := handlers.NewPostHandler(postRepo, userRepo, revalidator)
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	notificationHandler := handlers.NewNotificationHandler(notificationRepo, userRepo)
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	uploadHandler, err := handlers.NewUploadHandler(uploadRepo, cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to set up upload handler: %v", err)
	}
	uploadHandler.RegisterUploadRoutes(api)
	log.Println("Upload routes configured.")

	log.Println("All routes configured.")
}

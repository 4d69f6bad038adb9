package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"hospital-bed-backend/internal/config"
	"hospital-bed-backend/internal/database"
	"hospital-bed-backend/internal/handler"
	"hospital-bed-backend/internal/middleware"
	"hospital-bed-backend/internal/repository"
	"hospital-bed-backend/internal/service"
	"hospital-bed-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 3. Initialize database connection
	db := database.Connect(cfg)

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	auditRepo := repository.NewAuditRepo(db)
	patientRepo := repository.NewPatientRepo(db)
	bedTypeRepo := repository.NewBedTypeRepo(db)
	bedRepo := repository.NewBedRepo(db)
	assignRepo := repository.NewBedAssignRepo(db)

	// 5. Initialize services
	authService := service.NewAuthService(userRepo, auditRepo)
	patientService := service.NewPatientService(patientRepo, auditRepo)
	bedTypeService := service.NewBedTypeService(bedTypeRepo, bedRepo, auditRepo)
	bedService := service.NewBedService(bedRepo, bedTypeRepo, assignRepo, auditRepo)
	assignService := service.NewBedAssignService(assignRepo, bedRepo, patientRepo, auditRepo)
	availabilityService := service.NewAvailabilityService(bedRepo, assignRepo)
	workerService := service.NewWorkerService(userRepo)

	// 6. Start background worker in goroutine
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go workerService.Start(ctx)

	// 7. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 8. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 9. Register handlers
	authHandler := handler.NewAuthHandler(authService)
	patientHandler := handler.NewPatientHandler(patientService, assignService)
	bedTypeHandler := handler.NewBedTypeHandler(bedTypeService, availabilityService)
	bedHandler := handler.NewBedHandler(bedService, availabilityService)
	assignHandler := handler.NewBedAssignHandler(assignService)

	// 10. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "hospital-bed-backend",
		})
	})

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	// Catalog responses tolerate short staleness; availability and
	// assignment responses never pass through the cache.
	catalogCache := cache.New(cfg.HTTP.CatalogCacheTTL, 2*cfg.HTTP.CatalogCacheTTL)
	caching := middleware.Cache(catalogCache, cfg.HTTP.CatalogCacheTTL)

	api := r.Group("/api")
	api.Use(middleware.RateLimiter(rate.Limit(cfg.HTTP.RateLimitPerSecond), cfg.HTTP.RateLimitBurst))
	api.Use(middleware.AuthMiddleware())
	{
		// Patient directory
		api.GET("/patients", patientHandler.ListPatients)
		api.GET("/patients/:id", patientHandler.GetPatient)
		api.GET("/patients/:id/admission-number", patientHandler.GetAdmissionNumber)
		api.POST("/patients", middleware.RequireAdmin(), patientHandler.CreatePatient)

		// Bed-type catalog
		api.GET("/bed-types", caching, bedTypeHandler.ListBedTypes)
		api.GET("/bed-types/:id", bedTypeHandler.GetBedType)
		api.GET("/bed-types/:id/availability", bedTypeHandler.GetAvailability)
		api.POST("/bed-types", middleware.RequireAdmin(), bedTypeHandler.CreateBedType)
		api.PUT("/bed-types/:id", middleware.RequireAdmin(), bedTypeHandler.UpdateBedType)
		api.DELETE("/bed-types/:id", middleware.RequireAdmin(), bedTypeHandler.DeleteBedType)

		// Bed registry
		api.GET("/beds", bedHandler.ListBeds)
		api.GET("/beds/auto-select", bedHandler.AutoSelectBed)
		api.GET("/beds/:id", bedHandler.GetBed)
		api.POST("/beds", middleware.RequireAdmin(), bedHandler.CreateBed)
		api.PUT("/beds/:id", middleware.RequireAdmin(), bedHandler.UpdateBed)
		api.DELETE("/beds/:id", middleware.RequireAdmin(), bedHandler.DeleteBed)

		// Assignment ledger
		api.GET("/bed-assigns", assignHandler.ListAssignments)
		api.GET("/bed-assigns/:id", assignHandler.GetAssignment)
		api.POST("/bed-assigns", middleware.RequireAdmin(), assignHandler.CreateAssignment)
		api.PUT("/bed-assigns/:id", middleware.RequireAdmin(), assignHandler.UpdateAssignment)
		api.PATCH("/bed-assigns/:id/status", middleware.RequireAdmin(), assignHandler.SetStatus)
		api.DELETE("/bed-assigns/:id", middleware.RequireAdmin(), assignHandler.DeleteAssignment)
	}

	// 11. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Cancel background worker context
	cancel()
	log.Println("Server exited")
}

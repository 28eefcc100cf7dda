package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/talentmatch/backend/auth"
	"github.com/talentmatch/backend/config"
	_ "github.com/talentmatch/backend/docs"
	"github.com/talentmatch/backend/gemini"
	"github.com/talentmatch/backend/handlers"
	"github.com/talentmatch/backend/matcher"
	"github.com/talentmatch/backend/mcp"
	"github.com/talentmatch/backend/models"
	"github.com/talentmatch/backend/storage"
	"github.com/talentmatch/backend/tools"
)

// @title TalentMatch API
// @version 1.0
// @description Job matching backend pairing applicants with jobs through deterministic skills, behaviour and preference scoring, with AI-generated match summaries.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@talentmatch.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Set Gin mode based on debug setting
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create context for initialization
	ctx := context.Background()

	// Initialize Firestore client
	log.Println("Initializing Firestore client...")
	firestoreClient, err := storage.NewFirestoreClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Firestore client: %v", err)
	}
	defer firestoreClient.Close()
	log.Println("Firestore client initialized successfully")

	// Initialize Cloud Storage client
	log.Println("Initializing Cloud Storage client...")
	storageClient, err := storage.NewCloudStorageClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage client: %v", err)
	}
	defer storageClient.Close()
	log.Println("Cloud Storage client initialized successfully")

	// Initialize auth services
	jwtService := auth.NewJWTService(cfg)
	googleAuthService := auth.NewGoogleAuthService(cfg)

	// Initialize Gemini client
	log.Println("Initializing Gemini client...")
	geminiClient, err := gemini.NewClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}
	defer geminiClient.Close()

	// Initialize the match engine
	matchEngine := matcher.New(
		firestoreClient,
		geminiClient,
		cfg.MatchWorkers,
		time.Duration(cfg.SummaryTimeoutSeconds)*time.Second,
	)

	// Create handlers
	authHandler := handlers.NewAuthHandler(firestoreClient, jwtService, googleAuthService)
	applicantHandler := handlers.NewApplicantHandler(cfg, firestoreClient, storageClient, geminiClient, matchEngine)
	hrHandler := handlers.NewHRHandler(cfg, firestoreClient, matchEngine)

	// Create MCP server with tool registry
	toolRegistry := tools.NewToolRegistry()
	toolRegistry.Register(tools.NewScoreMatchTool())
	toolRegistry.Register(tools.NewExtractKeywordsTool())
	toolRegistry.Register(tools.NewMatchSummaryTool(geminiClient))

	mcpServer := mcp.NewServer(toolRegistry)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// Configure CORS for the web frontend
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Register routes
	router.GET("/health", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Auth endpoints (public)
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/google", authHandler.GoogleLogin)
		}

		// Protected auth endpoints (require authentication)
		authProtected := api.Group("/auth")
		authProtected.Use(auth.AuthMiddleware(jwtService))
		{
			authProtected.GET("/me", authHandler.Me)
		}

		// Applicant endpoints (applicant role only)
		applicantGroup := api.Group("/applicant")
		applicantGroup.Use(auth.AuthMiddleware(jwtService), auth.RequireRole(models.RoleApplicant))
		{
			applicantGroup.GET("/profile", applicantHandler.GetProfile)
			applicantGroup.PUT("/preferences", applicantHandler.UpdatePreferences)
			applicantGroup.PUT("/behaviour", applicantHandler.UpdateBehaviour)
			applicantGroup.POST("/resume", applicantHandler.UploadResume)
			applicantGroup.POST("/cover-letter", applicantHandler.AnalyzeCoverLetter)
			applicantGroup.POST("/photo", applicantHandler.UploadPhoto)
			applicantGroup.GET("/matches", applicantHandler.GetMatches)
			applicantGroup.POST("/matches/run", applicantHandler.StartMatching)
		}

		// HR endpoints (hr role only)
		hrGroup := api.Group("/hr")
		hrGroup.Use(auth.AuthMiddleware(jwtService), auth.RequireRole(models.RoleHR))
		{
			hrGroup.POST("/jobs", hrHandler.CreateJob)
			hrGroup.GET("/jobs", hrHandler.ListJobs)
			hrGroup.PATCH("/jobs/:id/status", hrHandler.UpdateJobStatus)
			hrGroup.GET("/jobs/:id/matches", hrHandler.GetJobMatches)
			hrGroup.POST("/jobs/:id/matches/run", hrHandler.StartMatching)
			hrGroup.POST("/matches/:id/interview", hrHandler.ScheduleInterview)
			hrGroup.PATCH("/matches/:id/status", hrHandler.UpdateMatchStatus)
		}

		// MCP endpoints for external AI agents
		mcpServer.RegisterRoutes(api)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}

package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"drivebox/internal/auth"
	"drivebox/internal/blobstore/cloudinary"
	"drivebox/internal/config"
	"drivebox/internal/handler"
	"drivebox/internal/middleware"
	"drivebox/internal/repository/mongodb"
	"drivebox/internal/service"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"cascade_delete", cfg.CascadeDelete,
	)

	// Token codec for signup/login and the auth gate
	tokens, err := auth.NewHS256Codec(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatalf("Failed to create token codec: %v", err)
	}

	// Connect to MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	cancel()
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	logger.Info("database connected", "db", cfg.MongoDB)

	// Cloudinary-backed blob store
	blobs, err := cloudinary.New(cfg.CloudinaryURL, cfg.ProbeTimeout, logger)
	if err != nil {
		log.Fatalf("Failed to init object store: %v", err)
	}

	// Create repositories
	repoConfig := &mongodb.RepositoryConfig{
		DB:     db,
		Logger: logger,
	}
	userRepo := mongodb.NewUserRepository(repoConfig)
	folderRepo := mongodb.NewFolderRepository(repoConfig)
	fileRepo := mongodb.NewFileRepository(repoConfig)

	// Create services
	authService := service.NewAuthService(userRepo, tokens, logger)
	fileService := service.NewFileService(fileRepo, folderRepo, blobs, logger)
	folderService := service.NewFolderService(folderRepo, fileService, cfg.CascadeDelete, logger)
	driveService := service.NewDriveService(folderService, fileService, logger)

	// Create handlers
	authHandler := handler.NewAuthHandler(authService, logger)
	folderHandler := handler.NewFolderHandler(folderService, logger)
	fileHandler := handler.NewFileHandler(fileService, logger)
	driveHandler := handler.NewDriveHandler(driveService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", driveHandler.HealthCheck)

	// Auth routes
	mux.HandleFunc("POST /api/auth/signup", authHandler.Signup)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Folder routes (ancestors before {id} so it isn't shadowed)
	mux.HandleFunc("GET /api/folders", folderHandler.ListFolders)
	mux.HandleFunc("POST /api/folders", folderHandler.CreateFolder)
	mux.HandleFunc("GET /api/folders/ancestors/{id}", folderHandler.GetAncestors)
	mux.HandleFunc("GET /api/folders/{id}", folderHandler.GetFolder)
	mux.HandleFunc("PATCH /api/folders/{id}", folderHandler.RenameFolder)
	mux.HandleFunc("DELETE /api/folders/{id}", folderHandler.DeleteFolder)

	// File routes
	mux.HandleFunc("GET /api/files", fileHandler.ListFiles)
	mux.HandleFunc("POST /api/files", fileHandler.Upload)
	mux.HandleFunc("GET /api/files/download/{id}", fileHandler.Download)
	mux.HandleFunc("DELETE /api/files/{id}", fileHandler.Delete)

	// Aggregated drive view
	mux.HandleFunc("GET /api/drive", driveHandler.Browse)

	// Build middleware chain
	var root http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → RequestID → Recovery → Auth → Routes
	root = middleware.Auth(authService)(root)
	root = middleware.Recovery(logger)(root)
	root = middleware.RequestID()(root)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}

package app

import (
	"context"
	"fmt"
	"time"

	"photostudio_backend/internal/auth"
	"photostudio_backend/internal/config"
	"photostudio_backend/internal/database"
	"photostudio_backend/internal/email"
	"photostudio_backend/internal/handlers"
	"photostudio_backend/internal/logger"
	"photostudio_backend/internal/middleware"
	"photostudio_backend/internal/repositories"
	"photostudio_backend/internal/routes"
	"photostudio_backend/internal/services"
	"photostudio_backend/internal/storage"
	"photostudio_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	userRepo := repositories.NewUserRepository(gormDB)
	if err := services.EnsureSuperadmin(
		context.Background(),
		userRepo,
		cfg.Auth.SuperadminName,
		cfg.Auth.SuperadminEmail,
		cfg.Auth.SuperadminPassword,
	); err != nil {
		logger.Fatal("Failed to seed superadmin", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	store := initializeStorage(cfg)
	emailProvider := initializeEmail(cfg)

	mediaRepo := repositories.NewMediaRepository(gormDB)
	userRepo := repositories.NewUserRepository(gormDB)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	mediaService := services.NewMediaService(mediaRepo, store, services.MediaConfig{
		MaxFiles:    cfg.Upload.MaxFiles,
		MaxFileSize: cfg.Upload.MaxFileSize,
	})
	importService := services.NewImportService(mediaService)
	userService := services.NewUserService(userRepo, tokens)
	contactService := services.NewContactService(emailProvider, cfg.Email.NotifyAddress)

	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	appHandlers := &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(baseHandler, userService),
		GalleryHandler: handlers.NewGalleryHandler(baseHandler, mediaService),
		ContactHandler: handlers.NewContactHandler(baseHandler, contactService),
		MediaHandler:   handlers.NewMediaHandler(baseHandler, mediaService, importService),
		AdminHandler:   handlers.NewAdminHandler(baseHandler, mediaService, userService),
	}

	ginRouter := initializeGinRouter(cfg)

	// Serve local blobs directly when the primary backend is on disk.
	if cfg.Storage.Primary.Type == "local" {
		ginRouter.Static("/files", cfg.Storage.Primary.BasePath)
	}

	routes.RegisterRoutes(ginRouter, appHandlers, tokens, userRepo)

	return ginRouter
}

// initializeStorage builds the backend chain: the primary store plus an
// optional fallback, tried in order.
func initializeStorage(cfg *config.Config) storage.Storage {
	backends := []storage.Storage{newBackend(cfg.Storage.Primary, "primary")}

	if cfg.Storage.Fallback.Type != "" {
		backends = append(backends, newBackend(cfg.Storage.Fallback, "fallback"))
	}

	chain, err := storage.NewChain(backends...)
	if err != nil {
		logger.Fatal("Failed to initialize storage chain", "error", err)
	}
	logger.Info("Storage initialized", "backends", len(backends))
	return chain
}

func newBackend(bc config.StorageBackend, role string) storage.Storage {
	backend, err := storage.NewStorage(storage.Config{
		Type:      bc.Type,
		BasePath:  bc.BasePath,
		BaseURL:   bc.BaseURL,
		Bucket:    bc.Bucket,
		Region:    bc.Region,
		AccessKey: bc.AccessKey,
		SecretKey: bc.SecretKey,
		Endpoint:  bc.Endpoint,
		UseSSL:    bc.UseSSL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage backend", "role", role, "type", bc.Type, "error", err)
	}
	return backend
}

func initializeEmail(cfg *config.Config) email.Provider {
	renderer, err := email.NewTemplateManager()
	if err != nil {
		logger.Fatal("Failed to load email templates", "error", err)
	}

	smtpConfig := email.DefaultConfig()
	smtpConfig.Host = cfg.Email.SMTPHost
	smtpConfig.Port = cfg.Email.SMTPPort
	smtpConfig.Username = cfg.Email.SMTPUsername
	smtpConfig.Password = cfg.Email.SMTPPassword
	smtpConfig.FromEmail = cfg.Email.FromEmail
	smtpConfig.FromName = cfg.Email.FromName
	smtpConfig.UseTLS = cfg.Email.UseTLS

	return email.NewSMTPProvider(smtpConfig, renderer)
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LocaleMiddleware(cfg.Locale.Default))
	return router
}

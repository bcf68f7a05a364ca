package app

import (
	"errors"
	"fmt"
	"time"

	"dastawez_backend/internal/config"
	"dastawez_backend/internal/events"
	"dastawez_backend/internal/handlers"
	"dastawez_backend/internal/logger"
	"dastawez_backend/internal/middleware"
	"dastawez_backend/internal/models"
	"dastawez_backend/internal/notifications"
	"dastawez_backend/internal/routes"
	"dastawez_backend/internal/services"
	"dastawez_backend/internal/storage"
	"dastawez_backend/internal/validator"
	"dastawez_backend/ws"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
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

	if err := autoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:     cfg.Storage.Type,
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	feedStore, err := notifications.NewFileStore(cfg.Notifications.CacheDir)
	if err != nil {
		logger.Fatal("Failed to initialize notification cache", "error", err)
	}
	center := notifications.NewCenter(
		feedStore,
		cfg.Notifications.MaxPerUser,
		time.Duration(cfg.Notifications.RetentionHours)*time.Hour,
	)

	bus := events.NewBus()
	serviceContainer := services.NewServiceContainer(services.ContainerDeps{
		DB:      gormDB,
		Storage: storageInstance,
		Bus:     bus,
		Center:  center,
		Limits: services.UploadLimits{
			MaxSize:      cfg.Upload.MaxSize,
			AllowedTypes: cfg.Upload.AllowedTypes,
		},
		UPI: services.UPIConfig{
			PayeeVPA:    cfg.UPI.PayeeVPA,
			PayeeName:   cfg.UPI.PayeeName,
			QREndpoint:  cfg.UPI.QREndpoint,
			QRImageSize: cfg.UPI.QRImageSize,
		},
	})

	wsManager := ws.NewManager()
	go wsManager.Run()
	center.SetPusher(wsManager)

	dispatcher := notifications.NewDispatcher(center, serviceContainer.AdminLister)
	dispatcher.Start(bus)

	customValidator := validator.New()
	appHandlers := handlers.NewAppHandlers(serviceContainer, customValidator, wsManager)
	wsHandler := ws.NewHandler(wsManager)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, wsHandler)
	return ginRouter
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserRole{},
		&models.Profile{},
		&models.Service{},
		&models.Order{},
		&models.OrderDocument{},
		&models.UserDocument{},
	)
}

// seedFirstAdmin guarantees one admin account exists on a fresh
// install. User, profile and role row are created in one transaction.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("first admin credentials not configured, skipping admin seeding")
		return nil
	}

	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer tx.Rollback()

	var adminUser models.User
	result := tx.Where("email = ?", adminEmail).First(&adminUser)

	if result.Error == nil {
		logger.Info("Admin user already exists, skipping creation", "email", adminEmail)
		tx.Rollback()
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found, creating first admin", "email", adminEmail)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		PasswordHash: string(hashedPassword),
		Status:       models.UserStatusActive,
	}
	if err := tx.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	if err := tx.Create(&models.UserRole{UserID: newAdmin.ID, Role: models.AppRoleAdmin}).Error; err != nil {
		return fmt.Errorf("failed to grant admin role: %w", err)
	}

	adminProfile := &models.Profile{
		UserID:   newAdmin.ID,
		FullName: "Dastawez Administration",
		Email:    adminEmail,
	}
	if err := tx.Create(adminProfile).Error; err != nil {
		return fmt.Errorf("failed to create admin profile: %w", err)
	}

	logger.Info("First admin user created", "email", adminEmail)
	return tx.Commit().Error
}

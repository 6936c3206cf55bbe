package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "savannacars-backend/internal/api/http"
	"savannacars-backend/internal/config"
	"savannacars-backend/internal/logger"
	"savannacars-backend/internal/repository/postgres"
	"savannacars-backend/internal/security"
	"savannacars-backend/internal/service"
	"savannacars-backend/internal/storage"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Local .env is optional; real deployments set env directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Savanna Cars Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize Storage Service
	var storageService storage.StorageInterface
	var mockStorage *storage.MockStorageService
	switch cfg.Storage.Type {
	case "", "mock":
		logger.Info("Using mock storage (local filesystem)", "upload_dir", cfg.Storage.UploadDir)
		mockStorage, err = storage.NewMockStorageService(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
		if err != nil {
			logger.Error("Failed to initialize mock storage", "error", err)
			log.Fatalf("Failed to initialize mock storage: %v", err)
		}
		storageService = mockStorage
	case "gcs":
		logger.Info("Using Google Cloud Storage", "bucket", cfg.Storage.Bucket)
		gcs, err := storage.NewGCSStorageService(context.Background(), cfg.Storage.Bucket, cfg.Storage.CredentialsFile)
		if err != nil {
			logger.Error("Failed to initialize GCS storage", "error", err)
			log.Fatalf("Failed to initialize GCS storage: %v", err)
		}
		storageService = gcs
	default:
		logger.Error("Unsupported storage type", "type", cfg.Storage.Type)
		log.Fatalf("Storage type '%s' is not supported", cfg.Storage.Type)
	}

	// Initialize external collaborators
	emailSvc := service.NewEmailService(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From)
	payments := service.NewSimulatedPaymentProcessor(cfg.Payment.SimulatedDelayMs)

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	bookingSvc := service.NewBookingService(
		store.BookingRepository,
		store.CustomerRepository,
		store.FleetRepository,
		store.SettingsRepository,
		emailSvc,
		payments,
	)
	customerSvc := service.NewCustomerService(store.CustomerRepository, store.BookingRepository, storageService)
	fleetSvc := service.NewFleetService(store.FleetRepository)
	careerSvc := service.NewCareerService(store.JobPostingRepository)
	safariSvc := service.NewSafariService(store.SafariRepository)
	settingsSvc := service.NewSettingsService(store.SettingsRepository)
	noteSvc := service.NewNotificationService(store.NotificationRepository)
	receiptSvc := service.NewReceiptService(store.BookingRepository, store.SettingsRepository)

	// Build router
	router := httpapi.NewRouter(httpapi.Handlers{
		Auth:         authSvc,
		Bookings:     bookingSvc,
		Customers:    customerSvc,
		Fleet:        fleetSvc,
		Careers:      careerSvc,
		Safaris:      safariSvc,
		Settings:     settingsSvc,
		Notification: noteSvc,
		Receipts:     receiptSvc,
		TokenManager: tokenManager,
	})

	// Mock storage serves its presigned URLs from the same router
	if mockStorage != nil {
		httpapi.RegisterMockStorageRoutes(router, mockStorage)
	}

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skillmart/internal/config"
	"skillmart/internal/database"
	"skillmart/internal/handlers"
	"skillmart/internal/logger"
	"skillmart/internal/middleware"
	"skillmart/internal/services"
	"skillmart/internal/state"
	"skillmart/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "skillmart/internal/docs" // Import swagger docs
)

// @title           Skillmart API
// @version         1.0
// @description     Skillmart is a marketplace ledger for uniquely-owned skill NFTs: minting, listing, purchase with creator royalties, and an internal balance ledger.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize snapshot database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create snapshot database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize the in-memory marketplace state and services
	store := state.NewStore()
	ledgerService := services.NewLedgerService(store)
	registryService := services.NewRegistryService(store, ledgerService)
	snapshotService := services.NewSnapshotService(dbManager.DB(), store)

	// Restore state from the last snapshot before taking any calls.
	// An incompatible snapshot halts startup rather than risking
	// corrupt state.
	if err := snapshotService.Restore(); err != nil {
		return fmt.Errorf("failed to restore snapshot: %w", err)
	}
	log.Info("Marketplace state restored from snapshot")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler()
	assetHandler := handlers.NewAssetHandler(registryService)
	ledgerHandler := handlers.NewLedgerHandler(ledgerService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Token issuance (guarded by the issuer API key, not a bearer token)
	auth := v1.Group("/auth")
	auth.Use(middleware.IssuerAuthMiddleware(appConfig.IssuerAPIKey))
	auth.POST("/token", authHandler.IssueToken)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// Asset routes
	assets := protected.Group("/assets")
	assets.POST("", assetHandler.Mint)
	assets.GET("", assetHandler.GetAssets)
	assets.GET("/:id", assetHandler.GetAssetByID)
	assets.POST("/:id/list", assetHandler.List)
	assets.POST("/:id/delist", assetHandler.Delist)
	assets.POST("/:id/active", assetHandler.SetActive)
	assets.POST("/:id/purchase", assetHandler.Purchase)
	assets.POST("/:id/transfer", assetHandler.Transfer)

	// Ledger routes
	ledger := protected.Group("/ledger")
	ledger.GET("/balance", ledgerHandler.GetBalance)
	ledger.GET("/royalties", ledgerHandler.GetRoyalties)
	ledger.POST("/deposit", ledgerHandler.Deposit)
	ledger.POST("/withdraw", ledgerHandler.Withdraw)

	srv := &http.Server{
		Addr:    ":" + appConfig.Port,
		Handler: router,
	}

	// Serve until interrupted, then save a snapshot before exiting. The
	// server is fully drained first so no marketplace call is in flight
	// while the snapshot is taken.
	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting Skillmart server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		log.Infof("Received signal %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	meta, err := snapshotService.Save()
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	log.Infof("Snapshot saved (version %d, next id %d)", meta.Version, meta.NextID)
	return nil
}

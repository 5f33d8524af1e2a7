// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Reidvanvliet/golden-chopsticks-service/config"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/circuitbreaker"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/repository"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	CatalogRepo           repository.CatalogRepositoryInterface
	CartsRepo             repository.CartsRepositoryInterface
	LoggingService        service.LoggingService
	CatalogCircuitBreaker *circuitbreaker.CircuitBreaker
	CartsCircuitBreaker   *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker    *circuitbreaker.CircuitBreaker
	DB                    *repository.MongoDB
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	mongoCfg := repository.DefaultMongoConfig()
	if cfg.CartTTL > 0 {
		mongoCfg.CartTTL = cfg.CartTTL
	}

	db, err := repository.NewMongoDBWithConfig(cfg.URI, cfg.DatabaseName, mongoCfg)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	catalogCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-catalog",
	})

	cartsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-carts",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	catalogRepo := repository.NewCatalogRepository(db)
	catalogRepoWithCB := repository.NewCatalogRepositoryWithCircuitBreaker(catalogRepo, catalogCB)

	cartsRepo := repository.NewCartsRepository(db)
	cartsRepoWithCB := repository.NewCartsRepositoryWithCircuitBreaker(cartsRepo, cartsCB)

	return &DatabaseComponents{
		CatalogRepo:           catalogRepoWithCB,
		CartsRepo:             cartsRepoWithCB,
		LoggingService:        loggingService,
		CatalogCircuitBreaker: catalogCB,
		CartsCircuitBreaker:   cartsCB,
		LogsCircuitBreaker:    logsCB,
		DB:                    db,
	}
}

// seedCatalog installs the default combination menu when no active catalog
// document exists yet.
func seedCatalog(catalogService *service.CatalogServiceImpl) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := catalogService.EnsureSeeded(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to seed default combo catalog")
	}
}

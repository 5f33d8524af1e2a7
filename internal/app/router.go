// Package app provides router configuration.
package app

import (
	"github.com/Reidvanvliet/golden-chopsticks-service/config"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/http"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/repository"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
	Selections    *service.SelectionServiceImpl
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	pricer service.Pricer,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var catalogRepo repository.CatalogRepositoryInterface
	var cartsRepo repository.CartsRepositoryInterface
	var loggingService service.LoggingService
	if dbComponents != nil {
		catalogRepo = dbComponents.CatalogRepo
		cartsRepo = dbComponents.CartsRepo
		loggingService = dbComponents.LoggingService
	}

	// Initialize catalog service and seed the default menu
	catalogService := service.NewCatalogService(catalogRepo, cfg.Cache.CatalogTTL)
	if catalogRepo != nil {
		seedCatalog(catalogService)
	}

	// Carts fall back to process memory when MongoDB is disabled
	if cartsRepo == nil {
		cartsRepo = repository.NewInMemoryCartsRepository()
	}
	cartService := service.NewCartService(cartsRepo)

	selectionService := service.NewSelectionService(catalogService, pricer, cfg.Session.TTL)

	handler := http.NewHandler(pricer, catalogService)
	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if dbComponents != nil {
		if dbComponents.CatalogCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_catalog", dbComponents.CatalogCircuitBreaker)
		}
		if dbComponents.CartsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_carts", dbComponents.CartsCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	// Admin authentication only exists when a password hash is configured
	var authService service.AuthService
	if cfg.Auth.Enabled && cfg.Auth.AdminPasswordHash != "" {
		authService = service.NewAuthService(cfg.Auth)
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
		CatalogService:    catalogService,
		SelectionService:  selectionService,
		CartService:       cartService,
		AuthService:       authService,
		Pricer:            pricer,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
		Selections:    selectionService,
	}
}

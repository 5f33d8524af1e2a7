// Package app provides service initialization.
package app

import (
	"github.com/Reidvanvliet/golden-chopsticks-service/config"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Pricer service.Pricer
}

// InitializeServices initializes business logic services.
func InitializeServices(cfg config.CacheConfig) *ServiceComponents {
	var opts []service.PricerOption

	if cfg.Size > 0 {
		opts = append(opts, service.WithQuoteCache(cfg.Size, cfg.TTL))
	}

	pricer := service.NewPricerService(opts...)

	return &ServiceComponents{
		Pricer: pricer,
	}
}

//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Reidvanvliet/golden-chopsticks-service/config"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/mocks"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/repository"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/service"
)

func seededCatalogRepo() *mocks.MockCatalogRepositoryInterface {
	repo := new(mocks.MockCatalogRepositoryInterface)
	repo.On("GetActive", mock.Anything).Return(&repository.CatalogConfig{
		Combos: service.DefaultCatalog(),
		Active: true,
	}, nil)
	return repo
}

func TestInitializeRouter(t *testing.T) {
	tests := []struct {
		name         string
		dbComponents *DatabaseComponents
		cfg          config.Config
		validate     func(*testing.T, *RouterComponents)
	}{
		{
			name: "creates router with pricer only",
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  100,
					RateWindow: time.Minute,
				},
				Session: config.SessionConfig{TTL: 30 * time.Minute},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.Handler)
				assert.NotNil(t, components.HealthHandler)
				assert.False(t, components.Config.EnableAuth)
				assert.True(t, components.Config.EnableIdempotency)
				assert.Equal(t, 100, components.Config.RateLimit)
			},
		},
		{
			name: "creates router with api key auth enabled",
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  50,
					RateWindow: 30 * time.Second,
				},
				Session: config.SessionConfig{TTL: 30 * time.Minute},
				Auth: config.AuthConfig{
					Enabled: true,
					APIKeys: map[string]bool{"test-key": true},
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components)
				assert.True(t, components.Config.EnableAuth)
				assert.Equal(t, map[string]bool{"test-key": true}, components.Config.APIKeys)
				assert.Nil(t, components.Config.AuthService)
			},
		},
		{
			name: "creates router with database components",
			dbComponents: &DatabaseComponents{
				CatalogRepo: seededCatalogRepo(),
				CartsRepo:   repository.NewInMemoryCartsRepository(),
			},
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  10,
					RateWindow: time.Second,
				},
				Session: config.SessionConfig{TTL: 30 * time.Minute},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.Config.CatalogService)
				assert.NotNil(t, components.Config.CartService)
				assert.NotNil(t, components.Config.SelectionService)
			},
		},
		{
			name: "creates router with nil dbComponents",
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  10,
					RateWindow: time.Second,
				},
				Session: config.SessionConfig{TTL: 30 * time.Minute},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components)
				// The storefront still works without MongoDB
				assert.NotNil(t, components.Config.CatalogService)
				assert.NotNil(t, components.Config.CartService)
				assert.Nil(t, components.Config.LoggingService)
				assert.Nil(t, components.Config.AuthService)
			},
		},
		{
			name: "creates router with admin auth when a password hash is set",
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  10,
					RateWindow: time.Second,
				},
				Session: config.SessionConfig{TTL: 30 * time.Minute},
				Auth: config.AuthConfig{
					Enabled:           true,
					AdminUser:         "admin",
					AdminPasswordHash: "$2a$10$0000000000000000000000000000000000000000000000000000",
					JWTSecret:         "test-secret",
					TokenDuration:     time.Hour,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.Config.AuthService)
			},
		},
		{
			name: "no admin auth without a password hash",
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  10,
					RateWindow: time.Second,
				},
				Session: config.SessionConfig{TTL: 30 * time.Minute},
				Auth: config.AuthConfig{
					Enabled:   true,
					AdminUser: "admin",
					JWTSecret: "test-secret",
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components)
				assert.Nil(t, components.Config.AuthService)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components := InitializeRouter(service.NewPricerService(), tt.dbComponents, tt.cfg)
			if tt.validate != nil {
				tt.validate(t, components)
			}
		})
	}
}

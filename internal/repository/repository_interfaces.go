// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/Reidvanvliet/golden-chopsticks-service/internal/domain/model"
)

// CatalogRepositoryInterface defines the interface for catalog repository operations.
type CatalogRepositoryInterface interface {
	GetActive(ctx context.Context) (*CatalogConfig, error)
	Create(ctx context.Context, combos []ComboDefinition, createdBy string) (*CatalogConfig, error)
	ReplaceItems(ctx context.Context, comboID int, items []model.MenuItem, updatedBy string) (*CatalogConfig, error)
	List(ctx context.Context, limit int) ([]CatalogConfig, error)
}

// CartsRepositoryInterface defines the interface for carts repository operations.
type CartsRepositoryInterface interface {
	Get(ctx context.Context, id string) (*model.Cart, error)
	Save(ctx context.Context, cart *model.Cart) error
	Delete(ctx context.Context, id string) error
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}

// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/Reidvanvliet/golden-chopsticks-service/internal/circuitbreaker"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/domain/model"
)

// CatalogRepositoryWithCircuitBreaker wraps CatalogRepository with circuit breaker protection.
type CatalogRepositoryWithCircuitBreaker struct {
	repo           *CatalogRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCatalogRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewCatalogRepositoryWithCircuitBreaker(repo *CatalogRepository, cb *circuitbreaker.CircuitBreaker) *CatalogRepositoryWithCircuitBreaker {
	return &CatalogRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetActive returns the active catalog with circuit breaker protection.
// When the circuit is open it returns nil so callers fall back to the
// default seeded catalog.
func (r *CatalogRepositoryWithCircuitBreaker) GetActive(ctx context.Context) (*CatalogConfig, error) {
	var result *CatalogConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetActive(ctx)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil, nil
	}
	return result, err
}

// Create inserts a new catalog version with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) Create(ctx context.Context, combos []ComboDefinition, createdBy string) (*CatalogConfig, error) {
	var result *CatalogConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, combos, createdBy)
		return cbErr
	})
	return result, err
}

// ReplaceItems swaps a combo's item pool with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) ReplaceItems(ctx context.Context, comboID int, items []model.MenuItem, updatedBy string) (*CatalogConfig, error) {
	var result *CatalogConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ReplaceItems(ctx, comboID, items, updatedBy)
		return cbErr
	})
	return result, err
}

// List returns catalog versions with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]CatalogConfig, error) {
	var result []CatalogConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *CatalogRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// CartsRepositoryWithCircuitBreaker wraps CartsRepository with circuit breaker protection.
type CartsRepositoryWithCircuitBreaker struct {
	repo           *CartsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCartsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewCartsRepositoryWithCircuitBreaker(repo *CartsRepository, cb *circuitbreaker.CircuitBreaker) *CartsRepositoryWithCircuitBreaker {
	return &CartsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Get returns a cart with circuit breaker protection.
func (r *CartsRepositoryWithCircuitBreaker) Get(ctx context.Context, id string) (*model.Cart, error) {
	var result *model.Cart
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Get(ctx, id)
		return cbErr
	})
	return result, err
}

// Save upserts a cart with circuit breaker protection.
func (r *CartsRepositoryWithCircuitBreaker) Save(ctx context.Context, cart *model.Cart) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Save(ctx, cart)
	})
}

// Delete removes a cart with circuit breaker protection.
func (r *CartsRepositoryWithCircuitBreaker) Delete(ctx context.Context, id string) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Delete(ctx, id)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *CartsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

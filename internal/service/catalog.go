package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Reidvanvliet/golden-chopsticks-service/internal/domain/model"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// ErrComboNotFound is returned when a combo id is not in the active catalog.
var ErrComboNotFound = errors.New("combo not found")

// CatalogService provides combo catalog operations.
type CatalogService interface {
	// GetCombos returns the active catalog's combo definitions.
	GetCombos(ctx context.Context) ([]repository.ComboDefinition, error)
	// GetCombo returns one combo with its item pool.
	GetCombo(ctx context.Context, comboID int) (*repository.ComboDefinition, error)
	// Replace installs a new catalog version and invalidates caches.
	Replace(ctx context.Context, combos []repository.ComboDefinition, createdBy string) (*repository.CatalogConfig, error)
	// ReplaceItems swaps one combo's item pool and invalidates caches.
	ReplaceItems(ctx context.Context, comboID int, items []model.MenuItem, updatedBy string) (*repository.CatalogConfig, error)
	// History returns past catalog versions, newest first.
	History(ctx context.Context, limit int) ([]repository.CatalogConfig, error)
	// InvalidateCache drops the cached catalog snapshot.
	InvalidateCache()
}

// CatalogServiceImpl implements CatalogService with a short-lived in-process
// snapshot cache in front of MongoDB. When Mongo holds no catalog the
// default combination menu is served (and the repository seeded at startup
// through EnsureSeeded).
type CatalogServiceImpl struct {
	catalogRepo repository.CatalogRepositoryInterface

	mu        sync.RWMutex
	cached    []repository.ComboDefinition
	expiresAt time.Time
	ttl       time.Duration
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(catalogRepo repository.CatalogRepositoryInterface, cacheTTL time.Duration) *CatalogServiceImpl {
	return &CatalogServiceImpl{
		catalogRepo: catalogRepo,
		ttl:         cacheTTL,
	}
}

// EnsureSeeded installs the default combination menu when Mongo holds no
// active catalog. Called once at startup.
func (s *CatalogServiceImpl) EnsureSeeded(ctx context.Context) error {
	if s.catalogRepo == nil {
		return ErrRepositoryNotConfigured
	}

	config, err := s.catalogRepo.GetActive(ctx)
	if err != nil {
		return err
	}
	if config != nil {
		return nil
	}

	_, err = s.catalogRepo.Create(ctx, DefaultCatalog(), "system")
	return err
}

// GetCombos returns the active combo definitions, from cache when fresh.
// Repository failures and an empty database both fall back to the default
// menu so the storefront keeps working.
func (s *CatalogServiceImpl) GetCombos(ctx context.Context) ([]repository.ComboDefinition, error) {
	s.mu.RLock()
	if s.cached != nil && time.Now().Before(s.expiresAt) {
		combos := s.cached
		s.mu.RUnlock()
		return combos, nil
	}
	s.mu.RUnlock()

	if s.catalogRepo == nil {
		return DefaultCatalog(), nil
	}

	config, err := s.catalogRepo.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	combos := DefaultCatalog()
	if config != nil {
		combos = config.Combos
	}

	s.mu.Lock()
	s.cached = combos
	s.expiresAt = time.Now().Add(s.ttl)
	s.mu.Unlock()

	return combos, nil
}

// GetCombo returns one combo definition by id.
func (s *CatalogServiceImpl) GetCombo(ctx context.Context, comboID int) (*repository.ComboDefinition, error) {
	combos, err := s.GetCombos(ctx)
	if err != nil {
		return nil, err
	}
	for i := range combos {
		if combos[i].ID == comboID {
			return &combos[i], nil
		}
	}
	return nil, ErrComboNotFound
}

// Replace installs a new catalog version.
func (s *CatalogServiceImpl) Replace(ctx context.Context, combos []repository.ComboDefinition, createdBy string) (*repository.CatalogConfig, error) {
	if s.catalogRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	config, err := s.catalogRepo.Create(ctx, combos, createdBy)
	if err != nil {
		return nil, err
	}
	s.InvalidateCache()
	return config, nil
}

// ReplaceItems swaps one combo's item pool in the active catalog.
func (s *CatalogServiceImpl) ReplaceItems(ctx context.Context, comboID int, items []model.MenuItem, updatedBy string) (*repository.CatalogConfig, error) {
	if s.catalogRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	config, err := s.catalogRepo.ReplaceItems(ctx, comboID, items, updatedBy)
	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, ErrComboNotFound
	}
	s.InvalidateCache()
	return config, nil
}

// History returns past catalog versions.
func (s *CatalogServiceImpl) History(ctx context.Context, limit int) ([]repository.CatalogConfig, error) {
	if s.catalogRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.catalogRepo.List(ctx, limit)
}

// InvalidateCache drops the cached catalog snapshot.
func (s *CatalogServiceImpl) InvalidateCache() {
	s.mu.Lock()
	s.cached = nil
	s.expiresAt = time.Time{}
	s.mu.Unlock()
}

package repository

import (
	"context"
	"sync"

	"github.com/Reidvanvliet/golden-chopsticks-service/internal/domain/model"
)

// InMemoryCartsRepository keeps carts in process memory. It backs the cart
// service when MongoDB is disabled, so a single instance still serves the
// full storefront without persistence.
type InMemoryCartsRepository struct {
	mu    sync.RWMutex
	carts map[string]model.Cart
}

// NewInMemoryCartsRepository creates an empty in-memory carts repository.
func NewInMemoryCartsRepository() *InMemoryCartsRepository {
	return &InMemoryCartsRepository{
		carts: make(map[string]model.Cart),
	}
}

// Get returns the cart with the given id, or nil if it does not exist.
func (r *InMemoryCartsRepository) Get(ctx context.Context, id string) (*model.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[id]
	if !ok {
		return nil, nil
	}
	copied := cart
	copied.Items = append([]model.CartLineItem(nil), cart.Items...)
	return &copied, nil
}

// Save stores a snapshot of the cart.
func (r *InMemoryCartsRepository) Save(ctx context.Context, cart *model.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *cart
	copied.Items = append([]model.CartLineItem(nil), cart.Items...)
	r.carts[cart.ID] = copied
	return nil
}

// Delete removes the cart with the given id. Missing ids are a no-op.
func (r *InMemoryCartsRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, id)
	return nil
}

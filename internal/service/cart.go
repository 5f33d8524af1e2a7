package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Reidvanvliet/golden-chopsticks-service/internal/domain/model"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/metrics"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/repository"
)

// ErrCartNotFound is returned for unknown or expired cart ids.
var ErrCartNotFound = errors.New("cart not found")

// CartService manages shopping carts.
//
// Ordinary items merge by line id with the unit price frozen at first add.
// Combo lines are always appended under a fresh synthesized id, even when
// two customizations are identical.
type CartService interface {
	Create(ctx context.Context) (*model.Cart, error)
	Get(ctx context.Context, cartID string) (*model.Cart, error)
	// AddItem adds an ordinary item, merging with an existing line.
	AddItem(ctx context.Context, cartID, lineID, name string, price model.Cents, quantity int) (*model.Cart, error)
	// AddCombo appends a finalized combo customization as a new line.
	AddCombo(ctx context.Context, cartID string, combo model.Combo, selection model.Selection, price model.Cents) (*model.Cart, error)
	// RemoveItem decrements a line's quantity, dropping the line at zero.
	// With all set, the line is removed outright. Unknown ids are no-ops.
	RemoveItem(ctx context.Context, cartID, lineID string, all bool) (*model.Cart, error)
	// Clear empties the cart.
	Clear(ctx context.Context, cartID string) (*model.Cart, error)
}

// CartServiceImpl implements CartService on top of the carts repository.
// The full cart snapshot is written back after every mutation; per-cart
// writes are serialized through a keyed mutex.
type CartServiceImpl struct {
	cartsRepo repository.CartsRepositoryInterface
	locks     *keyedMutex
}

// NewCartService creates a new cart service.
func NewCartService(cartsRepo repository.CartsRepositoryInterface) *CartServiceImpl {
	return &CartServiceImpl{
		cartsRepo: cartsRepo,
		locks:     newKeyedMutex(64),
	}
}

// Create opens an empty cart.
func (s *CartServiceImpl) Create(ctx context.Context) (*model.Cart, error) {
	if s.cartsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	now := time.Now()
	cart := &model.Cart{
		ID:        uuid.NewString(),
		Items:     []model.CartLineItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.cartsRepo.Save(ctx, cart); err != nil {
		return nil, err
	}

	metrics.RecordCartMutation("create")
	return cart, nil
}

// Get returns the cart with the given id.
func (s *CartServiceImpl) Get(ctx context.Context, cartID string) (*model.Cart, error) {
	if s.cartsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	cart, err := s.cartsRepo.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}
	return cart, nil
}

// AddItem adds quantity units of an ordinary item. When the line already
// exists only its quantity grows; the stored unit price stays as it was
// when the line was first added.
func (s *CartServiceImpl) AddItem(ctx context.Context, cartID, lineID, name string, price model.Cents, quantity int) (*model.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}

	return s.update(ctx, cartID, "add_item", func(cart *model.Cart) {
		if line := cart.Find(lineID); line != nil {
			line.Quantity += quantity
			return
		}
		cart.Items = append(cart.Items, model.CartLineItem{
			LineID:   lineID,
			Name:     name,
			Price:    price,
			Quantity: quantity,
		})
	})
}

// AddCombo appends a finalized combo customization under a fresh line id.
func (s *CartServiceImpl) AddCombo(ctx context.Context, cartID string, combo model.Combo, selection model.Selection, price model.Cents) (*model.Cart, error) {
	return s.update(ctx, cartID, "add_combo", func(cart *model.Cart) {
		details := combo
		cart.Items = append(cart.Items, model.CartLineItem{
			LineID:          model.NewComboLineID(combo.ID, time.Now()),
			Name:            combo.Name,
			Price:           price,
			Quantity:        1,
			IsCombo:         true,
			ComboID:         combo.ID,
			SelectedItems:   selection.SelectedItems,
			AdditionalItems: selection.AdditionalItems,
			BaseChoice:      selection.BaseChoice,
			ComboDetails:    &details,
		})
	})
}

// RemoveItem decrements the line or removes it. Missing line ids leave the
// cart untouched.
func (s *CartServiceImpl) RemoveItem(ctx context.Context, cartID, lineID string, all bool) (*model.Cart, error) {
	return s.update(ctx, cartID, "remove_item", func(cart *model.Cart) {
		line := cart.Find(lineID)
		if line == nil {
			return
		}
		if all || line.Quantity <= 1 {
			cart.Remove(lineID)
			return
		}
		line.Quantity--
	})
}

// Clear empties the cart but keeps the document alive.
func (s *CartServiceImpl) Clear(ctx context.Context, cartID string) (*model.Cart, error) {
	return s.update(ctx, cartID, "clear", func(cart *model.Cart) {
		cart.Items = []model.CartLineItem{}
	})
}

// update loads, mutates and writes back one cart under its keyed lock.
func (s *CartServiceImpl) update(ctx context.Context, cartID, mutation string, fn func(*model.Cart)) (*model.Cart, error) {
	if s.cartsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	unlock := s.locks.Lock(cartID)
	defer unlock()

	cart, err := s.cartsRepo.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}

	fn(cart)
	cart.UpdatedAt = time.Now()

	if err := s.cartsRepo.Save(ctx, cart); err != nil {
		return nil, err
	}

	metrics.RecordCartMutation(mutation)
	return cart, nil
}

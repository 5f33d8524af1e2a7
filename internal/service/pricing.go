package service

import (
	"time"

	"github.com/Reidvanvliet/golden-chopsticks-service/internal/domain/model"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/service/cache"
)

// Pricer defines the interface for combo pricing operations.
type Pricer interface {
	// Quote prices a selection against a combo. It never fails: incomplete
	// selections produce a deterministic partial total.
	Quote(combo model.Combo, selection model.Selection) model.Quote
	// InvalidateCache clears the price curve cache (useful when the catalog changes)
	InvalidateCache()
}

// PricerOption configures a PricerService.
type PricerOption func(*PricerService)

// PricerService implements Pricer. Totals are computed from the combo's
// pricing strategy alone; nothing in the engine dispatches on combo ids.
// Price curves depend only on the combo and the two pool sizes, so they are
// cached under a packed integer key.
type PricerService struct {
	cache cache.Cache
}

// NewPricerService creates a new PricerService with the given options.
func NewPricerService(opts ...PricerOption) *PricerService {
	s := &PricerService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithQuoteCache enables price curve caching with the specified capacity and TTL.
func WithQuoteCache(capacity int, ttl time.Duration) PricerOption {
	return func(s *PricerService) {
		if capacity > 0 {
			s.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithQuoteCacheInterface allows injecting a custom cache implementation.
func WithQuoteCacheInterface(c cache.Cache) PricerOption {
	return func(s *PricerService) {
		s.cache = c
	}
}

// curveKey packs (combo id, selected count, extras count) into one int.
// Pool sizes are far below 1024 in practice.
func curveKey(comboID, selected, extras int) int {
	return comboID<<20 | selected<<10 | extras
}

// Quote prices the selection and attaches the per-item breakdown in pool
// order: entree picks first, then paid extras, both in insertion order.
func (s *PricerService) Quote(combo model.Combo, selection model.Selection) model.Quote {
	curve := s.curve(combo, len(selection.SelectedItems), len(selection.AdditionalItems))

	quote := model.Quote{
		ComboID:       combo.ID,
		Total:         curve.Total,
		Items:         make([]model.ItemPrice, 0, selection.ItemCount()),
		NextItemPrice: curve.NextItemPrice,
		Complete:      selection.IsComplete(combo),
	}

	pos := 0
	for _, id := range selection.SelectedItems {
		quote.Items = append(quote.Items, model.ItemPrice{
			ItemID:   id,
			Position: pos + 1,
			Price:    curve.Marginals[pos],
		})
		pos++
	}
	for _, id := range selection.AdditionalItems {
		quote.Items = append(quote.Items, model.ItemPrice{
			ItemID:     id,
			Position:   pos + 1,
			Price:      curve.Marginals[pos],
			Additional: true,
		})
		pos++
	}

	return quote
}

// curve returns the price curve for the given pool shape, consulting the
// cache when one is configured.
func (s *PricerService) curve(combo model.Combo, selected, extras int) model.PriceCurve {
	key := curveKey(combo.ID, selected, extras)

	if s.cache != nil {
		if curve, ok := s.cache.Get(key); ok {
			return curve
		}
	}

	curve := computeCurve(combo, selected, extras)

	if s.cache != nil {
		s.cache.Set(key, curve)
	}

	return curve
}

// computeCurve builds the curve from the combo's pricing strategy.
func computeCurve(combo model.Combo, selected, extras int) model.PriceCurve {
	switch combo.Pricing {
	case model.PricingLadder:
		return ladderCurve(combo, selected+extras)
	default:
		return linearCurve(combo, selected, extras)
	}
}

// ladderCurve pools both selection lists and prices the combined count on
// the combo's step ladder.
func ladderCurve(combo model.Combo, count int) model.PriceCurve {
	ladder := combo.Ladder
	if ladder == nil {
		return model.PriceCurve{Total: combo.BasePrice, Marginals: make([]model.Cents, count)}
	}

	marginals := make([]model.Cents, count)
	for i := range marginals {
		marginals[i] = ladder.Marginal(i + 1)
	}

	return model.PriceCurve{
		Total:         ladder.Total(count),
		Marginals:     marginals,
		NextItemPrice: ladder.Marginal(count + 1),
	}
}

// linearCurve prices the combo as base price plus a flat amount per paid
// extra. Entree picks are covered by the base price; base choice never
// affects the total.
func linearCurve(combo model.Combo, selected, extras int) model.PriceCurve {
	marginals := make([]model.Cents, selected+extras)
	for i := selected; i < selected+extras; i++ {
		marginals[i] = combo.AdditionalItemPrice
	}

	next := combo.AdditionalItemPrice
	if selected < combo.MaxSelections() {
		next = 0
	}

	return model.PriceCurve{
		Total:         combo.BasePrice + model.Cents(extras)*combo.AdditionalItemPrice,
		Marginals:     marginals,
		NextItemPrice: next,
	}
}

// InvalidateCache clears the price curve cache.
func (s *PricerService) InvalidateCache() {
	if s.cache != nil {
		if cacheWithClear, ok := s.cache.(interface{ Clear() }); ok {
			cacheWithClear.Clear()
		}
	}
}

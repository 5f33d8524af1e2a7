package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Reidvanvliet/golden-chopsticks-service/internal/domain/model"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/metrics"
)

// Typed selection errors. The HTTP layer maps these onto status codes and
// translated messages; the engine itself never mutates state on rejection.
var (
	// ErrSessionNotFound is returned for unknown or expired session ids.
	ErrSessionNotFound = errors.New("selection session not found")
	// ErrSelectionFull is returned when adding an entree past the combo's slot count.
	ErrSelectionFull = errors.New("all entree selections are already filled")
	// ErrBaseChoiceNotAllowed is returned for base choices on combos without one.
	ErrBaseChoiceNotAllowed = errors.New("combo does not take a base choice")
	// ErrUnknownItem is returned when the item is not in the combo's pool.
	ErrUnknownItem = errors.New("item is not available in this combo")
	// ErrItemInOtherPool is returned when an item would end up in both pools.
	ErrItemInOtherPool = errors.New("item is already chosen in the other pool")
	// ErrNotEntree is returned when a base option is toggled as an entree.
	ErrNotEntree = errors.New("item is not an entree")
	// ErrIncompleteSelection is returned when finalizing an unfinished session.
	ErrIncompleteSelection = errors.New("selection is not complete")
)

// SessionState is the client-facing view of a selection session.
type SessionState struct {
	ID        string          `json:"id"`
	Selection model.Selection `json:"selection"`
	Quote     model.Quote     `json:"quote"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// SelectionService manages combo customization sessions.
type SelectionService interface {
	Start(ctx context.Context, comboID int) (*SessionState, error)
	Get(ctx context.Context, sessionID string) (*SessionState, error)
	SetBase(ctx context.Context, sessionID string, itemID int) (*SessionState, error)
	ToggleEntree(ctx context.Context, sessionID string, itemID int) (*SessionState, error)
	ToggleExtra(ctx context.Context, sessionID string, itemID int) (*SessionState, error)
	Cancel(ctx context.Context, sessionID string) error
	// Finalize returns the selection and frozen quote of a complete session
	// and discards the session. Fails with ErrIncompleteSelection otherwise.
	Finalize(ctx context.Context, sessionID string) (*model.Selection, *model.Quote, *model.Combo, error)
}

// session is the store-internal record. Each session is guarded by its own
// mutex; one customer drives one session, but nothing stops a retried
// request from racing itself.
type session struct {
	mu        sync.Mutex
	id        string
	selection model.Selection
	updatedAt time.Time
}

// SelectionServiceImpl implements SelectionService with an in-memory store.
// Sessions are short-lived UI state; they expire after the configured idle
// TTL and are not persisted.
type SelectionServiceImpl struct {
	catalog CatalogService
	pricer  Pricer

	mu         sync.RWMutex
	sessions   map[string]*session
	ttl        time.Duration
	sweepEvery time.Duration
	stopCh     chan struct{}
	stopOnce   sync.Once
}

// SelectionOption configures a SelectionServiceImpl.
type SelectionOption func(*SelectionServiceImpl)

// WithSweepInterval overrides how often the sweeper scans for idle sessions.
func WithSweepInterval(d time.Duration) SelectionOption {
	return func(s *SelectionServiceImpl) {
		if d > 0 {
			s.sweepEvery = d
		}
	}
}

// NewSelectionService creates a new selection service. A background sweeper
// evicts sessions idle for longer than ttl.
func NewSelectionService(catalog CatalogService, pricer Pricer, ttl time.Duration, opts ...SelectionOption) *SelectionServiceImpl {
	s := &SelectionServiceImpl{
		catalog:    catalog,
		pricer:     pricer,
		sessions:   make(map[string]*session),
		ttl:        ttl,
		sweepEvery: time.Minute,
		stopCh:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	go s.sweep()
	return s
}

// Stop shuts down the session sweeper.
func (s *SelectionServiceImpl) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
}

func (s *SelectionServiceImpl) sweep() {
	ticker := time.NewTicker(s.sweepEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().Add(-s.ttl)
			s.mu.Lock()
			for id, sess := range s.sessions {
				// A locked session is mid-mutation and about to refresh
				// its timestamp; leave it for the next pass.
				if !sess.mu.TryLock() {
					continue
				}
				idle := sess.updatedAt.Before(cutoff)
				sess.mu.Unlock()
				if idle {
					delete(s.sessions, id)
					metrics.RecordSessionEvent("expired")
				}
			}
			s.mu.Unlock()
		case <-s.stopCh:
			return
		}
	}
}

// Start opens a fresh session for the given combo. Any previous state for
// the customer is irrelevant: every customization starts clean.
func (s *SelectionServiceImpl) Start(ctx context.Context, comboID int) (*SessionState, error) {
	def, err := s.catalog.GetCombo(ctx, comboID)
	if err != nil {
		return nil, err
	}

	sess := &session{
		id: uuid.NewString(),
		selection: model.Selection{
			ComboID:         def.ID,
			SelectedItems:   []int{},
			AdditionalItems: []int{},
		},
		updatedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	metrics.RecordSessionEvent("started")
	return s.state(sess, def.Combo), nil
}

// Get returns the current state of a session.
func (s *SelectionServiceImpl) Get(ctx context.Context, sessionID string) (*SessionState, error) {
	return s.mutate(ctx, sessionID, func(sess *session, def *ComboView) error {
		return nil
	})
}

// SetBase sets the mutually exclusive base choice. Choosing again simply
// overwrites; combos without a base choice reject the call.
func (s *SelectionServiceImpl) SetBase(ctx context.Context, sessionID string, itemID int) (*SessionState, error) {
	return s.mutate(ctx, sessionID, func(sess *session, def *ComboView) error {
		if !def.Combo.RequiresBaseChoice {
			return ErrBaseChoiceNotAllowed
		}
		item := def.Item(itemID)
		if item == nil {
			return ErrUnknownItem
		}
		if item.IsEntree {
			return ErrUnknownItem
		}
		id := itemID
		sess.selection.BaseChoice = &id
		return nil
	})
}

// ToggleEntree flips an entree in or out of the selection slots. Adding past
// the slot count fails with ErrSelectionFull; removing always succeeds.
func (s *SelectionServiceImpl) ToggleEntree(ctx context.Context, sessionID string, itemID int) (*SessionState, error) {
	return s.mutate(ctx, sessionID, func(sess *session, def *ComboView) error {
		item := def.Item(itemID)
		if item == nil {
			return ErrUnknownItem
		}
		if !item.IsEntree {
			return ErrNotEntree
		}
		if sess.selection.HasAdditional(itemID) {
			return ErrItemInOtherPool
		}
		_, applied := sess.selection.ToggleSelected(itemID, def.Combo.MaxSelections())
		if !applied {
			return ErrSelectionFull
		}
		return nil
	})
}

// ToggleExtra flips a paid extra in or out of the additional pool.
func (s *SelectionServiceImpl) ToggleExtra(ctx context.Context, sessionID string, itemID int) (*SessionState, error) {
	return s.mutate(ctx, sessionID, func(sess *session, def *ComboView) error {
		item := def.Item(itemID)
		if item == nil {
			return ErrUnknownItem
		}
		if !item.IsEntree {
			return ErrNotEntree
		}
		if sess.selection.HasSelected(itemID) {
			return ErrItemInOtherPool
		}
		sess.selection.ToggleAdditional(itemID)
		return nil
	})
}

// Cancel discards the session. Cancelling twice is not an error.
func (s *SelectionServiceImpl) Cancel(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	_, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	if ok {
		metrics.RecordSessionEvent("cancelled")
	}
	return nil
}

// Finalize checks completeness, prices the selection one last time and
// removes the session from the store.
func (s *SelectionServiceImpl) Finalize(ctx context.Context, sessionID string) (*model.Selection, *model.Quote, *model.Combo, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil, nil, ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	def, err := s.catalog.GetCombo(ctx, sess.selection.ComboID)
	if err != nil {
		return nil, nil, nil, err
	}

	if !sess.selection.IsComplete(def.Combo) {
		return nil, nil, nil, ErrIncompleteSelection
	}

	selection := sess.selection.Clone()
	quote := s.pricer.Quote(def.Combo, selection)
	combo := def.Combo

	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	metrics.RecordSessionEvent("finalized")
	return &selection, &quote, &combo, nil
}

// ComboView gives mutators indexed access to a combo's item pool.
type ComboView struct {
	Combo model.Combo
	items map[int]model.MenuItem
}

// Item returns the pool item with the given id, or nil.
func (v *ComboView) Item(itemID int) *model.MenuItem {
	if item, ok := v.items[itemID]; ok {
		return &item
	}
	return nil
}

// mutate runs fn under the session lock against the session's combo, then
// rebuilds the state with a fresh quote.
func (s *SelectionServiceImpl) mutate(ctx context.Context, sessionID string, fn func(*session, *ComboView) error) (*SessionState, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	def, err := s.catalog.GetCombo(ctx, sess.selection.ComboID)
	if err != nil {
		return nil, err
	}

	view := &ComboView{
		Combo: def.Combo,
		items: make(map[int]model.MenuItem, len(def.Items)),
	}
	for _, item := range def.Items {
		view.items[item.ID] = item
	}

	if err := fn(sess, view); err != nil {
		return nil, err
	}

	sess.updatedAt = time.Now()
	return s.state(sess, def.Combo), nil
}

// state builds the client-facing snapshot. Callers must hold the session lock.
func (s *SelectionServiceImpl) state(sess *session, combo model.Combo) *SessionState {
	selection := sess.selection.Clone()
	return &SessionState{
		ID:        sess.id,
		Selection: selection,
		Quote:     s.pricer.Quote(combo, selection),
		UpdatedAt: sess.updatedAt,
	}
}

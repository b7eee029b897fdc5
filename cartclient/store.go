// Package cartclient is the client half of the cart: an in-memory store that
// mirrors every edit to local storage and, while a user is signed in,
// pushes the whole line list to the server after a short quiet period.
package cartclient

import (
	"context"
	"sync"
	"time"

	"github.com/YeshwantRaoB/organizon-web/models"

	"go.uber.org/zap"
)

const (
	DefaultDebounce    = 500 * time.Millisecond
	defaultSaveTimeout = 10 * time.Second
)

// Product is what a catalogue page hands to AddToCart.
type Product struct {
	ID       string
	Name     string
	Price    float64
	ImageURL string
	Unit     string
}

// Persister keeps the cart across restarts.
type Persister interface {
	Load() ([]models.CartItem, error)
	Save(items []models.CartItem) error
}

// Remote is the server cart endpoint.
type Remote interface {
	Fetch(ctx context.Context, token string) ([]models.CartItem, error)
	Save(ctx context.Context, token string, items []models.CartItem) error
}

// TokenSource returns a current bearer token. It is called for every server
// request so an identity provider can refresh expired tokens.
type TokenSource func(ctx context.Context) (string, error)

// StaticToken always returns tok.
func StaticToken(tok string) TokenSource {
	return func(context.Context) (string, error) { return tok, nil }
}

// Notifier shows a short confirmation to the user.
type Notifier interface {
	Notify(msg string)
}

type NotifierFunc func(msg string)

func (f NotifierFunc) Notify(msg string) { f(msg) }

type StoreConfig struct {
	Persister Persister
	Remote    Remote
	Notifier  Notifier
	// Debounce is the quiet period before a server save. Zero means DefaultDebounce.
	Debounce time.Duration
	Logger   *zap.Logger
}

// Store is safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	items    []models.CartItem
	tokens   TokenSource
	timer    *time.Timer
	gen      uint64
	inflight sync.WaitGroup

	persister Persister
	remote    Remote
	notifier  Notifier
	debounce  time.Duration
	log       *zap.Logger
}

// NewStore restores the persisted cart, if any.
func NewStore(cfg StoreConfig) *Store {
	s := &Store{
		items:     []models.CartItem{},
		persister: cfg.Persister,
		remote:    cfg.Remote,
		notifier:  cfg.Notifier,
		debounce:  cfg.Debounce,
		log:       cfg.Logger,
	}
	if s.debounce <= 0 {
		s.debounce = DefaultDebounce
	}
	if s.log == nil {
		s.log = zap.L()
	}
	if s.persister != nil {
		items, err := s.persister.Load()
		if err != nil {
			s.log.Warn("Failed to restore cart", zap.Error(err))
		} else if items != nil {
			s.items = items
		}
	}
	return s
}

// Items returns a copy of the current lines.
func (s *Store) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// AddToCart bumps the product's line by one, or appends it with quantity 1.
func (s *Store) AddToCart(p Product) {
	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		s.items = append(s.items, models.CartItem{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Quantity: 1,
			ImageURL: p.ImageURL,
			Unit:     p.Unit,
		})
	}
	s.changedLocked(true)
	s.mu.Unlock()

	if s.notifier != nil {
		s.notifier.Notify(p.Name + " added to cart")
	}
}

// RemoveFromCart drops the line for id. Unknown ids are ignored.
func (s *Store) RemoveFromCart(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.changedLocked(true)
			return
		}
	}
}

// UpdateQuantity sets the line's quantity as given. Callers clamp.
func (s *Store) UpdateQuantity(id string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			s.changedLocked(true)
			return
		}
	}
}

// ClearCart empties the cart. With an active session the server copy is
// emptied too, without waiting for the debounce.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = []models.CartItem{}
	s.changedLocked(false)
	s.stopTimerLocked()
	if s.tokens != nil && s.remote != nil {
		s.saveAsync(s.tokens, []models.CartItem{})
	}
}

// SetCart replaces the lines wholesale. It is used to hydrate from the
// server and so never schedules a save.
func (s *Store) SetCart(items []models.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]models.CartItem{}, items...)
	s.changedLocked(false)
}

// StartSession enables server saves, authorised by tokens.
func (s *Store) StartSession(tokens TokenSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = tokens
}

// EndSession disables server saves and drops any pending one.
func (s *Store) EndSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = nil
	s.stopTimerLocked()
}

// Wait blocks until every save already handed to the remote has returned.
func (s *Store) Wait() {
	s.inflight.Wait()
}

// Close cancels a pending debounced save and waits for in-flight ones.
func (s *Store) Close() {
	s.mu.Lock()
	s.stopTimerLocked()
	s.mu.Unlock()
	s.Wait()
}

func (s *Store) snapshot() []models.CartItem {
	return append([]models.CartItem{}, s.items...)
}

// changedLocked persists the new state and, if asked, schedules a save.
func (s *Store) changedLocked(schedule bool) {
	if s.persister != nil {
		if err := s.persister.Save(s.snapshot()); err != nil {
			s.log.Warn("Failed to persist cart", zap.Error(err))
		}
	}
	if schedule && s.tokens != nil && s.remote != nil {
		s.stopTimerLocked()
		gen := s.gen
		s.timer = time.AfterFunc(s.debounce, func() { s.flush(gen) })
	}
}

func (s *Store) stopTimerLocked() {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// flush sends whatever the cart holds when the quiet period ends. A timer
// that fired after being superseded finds a newer gen and does nothing.
func (s *Store) flush(gen uint64) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	tokens := s.tokens
	items := s.snapshot()
	if tokens != nil {
		s.saveAsync(tokens, items)
	}
	s.mu.Unlock()
}

// saveAsync must be called with s.mu held so Wait observes the Add.
func (s *Store) saveAsync(tokens TokenSource, items []models.CartItem) {
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		ctx, cancel := context.WithTimeout(context.Background(), defaultSaveTimeout)
		defer cancel()
		token, err := tokens(ctx)
		if err != nil {
			s.log.Warn("Cart save skipped, no token", zap.Int("items", len(items)), zap.Error(err))
			return
		}
		if err := s.remote.Save(ctx, token, items); err != nil {
			s.log.Warn("Cart save failed, dropping", zap.Int("items", len(items)), zap.Error(err))
		}
	}()
}

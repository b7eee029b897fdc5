package cartclient

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/YeshwantRaoB/organizon-web/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memPersister struct {
	mu    sync.Mutex
	items []models.CartItem
	saves int
}

func (p *memPersister) Load() ([]models.CartItem, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.items, nil
}

func (p *memPersister) Save(items []models.CartItem) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = items
	p.saves++
	return nil
}

type fakeRemote struct {
	mu       sync.Mutex
	server   []models.CartItem
	fetchErr error
	saveErr  error
	saves    [][]models.CartItem
	tokens   []string
}

func (r *fakeRemote) Fetch(_ context.Context, _ string) ([]models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fetchErr != nil {
		return nil, r.fetchErr
	}
	return append([]models.CartItem{}, r.server...), nil
}

func (r *fakeRemote) Save(_ context.Context, token string, items []models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves = append(r.saves, items)
	r.tokens = append(r.tokens, token)
	if r.saveErr != nil {
		return r.saveErr
	}
	r.server = items
	return nil
}

func (r *fakeRemote) saveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.saves)
}

func (r *fakeRemote) lastSave() []models.CartItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves[len(r.saves)-1]
}

var (
	rice   = Product{ID: "p1", Name: "Red Rice", Price: 120, Unit: "1 kg"}
	millet = Product{ID: "p2", Name: "Foxtail Millet", Price: 95, Unit: "500 g"}
)

func newTestStore(t *testing.T, remote Remote, debounce time.Duration) (*Store, *memPersister, *[]string) {
	t.Helper()
	var (
		mu       sync.Mutex
		messages []string
	)
	persister := &memPersister{}
	s := NewStore(StoreConfig{
		Persister: persister,
		Remote:    remote,
		Debounce:  debounce,
		Notifier: NotifierFunc(func(msg string) {
			mu.Lock()
			messages = append(messages, msg)
			mu.Unlock()
		}),
	})
	t.Cleanup(s.Close)
	return s, persister, &messages
}

func TestAddToCart_IncrementsExistingLine(t *testing.T) {
	s, persister, messages := newTestStore(t, nil, 0)

	s.AddToCart(rice)
	s.AddToCart(rice)
	s.AddToCart(millet)

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "1 kg", items[0].Unit)
	assert.Equal(t, 1, items[1].Quantity)
	assert.Equal(t, []string{"Red Rice added to cart", "Red Rice added to cart", "Foxtail Millet added to cart"}, *messages)
	assert.Equal(t, 3, persister.saves)
	assert.Len(t, persister.items, 2)
}

func TestRemoveAndUpdate(t *testing.T) {
	s, persister, _ := newTestStore(t, nil, 0)
	s.AddToCart(rice)
	s.AddToCart(millet)
	saves := persister.saves

	s.RemoveFromCart("missing")
	assert.Equal(t, saves, persister.saves)
	assert.Len(t, s.Items(), 2)

	s.UpdateQuantity("p2", 0)
	assert.Equal(t, 0, s.Items()[1].Quantity)

	s.RemoveFromCart("p1")
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ID)
}

func TestItemsReturnsCopy(t *testing.T) {
	s, _, _ := newTestStore(t, nil, 0)
	s.AddToCart(rice)

	items := s.Items()
	items[0].Quantity = 42
	assert.Equal(t, 1, s.Items()[0].Quantity)
}

func TestNewStore_RestoresPersistedCart(t *testing.T) {
	persister := &memPersister{items: []models.CartItem{{ID: "p1", Name: "Red Rice", Quantity: 3}}}
	s := NewStore(StoreConfig{Persister: persister})
	defer s.Close()

	require.Len(t, s.Items(), 1)
	assert.Equal(t, 3, s.Items()[0].Quantity)
}

func TestAnonymousCartIsNeverSaved(t *testing.T) {
	remote := &fakeRemote{}
	s, _, _ := newTestStore(t, remote, 5*time.Millisecond)

	s.AddToCart(rice)
	s.UpdateQuantity("p1", 4)
	s.ClearCart()
	time.Sleep(30 * time.Millisecond)
	s.Wait()

	assert.Equal(t, 0, remote.saveCount())
}

func TestDebouncedSaveCoalescesEdits(t *testing.T) {
	remote := &fakeRemote{}
	s, _, _ := newTestStore(t, remote, 50*time.Millisecond)
	s.StartSession(StaticToken("tok"))

	s.AddToCart(rice)
	s.AddToCart(rice)
	s.AddToCart(millet)

	assert.Eventually(t, func() bool { return remote.saveCount() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(80 * time.Millisecond)
	s.Wait()

	assert.Equal(t, 1, remote.saveCount())
	saved := remote.lastSave()
	require.Len(t, saved, 2)
	assert.Equal(t, 2, saved[0].Quantity)
	assert.Equal(t, "tok", remote.tokens[0])
}

func TestFailedSaveIsDropped(t *testing.T) {
	remote := &fakeRemote{saveErr: errors.New("boom")}
	s, _, _ := newTestStore(t, remote, 5*time.Millisecond)
	s.StartSession(StaticToken("tok"))

	s.AddToCart(rice)
	assert.Eventually(t, func() bool { return remote.saveCount() == 1 }, time.Second, 5*time.Millisecond)
	s.Wait()

	assert.Len(t, s.Items(), 1)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 1, remote.saveCount())
}

func TestClearCartWithSessionSavesEmptyCart(t *testing.T) {
	remote := &fakeRemote{}
	s, _, _ := newTestStore(t, remote, time.Hour)
	s.StartSession(StaticToken("tok"))
	s.AddToCart(rice)

	s.ClearCart()
	s.Wait()

	require.Equal(t, 1, remote.saveCount())
	assert.Empty(t, remote.lastSave())
	assert.Empty(t, s.Items())
}

func TestSetCartDoesNotScheduleSave(t *testing.T) {
	remote := &fakeRemote{}
	s, persister, _ := newTestStore(t, remote, 5*time.Millisecond)
	s.StartSession(StaticToken("tok"))

	s.SetCart([]models.CartItem{{ID: "p9", Quantity: 2}})
	time.Sleep(30 * time.Millisecond)
	s.Wait()

	assert.Equal(t, 0, remote.saveCount())
	assert.Len(t, persister.items, 1)
}

func TestEndSessionCancelsPendingSave(t *testing.T) {
	remote := &fakeRemote{}
	s, _, _ := newTestStore(t, remote, 30*time.Millisecond)
	s.StartSession(StaticToken("tok"))

	s.AddToCart(rice)
	s.EndSession()
	time.Sleep(60 * time.Millisecond)
	s.Wait()

	assert.Equal(t, 0, remote.saveCount())
}

func TestEachSaveAsksForAFreshToken(t *testing.T) {
	remote := &fakeRemote{}
	s, _, _ := newTestStore(t, remote, 5*time.Millisecond)

	var (
		mu    sync.Mutex
		calls int
	)
	s.StartSession(func(context.Context) (string, error) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		return fmt.Sprintf("tok-%d", calls), nil
	})

	s.AddToCart(rice)
	assert.Eventually(t, func() bool { return remote.saveCount() == 1 }, time.Second, 5*time.Millisecond)
	s.AddToCart(millet)
	assert.Eventually(t, func() bool { return remote.saveCount() == 2 }, time.Second, 5*time.Millisecond)
	s.Wait()

	remote.mu.Lock()
	defer remote.mu.Unlock()
	assert.Equal(t, []string{"tok-1", "tok-2"}, remote.tokens)
}

func TestSaveSkippedWhenTokenUnavailable(t *testing.T) {
	remote := &fakeRemote{}
	s, _, _ := newTestStore(t, remote, 5*time.Millisecond)
	s.StartSession(func(context.Context) (string, error) { return "", errors.New("signed out elsewhere") })

	s.AddToCart(rice)
	time.Sleep(30 * time.Millisecond)
	s.Wait()

	assert.Equal(t, 0, remote.saveCount())
	assert.Len(t, s.Items(), 1)
}

func TestLinesNeverOutnumberDistinctProducts(t *testing.T) {
	catalogue := []Product{
		rice,
		millet,
		{ID: "p3", Name: "Toor Dal"},
		{ID: "p4", Name: "Jaggery"},
	}
	rng := rand.New(rand.NewSource(11))

	for run := 0; run < 20; run++ {
		s := NewStore(StoreConfig{})
		added := map[string]bool{}
		for step := 0; step < 60; step++ {
			p := catalogue[rng.Intn(len(catalogue))]
			if rng.Intn(3) == 0 {
				s.RemoveFromCart(p.ID)
			} else {
				s.AddToCart(p)
				added[p.ID] = true
			}

			seen := map[string]bool{}
			for _, it := range s.Items() {
				require.False(t, seen[it.ID], "duplicate line for %s", it.ID)
				require.True(t, added[it.ID])
				seen[it.ID] = true
			}
			require.LessOrEqual(t, len(s.Items()), len(added))
		}
		s.Close()
	}
}

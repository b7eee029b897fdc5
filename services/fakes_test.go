package services_test

import (
	"context"
	"sync"

	"github.com/YeshwantRaoB/organizon-web/models"
	"github.com/YeshwantRaoB/organizon-web/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repositories shared by the service tests.

type memProducts struct {
	mu    sync.Mutex
	items []models.Product
}

func (m *memProducts) Find(_ context.Context, q models.ProductQuery) ([]models.Product, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Product{}
	for _, p := range m.items {
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (m *memProducts) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			p := m.items[i]
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memProducts) FindBySKU(_ context.Context, sku string) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].SKU == sku {
			p := m.items[i]
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memProducts) ExistsSKU(ctx context.Context, sku string) (bool, error) {
	_, err := m.FindBySKU(ctx, sku)
	return err == nil, nil
}

func (m *memProducts) Create(_ context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = primitive.NewObjectID()
	m.items = append(m.items, *p)
	return nil
}

func (m *memProducts) Update(_ context.Context, id primitive.ObjectID, set map[string]interface{}) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID != id {
			continue
		}
		if v, ok := set["name"].(string); ok {
			m.items[i].Name = v
		}
		if v, ok := set["price"].(float64); ok {
			m.items[i].Price = v
		}
		if v, ok := set["stock"].(int); ok {
			m.items[i].Stock = v
		}
		p := m.items[i]
		return &p, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memProducts) Delete(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			p := m.items[i]
			m.items = append(m.items[:i], m.items[i+1:]...)
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memProducts) DeleteAll(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := int64(len(m.items))
	m.items = nil
	return n, nil
}

func (m *memProducts) Stats(context.Context) (models.ProductStats, []models.CategoryCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := models.ProductStats{Total: int64(len(m.items))}
	counts := map[string]int64{}
	for _, p := range m.items {
		if p.Stock == 0 {
			s.OutOfStock++
		}
		if p.Stock > 0 && p.Stock < 10 {
			s.LowStock++
		}
		counts[p.Category]++
	}
	cats := []models.CategoryCount{}
	for name, n := range counts {
		cats = append(cats, models.CategoryCount{Name: name, Count: n})
	}
	return s, cats, nil
}

func (m *memProducts) EnsureIndexes(context.Context) error { return nil }

type memCarts struct {
	mu    sync.Mutex
	carts map[string][]models.CartItem
}

func newMemCarts() *memCarts { return &memCarts{carts: map[string][]models.CartItem{}} }

func (m *memCarts) Get(_ context.Context, userID string) (*models.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items, ok := m.carts[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &models.Cart{UserID: userID, Items: append([]models.CartItem(nil), items...)}, nil
}

func (m *memCarts) Save(_ context.Context, userID string, items []models.CartItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.carts[userID] = append([]models.CartItem{}, items...)
	return nil
}

type memOrders struct {
	mu   sync.Mutex
	docs []models.OrderDoc
	// writes counts UpdateStatus calls that reached storage.
	writes int
}

func (m *memOrders) FindByUser(_ context.Context, userID string) ([]models.OrderDoc, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.OrderDoc{}
	for _, d := range m.docs {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memOrders) FindAll(context.Context) ([]models.OrderDoc, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.OrderDoc{}, m.docs...), nil
}

func (m *memOrders) FindByID(_ context.Context, id primitive.ObjectID) (*models.OrderDoc, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.docs {
		if m.docs[i].ID == id {
			d := m.docs[i]
			return &d, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memOrders) UpdateStatus(_ context.Context, id primitive.ObjectID, status models.OrderStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++
	for i := range m.docs {
		if m.docs[i].ID == id {
			s := string(status)
			m.docs[i].Status = &s
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memOrders) Stats(context.Context) (models.OrderStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := models.OrderStats{Total: int64(len(m.docs))}
	for _, d := range m.docs {
		if d.Total != nil {
			s.Revenue += *d.Total
		}
	}
	return s, nil
}

type memAddresses struct {
	mu    sync.Mutex
	items []models.Address
}

func (m *memAddresses) ListByUser(_ context.Context, userID string) ([]models.Address, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Address{}
	for _, a := range m.items {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memAddresses) FindOne(_ context.Context, id primitive.ObjectID, userID string) (*models.Address, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id && m.items[i].UserID == userID {
			a := m.items[i]
			return &a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memAddresses) Create(_ context.Context, a *models.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a.ID = primitive.NewObjectID()
	m.items = append(m.items, *a)
	return nil
}

func (m *memAddresses) ClearDefaults(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].UserID == userID {
			m.items[i].IsDefault = false
		}
	}
	return nil
}

func (m *memAddresses) Replace(_ context.Context, a *models.Address) (*models.Address, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == a.ID && m.items[i].UserID == a.UserID {
			m.items[i] = *a
			out := *a
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memAddresses) Delete(_ context.Context, id primitive.ObjectID, userID string) (*models.Address, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id && m.items[i].UserID == userID {
			a := m.items[i]
			m.items = append(m.items[:i], m.items[i+1:]...)
			return &a, nil
		}
	}
	return nil, repository.ErrNotFound
}

type memAudit struct {
	mu      sync.Mutex
	entries []models.AuditLog
	err     error
}

func (m *memAudit) Append(_ context.Context, e *models.AuditLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, *e)
	return nil
}

type memSettings struct{ doc models.Settings }

func (m *memSettings) Get(context.Context) (models.Settings, error) {
	if m.doc == nil {
		return models.Settings{}, nil
	}
	return m.doc, nil
}

func (m *memSettings) Save(_ context.Context, s models.Settings) error {
	m.doc = s
	return nil
}

type memPages struct{ pages map[string]models.Page }

func (m *memPages) Get(_ context.Context, path string) (models.Page, error) {
	p, ok := m.pages[path]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (m *memPages) Save(_ context.Context, p models.Page) error {
	if m.pages == nil {
		m.pages = map[string]models.Page{}
	}
	m.pages[p["path"].(string)] = p
	return nil
}

func ptr[T any](v T) *T { return &v }

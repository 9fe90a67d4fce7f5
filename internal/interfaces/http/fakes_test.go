package http_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cafeteria-api/internal/application/dto"
	"github.com/jhoicas/Cafeteria-api/internal/domain"
	"github.com/jhoicas/Cafeteria-api/internal/domain/entity"
	"github.com/jhoicas/Cafeteria-api/internal/domain/repository"
)

// Fakes en memoria mínimos para ejercitar el router completo.

type memOrders struct {
	mu      sync.Mutex
	orders  map[string]*entity.Order
	items   map[string][]*entity.OrderItem
	history map[string][]*entity.OrderHistory
}

func newMemOrders() *memOrders {
	return &memOrders{
		orders:  map[string]*entity.Order{},
		items:   map[string][]*entity.OrderItem{},
		history: map[string][]*entity.OrderHistory{},
	}
}

func (m *memOrders) Create(_ context.Context, o *entity.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.orders {
		if e.Number == o.Number {
			return domain.ErrConflict
		}
	}
	cp := *o
	m.orders[o.ID] = &cp
	return nil
}

func (m *memOrders) CreateItems(_ context.Context, items []*entity.OrderItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range items {
		cp := *it
		m.items[it.OrderID] = append(m.items[it.OrderID], &cp)
	}
	return nil
}

func (m *memOrders) CreateHistory(_ context.Context, h *entity.OrderHistory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *h
	m.history[h.OrderID] = append(m.history[h.OrderID], &cp)
	return nil
}

func (m *memOrders) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.orders, id)
	delete(m.items, id)
	delete(m.history, id)
	return nil
}

func (m *memOrders) GetByID(_ context.Context, id string) (*entity.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (m *memOrders) GetForUpdate(ctx context.Context, id string) (*entity.Order, error) {
	return m.GetByID(ctx, id)
}

func (m *memOrders) UpdateStatus(_ context.Context, id, expected, next string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok || o.Status != expected {
		return domain.ErrConflict
	}
	o.Status = next
	o.UpdatedAt = at
	return nil
}

func (m *memOrders) List(_ context.Context, f repository.OrderFilter) ([]*entity.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Order
	for _, o := range m.orders {
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if len(f.Statuses) > 0 && !contains(f.Statuses, o.Status) {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *memOrders) ListItems(_ context.Context, orderID string) ([]*entity.OrderItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[orderID], nil
}

func (m *memOrders) ListItemsByOrderIDs(_ context.Context, ids []string) (map[string][]*entity.OrderItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[string][]*entity.OrderItem{}
	for _, id := range ids {
		out[id] = m.items[id]
	}
	return out, nil
}

func (m *memOrders) ListHistory(_ context.Context, orderID string) ([]*entity.OrderHistory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.history[orderID], nil
}

type orderTx struct{ orders *memOrders }

func (t orderTx) RunOrder(_ context.Context, fn func(orders repository.OrderRepository) error) error {
	return fn(t.orders)
}

type memProducts struct {
	mu       sync.Mutex
	products map[string]*entity.Product
}

func (m *memProducts) Create(_ context.Context, p *entity.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memProducts) GetByIDs(ctx context.Context, ids []string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range ids {
		if p, _ := m.GetByID(ctx, id); p != nil {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memProducts) Update(ctx context.Context, p *entity.Product) error { return m.Create(ctx, p) }

func (m *memProducts) List(_ context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Product
	for _, p := range m.products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type counter struct {
	mu sync.Mutex
	n  map[string]int
}

func (c *counter) Next(_ context.Context, day time.Time) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := day.Format(time.DateOnly)
	c.n[key]++
	return c.n[key], nil
}

type memInventory struct {
	mu        sync.Mutex
	items     map[string]*entity.InventoryItem
	movements []*entity.InventoryMovement
}

func (m *memInventory) Create(_ context.Context, it *entity.InventoryItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *it
	m.items[it.ID] = &cp
	return nil
}

func (m *memInventory) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (m *memInventory) GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return m.GetByID(ctx, id)
}

func (m *memInventory) UpdateQuantity(_ context.Context, id string, expected, next decimal.Decimal, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	it := m.items[id]
	if !it.Quantity.Equal(expected) {
		return domain.ErrConflict
	}
	it.Quantity = next
	it.UpdatedAt = at
	return nil
}

func (m *memInventory) List(_ context.Context, onlyLow bool) ([]*entity.InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.InventoryItem
	for _, it := range m.items {
		if onlyLow && !it.IsLowStock() {
			continue
		}
		cp := *it
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memInventory) ListLowStock(ctx context.Context) ([]*entity.InventoryItem, error) {
	out, _ := m.List(ctx, true)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Quantity.LessThan(out[j].Quantity) })
	return out, nil
}

type memMovements struct{ inv *memInventory }

func (m memMovements) Create(_ context.Context, mv *entity.InventoryMovement) error {
	m.inv.mu.Lock()
	defer m.inv.mu.Unlock()
	cp := *mv
	m.inv.movements = append(m.inv.movements, &cp)
	return nil
}

func (m memMovements) ListByItem(_ context.Context, itemID string, limit int) ([]*entity.InventoryMovement, error) {
	m.inv.mu.Lock()
	defer m.inv.mu.Unlock()
	var out []*entity.InventoryMovement
	for i := len(m.inv.movements) - 1; i >= 0 && len(out) < limit; i-- {
		if m.inv.movements[i].InventoryItemID == itemID {
			out = append(out, m.inv.movements[i])
		}
	}
	return out, nil
}

type inventoryTx struct{ inv *memInventory }

func (t inventoryTx) Run(_ context.Context, fn func(repository.InventoryRepository, repository.InventoryMovementRepository) error) error {
	return fn(t.inv, memMovements{inv: t.inv})
}

type memUsers struct{ users map[string]*entity.User }

func (m memUsers) Create(_ context.Context, u *entity.User) error {
	m.users[u.ID] = u
	return nil
}

func (m memUsers) GetByID(_ context.Context, id string) (*entity.User, error) { return m.users[id], nil }

func (m memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m memUsers) Update(_ context.Context, u *entity.User) error {
	if _, ok := m.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	m.users[u.ID] = u
	return nil
}

func (m memUsers) List(_ context.Context, f repository.UserFilter) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range m.users {
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		if f.Active != nil && u.Active != *f.Active {
			continue
		}
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type memSales struct {
	orders []repository.SalesOrder
	err    error
}

func (m memSales) ListSalesOrders(_ context.Context, from, to time.Time, _ []string) ([]repository.SalesOrder, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []repository.SalesOrder
	for _, o := range m.orders {
		if !o.CreatedAt.Before(from) && o.CreatedAt.Before(to) {
			out = append(out, o)
		}
	}
	return out, nil
}

type stubPDF struct{}

func (stubPDF) RenderDailyReport(_ context.Context, r *dto.DailySalesReport) ([]byte, error) {
	return []byte("%PDF-1.3 " + r.Date), nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

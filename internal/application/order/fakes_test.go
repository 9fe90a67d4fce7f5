package order_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/Cafeteria-api/internal/application/order"
	"github.com/jhoicas/Cafeteria-api/internal/domain"
	"github.com/jhoicas/Cafeteria-api/internal/domain/entity"
	"github.com/jhoicas/Cafeteria-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos
// ──────────────────────────────────────────────────────────────────────────────

type memOrders struct {
	mu      sync.Mutex
	orders  map[string]*entity.Order
	items   map[string][]*entity.OrderItem
	history map[string][]*entity.OrderHistory

	createErrs       []error // se consume uno por llamada a Create
	itemsErr         error
	historyErr       error
	conflictOnUpdate bool // simula que otro proceso cambió el estado
	deleted          []string
}

var _ repository.OrderRepository = (*memOrders)(nil)

func newMemOrders() *memOrders {
	return &memOrders{
		orders:  map[string]*entity.Order{},
		items:   map[string][]*entity.OrderItem{},
		history: map[string][]*entity.OrderHistory{},
	}
}

func (m *memOrders) seed(o *entity.Order) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *o
	m.orders[o.ID] = &cp
}

func (m *memOrders) Create(_ context.Context, o *entity.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.createErrs) > 0 {
		err := m.createErrs[0]
		m.createErrs = m.createErrs[1:]
		if err != nil {
			return err
		}
	}
	for _, existing := range m.orders {
		if existing.Number == o.Number {
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
	if m.itemsErr != nil {
		return m.itemsErr
	}
	for _, it := range items {
		cp := *it
		m.items[it.OrderID] = append(m.items[it.OrderID], &cp)
	}
	return nil
}

func (m *memOrders) CreateHistory(_ context.Context, h *entity.OrderHistory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.historyErr != nil {
		return m.historyErr
	}
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
	m.deleted = append(m.deleted, id)
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
	if !ok || o.Status != expected || m.conflictOnUpdate {
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
		if f.Type != "" && o.Type != f.Type {
			continue
		}
		if len(f.Statuses) > 0 && !inList(f.Statuses, o.Status) {
			continue
		}
		if f.From != nil && o.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && !o.CreatedAt.Before(*f.To) {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if f.Ascending {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memOrders) ListItems(_ context.Context, orderID string) ([]*entity.OrderItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*entity.OrderItem(nil), m.items[orderID]...), nil
}

func (m *memOrders) ListItemsByOrderIDs(_ context.Context, ids []string) (map[string][]*entity.OrderItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string][]*entity.OrderItem, len(ids))
	for _, id := range ids {
		out[id] = append([]*entity.OrderItem(nil), m.items[id]...)
	}
	return out, nil
}

func (m *memOrders) ListHistory(_ context.Context, orderID string) ([]*entity.OrderHistory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*entity.OrderHistory(nil), m.history[orderID]...), nil
}

func (m *memOrders) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}

func (m *memOrders) snapshot() (map[string]entity.Order, map[string][]*entity.OrderHistory) {
	m.mu.Lock()
	defer m.mu.Unlock()
	orders := make(map[string]entity.Order, len(m.orders))
	for id, o := range m.orders {
		orders[id] = *o
	}
	history := make(map[string][]*entity.OrderHistory, len(m.history))
	for id, h := range m.history {
		history[id] = append([]*entity.OrderHistory(nil), h...)
	}
	return orders, history
}

func (m *memOrders) restore(orders map[string]entity.Order, history map[string][]*entity.OrderHistory) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = make(map[string]*entity.Order, len(orders))
	for id, o := range orders {
		cp := o
		m.orders[id] = &cp
	}
	m.history = history
}

// memTx serializa las transacciones (equivale al bloqueo de fila) y revierte ante error.
type memTx struct {
	mu   sync.Mutex
	repo *memOrders
}

var _ order.TxRunner = (*memTx)(nil)

func (t *memTx) RunOrder(ctx context.Context, fn func(repository.OrderRepository) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	orders, history := t.repo.snapshot()
	if err := fn(t.repo); err != nil {
		t.repo.restore(orders, history)
		return err
	}
	return nil
}

type memProducts struct {
	products map[string]*entity.Product
	calls    [][]string
	err      error
}

func (m *memProducts) Create(context.Context, *entity.Product) error { return nil }
func (m *memProducts) Update(context.Context, *entity.Product) error { return nil }
func (m *memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return m.products[id], nil
}
func (m *memProducts) List(context.Context, repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}

func (m *memProducts) GetByIDs(_ context.Context, ids []string) ([]*entity.Product, error) {
	m.calls = append(m.calls, ids)
	if m.err != nil {
		return nil, m.err
	}
	var out []*entity.Product
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type memSequence struct {
	mu   sync.Mutex
	days map[string]int
	err  error
}

func (s *memSequence) Next(_ context.Context, day time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	if s.days == nil {
		s.days = map[string]int{}
	}
	key := day.Format("2006-01-02")
	s.days[key]++
	return s.days[key], nil
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []order.Event
	err    error
}

func (n *recordingNotifier) Publish(_ context.Context, ev order.Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, ev)
	return n.err
}

var errStore = errors.New("conexión perdida")

func inList(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// Package state keeps the session-local working copies of the order and
// customer collections. Mutations go through the service layer and, on
// success, splice the local slice in place instead of refetching.
package state

import (
	"context"
	"sort"
	"sync"

	"github.com/SanTaClouse/verduleria-luna/internal/domain/api"
	"github.com/SanTaClouse/verduleria-luna/internal/domain/model"
	"github.com/SanTaClouse/verduleria-luna/internal/service"
)

// OrderGroup is one date bucket of the grouped order view.
type OrderGroup struct {
	Date   model.Date    `json:"fecha"`
	Orders []model.Order `json:"pedidos"`
}

// OrdersManager owns the in-session order collection and the active filter.
type OrdersManager struct {
	svc *service.OrderService

	mu     sync.RWMutex
	orders []model.Order
	filter model.OrderFilter
}

// NewOrdersManager constructs OrdersManager.
func NewOrdersManager(svc *service.OrderService) *OrdersManager {
	return &OrdersManager{svc: svc}
}

// Load replaces the working copy with a full fetch.
func (m *OrdersManager) Load(ctx context.Context) error {
	res := m.svc.List(ctx, nil)
	if !res.Success {
		return res.Err
	}
	m.mu.Lock()
	m.orders = res.Data
	m.mu.Unlock()
	return nil
}

// Orders returns a copy of the working collection in fetch order.
func (m *OrdersManager) Orders() []model.Order {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]model.Order(nil), m.orders...)
}

// SetFilter replaces the active criteria. It only affects derived views.
func (m *OrdersManager) SetFilter(f model.OrderFilter) {
	m.mu.Lock()
	m.filter = f
	m.mu.Unlock()
}

func (m *OrdersManager) Filter() model.OrderFilter {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.filter
}

// Filtered applies the active criteria to the working copy.
func (m *OrdersManager) Filtered() []model.Order {
	m.mu.RLock()
	defer m.mu.RUnlock()
	matched := make([]model.Order, 0, len(m.orders))
	for _, o := range m.orders {
		if m.filter.Matches(o) {
			matched = append(matched, o)
		}
	}
	return matched
}

// Statistics aggregates the orders passing the active filter.
func (m *OrdersManager) Statistics() model.OrderStats {
	var stats model.OrderStats
	for _, o := range m.Filtered() {
		stats.TotalSales += o.Price
		stats.TotalCollected += o.AmountPaid
		stats.TotalPending += o.Price - o.AmountPaid
		if o.Status == model.OrderStatusPaid {
			stats.PaidCount++
		} else {
			stats.UnpaidCount++
		}
		stats.TotalCount++
	}
	return stats
}

// GroupedByDate buckets the filtered orders by order date, most recent group
// first. Within a group, fetch order is preserved.
func (m *OrdersManager) GroupedByDate() []OrderGroup {
	var groups []OrderGroup
	index := make(map[string]int)
	for _, o := range m.Filtered() {
		key := o.Date.String()
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, OrderGroup{Date: o.Date})
		}
		groups[i].Orders = append(groups[i].Orders, o)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[j].Date.Before(groups[i].Date)
	})
	return groups
}

// Create registers the order and prepends it to the working copy.
func (m *OrdersManager) Create(ctx context.Context, draft model.OrderDraft) service.Result[*api.CreatedOrder] {
	res := m.svc.Create(ctx, draft)
	if res.Success {
		m.mu.Lock()
		m.orders = append([]model.Order{res.Data.Order}, m.orders...)
		m.mu.Unlock()
	}
	return res
}

// Update patches the order and replaces it in the working copy.
func (m *OrdersManager) Update(ctx context.Context, id int64, patch model.OrderPatch) service.Result[*model.Order] {
	return m.replacing(m.svc.Update(ctx, id, patch))
}

// MarkPaid settles the order and replaces it in the working copy.
func (m *OrdersManager) MarkPaid(ctx context.Context, id int64) service.Result[*model.Order] {
	return m.replacing(m.svc.MarkPaid(ctx, id))
}

// ApplyPayment records an abono and replaces the order in the working copy.
func (m *OrdersManager) ApplyPayment(ctx context.Context, id int64, amountPaid float64) service.Result[*model.Order] {
	return m.replacing(m.svc.ApplyPayment(ctx, id, amountPaid))
}

// MarkWhatsappSent flags the order and replaces it in the working copy.
func (m *OrdersManager) MarkWhatsappSent(ctx context.Context, id int64) service.Result[*model.Order] {
	return m.replacing(m.svc.MarkWhatsappSent(ctx, id))
}

// Delete removes the order from the backend and the working copy.
func (m *OrdersManager) Delete(ctx context.Context, id int64) service.Result[struct{}] {
	res := m.svc.Delete(ctx, id)
	if res.Success {
		m.mu.Lock()
		remaining := m.orders[:0]
		for _, o := range m.orders {
			if o.ID != id {
				remaining = append(remaining, o)
			}
		}
		m.orders = remaining
		m.mu.Unlock()
	}
	return res
}

func (m *OrdersManager) replacing(res service.Result[*model.Order]) service.Result[*model.Order] {
	if res.Success {
		m.mu.Lock()
		for i := range m.orders {
			if m.orders[i].ID == res.Data.ID {
				m.orders[i] = *res.Data
				break
			}
		}
		m.mu.Unlock()
	}
	return res
}

package state

import (
	"context"
	"sort"
	"sync"

	"github.com/SanTaClouse/verduleria-luna/internal/domain/model"
	"github.com/SanTaClouse/verduleria-luna/internal/service"
)

// CustomersManager owns the in-session customer collection.
type CustomersManager struct {
	svc *service.CustomerService

	mu        sync.RWMutex
	customers []model.Customer
}

// NewCustomersManager constructs CustomersManager.
func NewCustomersManager(svc *service.CustomerService) *CustomersManager {
	return &CustomersManager{svc: svc}
}

// Load replaces the working copy with a full fetch.
func (m *CustomersManager) Load(ctx context.Context) error {
	res := m.svc.List(ctx)
	if !res.Success {
		return res.Err
	}
	m.mu.Lock()
	m.customers = res.Data
	m.mu.Unlock()
	return nil
}

// Customers returns a copy of the working collection in fetch order.
func (m *CustomersManager) Customers() []model.Customer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]model.Customer(nil), m.customers...)
}

// ByID looks the customer up in the working copy, no backend round trip.
func (m *CustomersManager) ByID(id string) (*model.Customer, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.customers {
		if m.customers[i].ID == id {
			c := m.customers[i]
			return &c, true
		}
	}
	return nil, false
}

// SortedByRevenue returns the customers ordered by total billed, highest
// first. Ties keep their fetch order.
func (m *CustomersManager) SortedByRevenue() []model.Customer {
	sorted := m.Customers()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalBilled > sorted[j].TotalBilled
	})
	return sorted
}

// Statistics aggregates the working copy. The top customer is the first one
// holding the maximum billed total.
func (m *CustomersManager) Statistics() model.CustomerStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := model.CustomerStats{TotalCustomers: len(m.customers)}
	for i := range m.customers {
		c := &m.customers[i]
		stats.TotalRevenue += c.TotalBilled
		if stats.TopCustomer == nil || c.TotalBilled > stats.TopCustomer.TotalBilled {
			top := *c
			stats.TopCustomer = &top
		}
	}
	if stats.TotalCustomers > 0 {
		stats.AverageRevenue = stats.TotalRevenue / float64(stats.TotalCustomers)
	}
	return stats
}

// Create registers the customer and prepends it to the working copy.
func (m *CustomersManager) Create(ctx context.Context, draft model.CustomerDraft) service.Result[*model.Customer] {
	res := m.svc.Create(ctx, draft)
	if res.Success {
		m.mu.Lock()
		m.customers = append([]model.Customer{*res.Data}, m.customers...)
		m.mu.Unlock()
	}
	return res
}

// Update patches the customer and replaces it in the working copy.
func (m *CustomersManager) Update(ctx context.Context, id string, patch model.CustomerPatch) service.Result[*model.Customer] {
	res := m.svc.Update(ctx, id, patch)
	if res.Success {
		m.mu.Lock()
		for i := range m.customers {
			if m.customers[i].ID == id {
				m.customers[i] = *res.Data
				break
			}
		}
		m.mu.Unlock()
	}
	return res
}

// NoteOrder bumps the local aggregates after an order was created for the
// customer, mirroring what the backend already persisted.
func (m *CustomersManager) NoteOrder(customerID string, price float64, date model.Date) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.customers {
		if m.customers[i].ID != customerID {
			continue
		}
		m.customers[i].OrderCount++
		m.customers[i].TotalBilled += price
		last := date
		m.customers[i].LastOrder = &last
		return
	}
}

// Delete removes the customer from the backend and the working copy.
func (m *CustomersManager) Delete(ctx context.Context, id string) service.Result[struct{}] {
	res := m.svc.Delete(ctx, id)
	if res.Success {
		m.mu.Lock()
		remaining := m.customers[:0]
		for _, c := range m.customers {
			if c.ID != id {
				remaining = append(remaining, c)
			}
		}
		m.customers = remaining
		m.mu.Unlock()
	}
	return res
}

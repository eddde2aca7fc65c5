package state

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SanTaClouse/verduleria-luna/internal/domain/api"
	domainErrors "github.com/SanTaClouse/verduleria-luna/internal/domain/errors"
	"github.com/SanTaClouse/verduleria-luna/internal/domain/model"
	"github.com/SanTaClouse/verduleria-luna/internal/service"
)

type fakeCustomers struct {
	api.Customers
	customers []model.Customer
}

func (f *fakeCustomers) List(context.Context) ([]model.Customer, error) {
	return append([]model.Customer(nil), f.customers...), nil
}

func (f *fakeCustomers) Create(_ context.Context, draft model.CustomerDraft) (*model.Customer, error) {
	return &model.Customer{ID: "10", Name: draft.Name, Phone: draft.Phone, Status: model.CustomerStatusActive}, nil
}

func (f *fakeCustomers) Update(_ context.Context, id string, patch model.CustomerPatch) (*model.Customer, error) {
	for _, c := range f.customers {
		if c.ID == id {
			if patch.Name != nil {
				c.Name = *patch.Name
			}
			return &c, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (f *fakeCustomers) Delete(_ context.Context, id string) error {
	for _, c := range f.customers {
		if c.ID == id {
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func sampleCustomers() []model.Customer {
	return []model.Customer{
		{ID: "1", Name: "Bar Norte", TotalBilled: 5000, OrderCount: 4},
		{ID: "2", Name: "Café Sur", TotalBilled: 8000, OrderCount: 6},
		{ID: "3", Name: "Kiosco Este", TotalBilled: 8000, OrderCount: 2},
		{ID: "4", Name: "Hotel Oeste", TotalBilled: 1000, OrderCount: 1},
	}
}

func newCustomersManager(t *testing.T) *CustomersManager {
	t.Helper()
	fake := &fakeCustomers{customers: sampleCustomers()}
	m := NewCustomersManager(service.NewCustomerService(fake, slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, m.Load(context.Background()))
	return m
}

func TestSortedByRevenue(t *testing.T) {
	m := newCustomersManager(t)

	sorted := m.SortedByRevenue()
	require.Len(t, sorted, 4)
	assert.Equal(t, "2", sorted[0].ID, "ties keep fetch order")
	assert.Equal(t, "3", sorted[1].ID)
	assert.Equal(t, "1", sorted[2].ID)
	assert.Equal(t, "4", sorted[3].ID)

	assert.Equal(t, "1", m.Customers()[0].ID, "working copy not reordered")
}

func TestCustomerStatistics(t *testing.T) {
	m := newCustomersManager(t)

	stats := m.Statistics()
	assert.Equal(t, 4, stats.TotalCustomers)
	assert.Equal(t, 22000.0, stats.TotalRevenue)
	assert.Equal(t, 5500.0, stats.AverageRevenue)
	require.NotNil(t, stats.TopCustomer)
	assert.Equal(t, "2", stats.TopCustomer.ID, "first holder of the maximum wins")
}

func TestCustomerStatisticsEmpty(t *testing.T) {
	fake := &fakeCustomers{}
	m := NewCustomersManager(service.NewCustomerService(fake, slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, m.Load(context.Background()))

	stats := m.Statistics()
	assert.Zero(t, stats.TotalCustomers)
	assert.Zero(t, stats.AverageRevenue)
	assert.Nil(t, stats.TopCustomer)
}

func TestByID(t *testing.T) {
	m := newCustomersManager(t)

	c, ok := m.ByID("3")
	require.True(t, ok)
	assert.Equal(t, "Kiosco Este", c.Name)

	_, ok = m.ByID("99")
	assert.False(t, ok)
}

func TestCustomerCreateUpdateDeleteSplice(t *testing.T) {
	m := newCustomersManager(t)
	ctx := context.Background()

	created := m.Create(ctx, model.CustomerDraft{Name: "Nuevo", Phone: "341"})
	require.True(t, created.Success)
	assert.Equal(t, "10", m.Customers()[0].ID, "new customer goes first")

	name := "Bar Norte Renovado"
	updated := m.Update(ctx, "1", model.CustomerPatch{Name: &name})
	require.True(t, updated.Success)
	c, ok := m.ByID("1")
	require.True(t, ok)
	assert.Equal(t, name, c.Name)

	deleted := m.Delete(ctx, "4")
	require.True(t, deleted.Success)
	_, ok = m.ByID("4")
	assert.False(t, ok)
	assert.Len(t, m.Customers(), 4)
}

func TestNoteOrderBumpsAggregates(t *testing.T) {
	m := newCustomersManager(t)

	when := model.NewDate(2024, time.December, 10)
	m.NoteOrder("1", 1234, when)

	c, ok := m.ByID("1")
	require.True(t, ok)
	assert.Equal(t, 5, c.OrderCount)
	assert.Equal(t, 6234.0, c.TotalBilled)
	require.NotNil(t, c.LastOrder)
	assert.Equal(t, "2024-12-10", c.LastOrder.String())
}

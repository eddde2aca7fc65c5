// Package mockapi simulates backend semantics for orders, customers, auth
// and contact forms on top of the local blob store. Every call pauses for a
// configurable artificial delay to mimic network latency.
package mockapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SanTaClouse/verduleria-luna/internal/domain/api"
	"github.com/SanTaClouse/verduleria-luna/internal/domain/model"
	"github.com/SanTaClouse/verduleria-luna/internal/pkg/auth"
	"github.com/SanTaClouse/verduleria-luna/internal/storage/blob"
)

// Backend acts as API facade backed by the blob store.
type Backend struct {
	store  blob.Store
	tokens auth.Strategy
	hasher auth.PasswordHasher
	logger *slog.Logger
	delay  time.Duration

	// Serializes read-modify-write cycles over the store. Concurrent
	// writers outside this process still race (last write wins).
	mu sync.Mutex
}

type ordersAPI struct {
	backend *Backend
}

type customersAPI struct {
	backend *Backend
}

type authAPI struct {
	backend *Backend
}

type contactAPI struct {
	backend *Backend
}

// New creates the mock backend and seeds the store with demo fixtures when
// the collections are absent. Seeding never overwrites existing data.
func New(store blob.Store, tokens auth.Strategy, hasher auth.PasswordHasher, logger *slog.Logger, delay time.Duration) (*Backend, error) {
	b := &Backend{store: store, tokens: tokens, hasher: hasher, logger: logger, delay: delay}
	if err := b.ensureSeed(); err != nil {
		return nil, fmt.Errorf("seed demo data: %w", err)
	}
	return b, nil
}

// Factory methods for the API boundary.
func (b *Backend) Orders() api.Orders {
	return &ordersAPI{backend: b}
}

func (b *Backend) Customers() api.Customers {
	return &customersAPI{backend: b}
}

func (b *Backend) Auth() api.Auth {
	return &authAPI{backend: b}
}

func (b *Backend) Contact() api.Contact {
	return &contactAPI{backend: b}
}

// pause simulates full network latency before the call resolves.
func (b *Backend) pause(ctx context.Context) error {
	return b.pauseFor(ctx, b.delay)
}

// pauseQuick is used by the lightweight auth operations.
func (b *Backend) pauseQuick(ctx context.Context) error {
	return b.pauseFor(ctx, b.delay/3)
}

func (b *Backend) pauseFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *Backend) loadOrders() ([]model.Order, error) {
	data, ok, err := b.store.Get(blob.KeyOrders)
	if err != nil {
		return nil, err
	}
	if !ok {
		return append([]model.Order(nil), seedOrders...), nil
	}
	var orders []model.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

func (b *Backend) saveOrders(orders []model.Order) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}
	return b.store.Set(blob.KeyOrders, data)
}

func (b *Backend) loadCustomers() ([]model.Customer, error) {
	data, ok, err := b.store.Get(blob.KeyCustomers)
	if err != nil {
		return nil, err
	}
	if !ok {
		return append([]model.Customer(nil), seedCustomers...), nil
	}
	var customers []model.Customer
	if err := json.Unmarshal(data, &customers); err != nil {
		return nil, fmt.Errorf("decode customers: %w", err)
	}
	return customers, nil
}

func (b *Backend) saveCustomers(customers []model.Customer) error {
	data, err := json.Marshal(customers)
	if err != nil {
		return fmt.Errorf("encode customers: %w", err)
	}
	return b.store.Set(blob.KeyCustomers, data)
}

// currentUser returns the persisted session user, if any.
func (b *Backend) currentUser() *model.User {
	data, ok, err := b.store.Get(blob.KeyUser)
	if err != nil || !ok {
		return nil
	}
	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil
	}
	return &user
}

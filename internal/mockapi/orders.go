package mockapi

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/SanTaClouse/verduleria-luna/internal/domain/api"
	domainErrors "github.com/SanTaClouse/verduleria-luna/internal/domain/errors"
	"github.com/SanTaClouse/verduleria-luna/internal/domain/model"
	"github.com/SanTaClouse/verduleria-luna/internal/pkg/whatsapp"
)

// List returns stored orders matching the filter, most recent date first.
func (a *ordersAPI) List(ctx context.Context, filter *model.OrderFilter) ([]model.Order, error) {
	if err := a.backend.pause(ctx); err != nil {
		return nil, err
	}

	orders, err := a.backend.loadOrders()
	if err != nil {
		return nil, err
	}

	if filter != nil {
		matched := orders[:0]
		for _, o := range orders {
			if filter.Matches(o) {
				matched = append(matched, o)
			}
		}
		orders = matched
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[j].Date.Before(orders[i].Date)
	})

	return orders, nil
}

func (a *ordersAPI) Get(ctx context.Context, id int64) (*model.Order, error) {
	if err := a.backend.pause(ctx); err != nil {
		return nil, err
	}

	orders, err := a.backend.loadOrders()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Create registers a new order for an existing customer, updates the
// customer aggregates in the same sequence and builds the notification
// link. There is no rollback between the two writes.
func (a *ordersAPI) Create(ctx context.Context, draft model.OrderDraft) (*api.CreatedOrder, error) {
	if err := a.backend.pause(ctx); err != nil {
		return nil, err
	}
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	b := a.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	customers, err := b.loadCustomers()
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range customers {
		if customers[i].ID == draft.CustomerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domainErrors.ErrNotFound
	}
	customer := &customers[idx]

	orders, err := b.loadOrders()
	if err != nil {
		return nil, err
	}

	orderDate := draft.Date
	if orderDate.IsZero() {
		orderDate = model.Today()
	}

	order := model.Order{
		ID:         nextOrderID(orders),
		CustomerID: draft.CustomerID,
		Customer: model.CustomerSnapshot{
			ID:      customer.ID,
			Name:    customer.Name,
			Address: customer.Address,
			Phone:   customer.Phone,
		},
		Description: draft.Description,
		Price:       draft.Price,
		AmountPaid:  draft.AmountPaid,
		Status:      model.StatusFor(draft.AmountPaid, draft.Price),
		Date:        orderDate,
		CreatedAt:   time.Now().UTC(),
	}
	if user := b.currentUser(); user != nil {
		order.CreatedBy = user.Ref()
	}

	orders = append([]model.Order{order}, orders...)
	if err := b.saveOrders(orders); err != nil {
		return nil, err
	}

	customer.OrderCount++
	customer.TotalBilled += order.Price
	last := order.Date
	customer.LastOrder = &last
	if err := b.saveCustomers(customers); err != nil {
		return nil, err
	}

	link := whatsapp.Link(customer.Phone, whatsapp.OrderCreatedMessage(order))
	b.logger.Info("order created",
		slog.Int64("id", order.ID),
		slog.String("customer", customer.Name),
		slog.Float64("price", order.Price),
	)

	return &api.CreatedOrder{Order: order, WhatsappLink: link}, nil
}

// Update applies a shallow patch and recomputes the payment status so the
// paid-amount invariant cannot be bypassed.
func (a *ordersAPI) Update(ctx context.Context, id int64, patch model.OrderPatch) (*model.Order, error) {
	return a.mutate(ctx, id, func(o *model.Order) error {
		if patch.Description != nil {
			o.Description = *patch.Description
		}
		if patch.Price != nil {
			o.Price = *patch.Price
		}
		if patch.AmountPaid != nil {
			o.AmountPaid = *patch.AmountPaid
		}
		if patch.Date != nil {
			o.Date = *patch.Date
		}
		if o.Price < 0 || o.AmountPaid < 0 || o.AmountPaid > o.Price {
			return domainErrors.ErrInvalidAmount
		}
		if o.Date.After(model.Today()) {
			return domainErrors.ErrFutureDate
		}
		o.Status = model.StatusFor(o.AmountPaid, o.Price)
		return nil
	})
}

// MarkPaid forces the order into the fully paid state. Idempotent.
func (a *ordersAPI) MarkPaid(ctx context.Context, id int64) (*model.Order, error) {
	return a.mutate(ctx, id, func(o *model.Order) error {
		o.AmountPaid = o.Price
		o.Status = model.OrderStatusPaid
		return nil
	})
}

// ApplyPayment replaces the paid amount and recomputes the status. Amounts
// outside [0, price] are rejected here, not only in the UI.
func (a *ordersAPI) ApplyPayment(ctx context.Context, id int64, amountPaid float64) (*model.Order, error) {
	return a.mutate(ctx, id, func(o *model.Order) error {
		if amountPaid < 0 || amountPaid > o.Price {
			return domainErrors.ErrInvalidAmount
		}
		o.AmountPaid = amountPaid
		o.Status = model.StatusFor(amountPaid, o.Price)
		return nil
	})
}

func (a *ordersAPI) Delete(ctx context.Context, id int64) error {
	if err := a.backend.pause(ctx); err != nil {
		return err
	}

	b := a.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	orders, err := b.loadOrders()
	if err != nil {
		return err
	}
	remaining := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if o.ID != id {
			remaining = append(remaining, o)
		}
	}
	if len(remaining) == len(orders) {
		return domainErrors.ErrNotFound
	}
	return b.saveOrders(remaining)
}

func (a *ordersAPI) ListByCustomer(ctx context.Context, customerID string) ([]model.Order, error) {
	if err := a.backend.pause(ctx); err != nil {
		return nil, err
	}

	orders, err := a.backend.loadOrders()
	if err != nil {
		return nil, err
	}
	matched := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if o.CustomerID == customerID {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

// WhatsappLink builds the notification deep link without sending anything.
func (a *ordersAPI) WhatsappLink(ctx context.Context, id int64) (string, error) {
	order, err := a.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return whatsapp.Link(order.Customer.Phone, whatsapp.OrderReadyMessage(order.ID)), nil
}

// MarkWhatsappSent flags the order as notified. There is no un-send.
func (a *ordersAPI) MarkWhatsappSent(ctx context.Context, id int64) (*model.Order, error) {
	return a.mutate(ctx, id, func(o *model.Order) error {
		o.WhatsappSent = true
		return nil
	})
}

// mutate runs a read-modify-write cycle over a single order.
func (a *ordersAPI) mutate(ctx context.Context, id int64, apply func(*model.Order) error) (*model.Order, error) {
	if err := a.backend.pause(ctx); err != nil {
		return nil, err
	}

	b := a.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	orders, err := b.loadOrders()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		if err := apply(&orders[i]); err != nil {
			return nil, err
		}
		if err := b.saveOrders(orders); err != nil {
			return nil, err
		}
		updated := orders[i]
		return &updated, nil
	}
	return nil, domainErrors.ErrNotFound
}

func validateDraft(draft model.OrderDraft) error {
	if draft.Price < 0 || draft.AmountPaid < 0 || draft.AmountPaid > draft.Price {
		return domainErrors.ErrInvalidAmount
	}
	if !draft.Date.IsZero() && draft.Date.After(model.Today()) {
		return domainErrors.ErrFutureDate
	}
	return nil
}

package mockapi

import (
	"context"
	"log/slog"
	"strings"

	domainErrors "github.com/SanTaClouse/verduleria-luna/internal/domain/errors"
	"github.com/SanTaClouse/verduleria-luna/internal/domain/model"
)

func (a *customersAPI) List(ctx context.Context) ([]model.Customer, error) {
	if err := a.backend.pause(ctx); err != nil {
		return nil, err
	}
	return a.backend.loadCustomers()
}

func (a *customersAPI) Get(ctx context.Context, id string) (*model.Customer, error) {
	if err := a.backend.pause(ctx); err != nil {
		return nil, err
	}

	customers, err := a.backend.loadCustomers()
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].ID == id {
			return &customers[i], nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Create registers a customer with zeroed aggregates and active status.
func (a *customersAPI) Create(ctx context.Context, draft model.CustomerDraft) (*model.Customer, error) {
	if err := a.backend.pause(ctx); err != nil {
		return nil, err
	}
	if strings.TrimSpace(draft.Name) == "" || strings.TrimSpace(draft.Phone) == "" {
		return nil, domainErrors.ErrInvalidInput
	}

	b := a.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	customers, err := b.loadCustomers()
	if err != nil {
		return nil, err
	}

	customer := model.Customer{
		ID:           nextCustomerID(customers),
		Name:         draft.Name,
		Address:      draft.Address,
		Notes:        draft.Notes,
		Phone:        draft.Phone,
		Email:        draft.Email,
		RegisteredAt: model.Today(),
		Status:       model.CustomerStatusActive,
	}

	customers = append([]model.Customer{customer}, customers...)
	if err := b.saveCustomers(customers); err != nil {
		return nil, err
	}

	b.logger.Info("customer created", slog.String("id", customer.ID), slog.String("name", customer.Name))
	return &customer, nil
}

// Update applies a shallow field patch. Aggregates stay untouched.
func (a *customersAPI) Update(ctx context.Context, id string, patch model.CustomerPatch) (*model.Customer, error) {
	if err := a.backend.pause(ctx); err != nil {
		return nil, err
	}

	b := a.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	customers, err := b.loadCustomers()
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].ID != id {
			continue
		}
		c := &customers[i]
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Address != nil {
			c.Address = *patch.Address
		}
		if patch.Notes != nil {
			c.Notes = *patch.Notes
		}
		if patch.Phone != nil {
			c.Phone = *patch.Phone
		}
		if patch.Email != nil {
			c.Email = *patch.Email
		}
		if patch.Status != nil {
			c.Status = *patch.Status
		}
		if err := b.saveCustomers(customers); err != nil {
			return nil, err
		}
		updated := customers[i]
		return &updated, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Delete removes a customer. Deleting one that still has orders is
// rejected so the order history never holds orphaned references.
func (a *customersAPI) Delete(ctx context.Context, id string) error {
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
	for _, o := range orders {
		if o.CustomerID == id {
			return domainErrors.ErrCustomerHasOrders
		}
	}

	customers, err := b.loadCustomers()
	if err != nil {
		return err
	}
	remaining := make([]model.Customer, 0, len(customers))
	for _, c := range customers {
		if c.ID != id {
			remaining = append(remaining, c)
		}
	}
	if len(remaining) == len(customers) {
		return domainErrors.ErrNotFound
	}
	return b.saveCustomers(remaining)
}

package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SanTaClouse/verduleria-luna/internal/domain/api"
	domainErrors "github.com/SanTaClouse/verduleria-luna/internal/domain/errors"
	"github.com/SanTaClouse/verduleria-luna/internal/domain/model"
)

// CustomerService exposes customer operations behind the result envelope.
type CustomerService struct {
	customers api.Customers
	logger    *slog.Logger
}

// NewCustomerService constructs CustomerService.
func NewCustomerService(customers api.Customers, logger *slog.Logger) *CustomerService {
	return &CustomerService{customers: customers, logger: logger}
}

func customerMessage(err error) string {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		return "Cliente no encontrado"
	case errors.Is(err, domainErrors.ErrCustomerHasOrders):
		return "No se puede eliminar un cliente con pedidos registrados"
	case errors.Is(err, domainErrors.ErrInvalidInput):
		return "Nombre y teléfono son obligatorios"
	default:
		return "Error al procesar el cliente"
	}
}

func (s *CustomerService) List(ctx context.Context) Result[[]model.Customer] {
	return capture(s.logger, "customers.list", customerMessage, func() ([]model.Customer, error) {
		return s.customers.List(ctx)
	})
}

func (s *CustomerService) Get(ctx context.Context, id string) Result[*model.Customer] {
	return capture(s.logger, "customers.get", customerMessage, func() (*model.Customer, error) {
		return s.customers.Get(ctx, id)
	})
}

func (s *CustomerService) Create(ctx context.Context, draft model.CustomerDraft) Result[*model.Customer] {
	return capture(s.logger, "customers.create", customerMessage, func() (*model.Customer, error) {
		return s.customers.Create(ctx, draft)
	})
}

func (s *CustomerService) Update(ctx context.Context, id string, patch model.CustomerPatch) Result[*model.Customer] {
	return capture(s.logger, "customers.update", customerMessage, func() (*model.Customer, error) {
		return s.customers.Update(ctx, id, patch)
	})
}

func (s *CustomerService) Delete(ctx context.Context, id string) Result[struct{}] {
	return capture(s.logger, "customers.delete", customerMessage, func() (struct{}, error) {
		return struct{}{}, s.customers.Delete(ctx, id)
	})
}

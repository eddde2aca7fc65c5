package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SanTaClouse/verduleria-luna/internal/domain/api"
	domainErrors "github.com/SanTaClouse/verduleria-luna/internal/domain/errors"
	"github.com/SanTaClouse/verduleria-luna/internal/domain/model"
)

// OrderService exposes order operations behind the result envelope.
type OrderService struct {
	orders api.Orders
	logger *slog.Logger
}

// NewOrderService constructs OrderService.
func NewOrderService(orders api.Orders, logger *slog.Logger) *OrderService {
	return &OrderService{orders: orders, logger: logger}
}

func orderMessage(err error) string {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		return "Pedido no encontrado"
	case errors.Is(err, domainErrors.ErrInvalidAmount):
		return "El monto abonado debe estar entre cero y el precio total"
	case errors.Is(err, domainErrors.ErrFutureDate):
		return "La fecha del pedido no puede ser futura"
	default:
		return "Error al procesar el pedido"
	}
}

func (s *OrderService) List(ctx context.Context, filter *model.OrderFilter) Result[[]model.Order] {
	return capture(s.logger, "orders.list", orderMessage, func() ([]model.Order, error) {
		return s.orders.List(ctx, filter)
	})
}

func (s *OrderService) Get(ctx context.Context, id int64) Result[*model.Order] {
	return capture(s.logger, "orders.get", orderMessage, func() (*model.Order, error) {
		return s.orders.Get(ctx, id)
	})
}

func (s *OrderService) Create(ctx context.Context, draft model.OrderDraft) Result[*api.CreatedOrder] {
	return capture(s.logger, "orders.create", orderMessage, func() (*api.CreatedOrder, error) {
		return s.orders.Create(ctx, draft)
	})
}

func (s *OrderService) Update(ctx context.Context, id int64, patch model.OrderPatch) Result[*model.Order] {
	return capture(s.logger, "orders.update", orderMessage, func() (*model.Order, error) {
		return s.orders.Update(ctx, id, patch)
	})
}

func (s *OrderService) MarkPaid(ctx context.Context, id int64) Result[*model.Order] {
	return capture(s.logger, "orders.markPaid", orderMessage, func() (*model.Order, error) {
		return s.orders.MarkPaid(ctx, id)
	})
}

func (s *OrderService) ApplyPayment(ctx context.Context, id int64, amountPaid float64) Result[*model.Order] {
	return capture(s.logger, "orders.applyPayment", orderMessage, func() (*model.Order, error) {
		return s.orders.ApplyPayment(ctx, id, amountPaid)
	})
}

func (s *OrderService) Delete(ctx context.Context, id int64) Result[struct{}] {
	return capture(s.logger, "orders.delete", orderMessage, func() (struct{}, error) {
		return struct{}{}, s.orders.Delete(ctx, id)
	})
}

func (s *OrderService) ListByCustomer(ctx context.Context, customerID string) Result[[]model.Order] {
	return capture(s.logger, "orders.listByCustomer", orderMessage, func() ([]model.Order, error) {
		return s.orders.ListByCustomer(ctx, customerID)
	})
}

func (s *OrderService) WhatsappLink(ctx context.Context, id int64) Result[string] {
	return capture(s.logger, "orders.whatsappLink", orderMessage, func() (string, error) {
		return s.orders.WhatsappLink(ctx, id)
	})
}

func (s *OrderService) MarkWhatsappSent(ctx context.Context, id int64) Result[*model.Order] {
	return capture(s.logger, "orders.markWhatsappSent", orderMessage, func() (*model.Order, error) {
		return s.orders.MarkWhatsappSent(ctx, id)
	})
}

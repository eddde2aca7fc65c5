package handlers

import (
	"context"

	"github.com/SanTaClouse/verduleria-luna/internal/domain/api"
	"github.com/SanTaClouse/verduleria-luna/internal/domain/model"
	"github.com/SanTaClouse/verduleria-luna/internal/service"
	"github.com/SanTaClouse/verduleria-luna/internal/state"
)

// SessionFacade describes the authentication surface used by handlers.
type SessionFacade interface {
	Login(ctx context.Context, username, password string) service.Result[service.LoginData]
	Logout(ctx context.Context)
	VerifyToken(ctx context.Context, token string) service.Result[*model.User]
}

// OrderFacade describes the order surface exposed via HTTP.
type OrderFacade interface {
	ListOrders(ctx context.Context, filter *model.OrderFilter) service.Result[[]model.Order]
	GetOrder(ctx context.Context, id int64) service.Result[*model.Order]
	CreateOrder(ctx context.Context, draft model.OrderDraft) service.Result[*api.CreatedOrder]
	UpdateOrder(ctx context.Context, id int64, patch model.OrderPatch) service.Result[*model.Order]
	MarkOrderPaid(ctx context.Context, id int64) service.Result[*model.Order]
	ApplyPayment(ctx context.Context, id int64, amountPaid float64) service.Result[*model.Order]
	DeleteOrder(ctx context.Context, id int64) service.Result[struct{}]
	WhatsappLink(ctx context.Context, id int64) service.Result[string]
	MarkWhatsappSent(ctx context.Context, id int64) service.Result[*model.Order]
	OrderStats() model.OrderStats
	GroupedOrders() []state.OrderGroup
}

// CustomerFacade describes the customer surface exposed via HTTP.
type CustomerFacade interface {
	ListCustomers(ctx context.Context) service.Result[[]model.Customer]
	GetCustomer(ctx context.Context, id string) service.Result[*model.Customer]
	CreateCustomer(ctx context.Context, draft model.CustomerDraft) service.Result[*model.Customer]
	UpdateCustomer(ctx context.Context, id string, patch model.CustomerPatch) service.Result[*model.Customer]
	DeleteCustomer(ctx context.Context, id string) service.Result[struct{}]
	OrdersByCustomer(ctx context.Context, customerID string) service.Result[[]model.Order]
	CustomersByRevenue() []model.Customer
	CustomerStats() model.CustomerStats
}

// ContactFacade describes the public form surface.
type ContactFacade interface {
	SendContact(ctx context.Context, form model.ContactForm) service.Result[string]
	SendWholesale(ctx context.Context, form model.WholesaleForm) service.Result[string]
}

// BackofficeFacade aggregates the full surface used across handlers.
type BackofficeFacade interface {
	SessionFacade
	OrderFacade
	CustomerFacade
	ContactFacade
}

// Package api declares the backend boundary consumed by the domain
// services. The mock backend implements it over the local blob store; the
// HTTP adapter implements it against a real server when one is configured.
package api

import (
	"context"

	"github.com/SanTaClouse/verduleria-luna/internal/domain/model"
)

// CreatedOrder pairs a freshly created order with its notification link.
type CreatedOrder struct {
	Order        model.Order `json:"pedido"`
	WhatsappLink string      `json:"whatsappLink"`
}

// Orders exposes order operations.
type Orders interface {
	List(ctx context.Context, filter *model.OrderFilter) ([]model.Order, error)
	Get(ctx context.Context, id int64) (*model.Order, error)
	Create(ctx context.Context, draft model.OrderDraft) (*CreatedOrder, error)
	Update(ctx context.Context, id int64, patch model.OrderPatch) (*model.Order, error)
	MarkPaid(ctx context.Context, id int64) (*model.Order, error)
	ApplyPayment(ctx context.Context, id int64, amountPaid float64) (*model.Order, error)
	Delete(ctx context.Context, id int64) error
	ListByCustomer(ctx context.Context, customerID string) ([]model.Order, error)
	WhatsappLink(ctx context.Context, id int64) (string, error)
	MarkWhatsappSent(ctx context.Context, id int64) (*model.Order, error)
}

// Customers exposes customer operations.
type Customers interface {
	List(ctx context.Context) ([]model.Customer, error)
	Get(ctx context.Context, id string) (*model.Customer, error)
	Create(ctx context.Context, draft model.CustomerDraft) (*model.Customer, error)
	Update(ctx context.Context, id string, patch model.CustomerPatch) (*model.Customer, error)
	Delete(ctx context.Context, id string) error
}

// Auth exposes session operations.
type Auth interface {
	Login(ctx context.Context, username, password string) (*model.User, string, error)
	VerifyToken(ctx context.Context, token string) (*model.User, error)
	Logout(ctx context.Context) error
}

// Contact exposes public form submission. The returned string is the
// user-facing confirmation message.
type Contact interface {
	SendContact(ctx context.Context, form model.ContactForm) (string, error)
	SendWholesale(ctx context.Context, form model.WholesaleForm) (string, error)
}

// Source bundles the four API surfaces. Both the mock backend and the HTTP
// adapter implement it, so wiring picks one at startup.
type Source interface {
	Orders() Orders
	Customers() Customers
	Auth() Auth
	Contact() Contact
}

package app

import (
	"context"

	"github.com/SanTaClouse/verduleria-luna/internal/domain/api"
	"github.com/SanTaClouse/verduleria-luna/internal/domain/model"
	"github.com/SanTaClouse/verduleria-luna/internal/service"
	"github.com/SanTaClouse/verduleria-luna/internal/session"
	"github.com/SanTaClouse/verduleria-luna/internal/state"
)

// BackofficeFacade aggregates session, working state and services behind the
// single surface the presentation layer talks to.
type BackofficeFacade struct {
	session   *session.Manager
	orders    *state.OrdersManager
	customers *state.CustomersManager

	orderSvc    *service.OrderService
	customerSvc *service.CustomerService
	authSvc     *service.AuthService
	contactSvc  *service.ContactService
}

// NewBackofficeFacade constructs BackofficeFacade.
func NewBackofficeFacade(
	sess *session.Manager,
	orders *state.OrdersManager,
	customers *state.CustomersManager,
	orderSvc *service.OrderService,
	customerSvc *service.CustomerService,
	authSvc *service.AuthService,
	contactSvc *service.ContactService,
) *BackofficeFacade {
	return &BackofficeFacade{
		session:     sess,
		orders:      orders,
		customers:   customers,
		orderSvc:    orderSvc,
		customerSvc: customerSvc,
		authSvc:     authSvc,
		contactSvc:  contactSvc,
	}
}

// Bootstrap restores the session and loads the working collections.
func (f *BackofficeFacade) Bootstrap(ctx context.Context) error {
	if err := f.session.Bootstrap(ctx); err != nil {
		return err
	}
	if err := f.orders.Load(ctx); err != nil {
		return err
	}
	return f.customers.Load(ctx)
}

// Session operations.

func (f *BackofficeFacade) Login(ctx context.Context, username, password string) service.Result[service.LoginData] {
	return f.session.Login(ctx, username, password)
}

func (f *BackofficeFacade) Logout(ctx context.Context) {
	f.session.Logout(ctx)
}

func (f *BackofficeFacade) VerifyToken(ctx context.Context, token string) service.Result[*model.User] {
	return f.authSvc.VerifyToken(ctx, token)
}

func (f *BackofficeFacade) CurrentUser() *model.User {
	return f.session.CurrentUser()
}

func (f *BackofficeFacade) SessionStatus() session.Status {
	return f.session.Status()
}

// Order operations. Mutations go through the state manager so the working
// copy stays spliced in step with the backend.

func (f *BackofficeFacade) ListOrders(ctx context.Context, filter *model.OrderFilter) service.Result[[]model.Order] {
	return f.orderSvc.List(ctx, filter)
}

func (f *BackofficeFacade) GetOrder(ctx context.Context, id int64) service.Result[*model.Order] {
	return f.orderSvc.Get(ctx, id)
}

func (f *BackofficeFacade) CreateOrder(ctx context.Context, draft model.OrderDraft) service.Result[*api.CreatedOrder] {
	res := f.orders.Create(ctx, draft)
	if res.Success {
		f.customers.NoteOrder(res.Data.Order.CustomerID, res.Data.Order.Price, res.Data.Order.Date)
	}
	return res
}

func (f *BackofficeFacade) UpdateOrder(ctx context.Context, id int64, patch model.OrderPatch) service.Result[*model.Order] {
	return f.orders.Update(ctx, id, patch)
}

func (f *BackofficeFacade) MarkOrderPaid(ctx context.Context, id int64) service.Result[*model.Order] {
	return f.orders.MarkPaid(ctx, id)
}

func (f *BackofficeFacade) ApplyPayment(ctx context.Context, id int64, amountPaid float64) service.Result[*model.Order] {
	return f.orders.ApplyPayment(ctx, id, amountPaid)
}

func (f *BackofficeFacade) DeleteOrder(ctx context.Context, id int64) service.Result[struct{}] {
	return f.orders.Delete(ctx, id)
}

func (f *BackofficeFacade) OrdersByCustomer(ctx context.Context, customerID string) service.Result[[]model.Order] {
	return f.orderSvc.ListByCustomer(ctx, customerID)
}

func (f *BackofficeFacade) WhatsappLink(ctx context.Context, id int64) service.Result[string] {
	return f.orderSvc.WhatsappLink(ctx, id)
}

func (f *BackofficeFacade) MarkWhatsappSent(ctx context.Context, id int64) service.Result[*model.Order] {
	return f.orders.MarkWhatsappSent(ctx, id)
}

// Derived order views over the session working copy.

func (f *BackofficeFacade) SetOrderFilter(filter model.OrderFilter) {
	f.orders.SetFilter(filter)
}

func (f *BackofficeFacade) OrderFilter() model.OrderFilter {
	return f.orders.Filter()
}

func (f *BackofficeFacade) OrderStats() model.OrderStats {
	return f.orders.Statistics()
}

func (f *BackofficeFacade) GroupedOrders() []state.OrderGroup {
	return f.orders.GroupedByDate()
}

// Customer operations.

func (f *BackofficeFacade) ListCustomers(ctx context.Context) service.Result[[]model.Customer] {
	return f.customerSvc.List(ctx)
}

func (f *BackofficeFacade) GetCustomer(ctx context.Context, id string) service.Result[*model.Customer] {
	return f.customerSvc.Get(ctx, id)
}

func (f *BackofficeFacade) CreateCustomer(ctx context.Context, draft model.CustomerDraft) service.Result[*model.Customer] {
	return f.customers.Create(ctx, draft)
}

func (f *BackofficeFacade) UpdateCustomer(ctx context.Context, id string, patch model.CustomerPatch) service.Result[*model.Customer] {
	return f.customers.Update(ctx, id, patch)
}

func (f *BackofficeFacade) DeleteCustomer(ctx context.Context, id string) service.Result[struct{}] {
	return f.customers.Delete(ctx, id)
}

func (f *BackofficeFacade) CustomersByRevenue() []model.Customer {
	return f.customers.SortedByRevenue()
}

func (f *BackofficeFacade) CustomerStats() model.CustomerStats {
	return f.customers.Statistics()
}

// Public contact intake.

func (f *BackofficeFacade) SendContact(ctx context.Context, form model.ContactForm) service.Result[string] {
	return f.contactSvc.SendContact(ctx, form)
}

func (f *BackofficeFacade) SendWholesale(ctx context.Context, form model.WholesaleForm) service.Result[string] {
	return f.contactSvc.SendWholesale(ctx, form)
}

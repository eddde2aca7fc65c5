package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainApi "github.com/SanTaClouse/verduleria-luna/internal/domain/api"
	domainErrors "github.com/SanTaClouse/verduleria-luna/internal/domain/errors"
	"github.com/SanTaClouse/verduleria-luna/internal/domain/model"
	"github.com/SanTaClouse/verduleria-luna/internal/pkg/auth"
	"github.com/SanTaClouse/verduleria-luna/internal/server/http/router"
	"github.com/SanTaClouse/verduleria-luna/internal/service"
	"github.com/SanTaClouse/verduleria-luna/internal/state"
)

const validToken = "valid-token"

var demoUser = &model.User{ID: "1", Username: "demo", Name: "Usuario Demo"}

// stubFacade serves canned data for the routing tests.
type stubFacade struct {
	orders    []model.Order
	customers []model.Customer
}

func (s *stubFacade) Login(_ context.Context, username, password string) service.Result[service.LoginData] {
	if username == "demo" && password == "demo123" {
		return service.Result[service.LoginData]{
			Success: true,
			Data:    service.LoginData{User: demoUser, Token: validToken},
		}
	}
	return service.Result[service.LoginData]{
		Error: "Usuario o contraseña incorrectos",
		Err:   domainErrors.ErrInvalidCredentials,
	}
}

func (s *stubFacade) Logout(context.Context) {}

func (s *stubFacade) VerifyToken(_ context.Context, token string) service.Result[*model.User] {
	if token == validToken {
		return service.Result[*model.User]{Success: true, Data: demoUser}
	}
	return service.Result[*model.User]{Error: "Token inválido", Err: auth.ErrInvalidToken}
}

func (s *stubFacade) ListOrders(context.Context, *model.OrderFilter) service.Result[[]model.Order] {
	return service.Result[[]model.Order]{Success: true, Data: s.orders}
}

func (s *stubFacade) GetOrder(_ context.Context, id int64) service.Result[*model.Order] {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return service.Result[*model.Order]{Success: true, Data: &s.orders[i]}
		}
	}
	return service.Result[*model.Order]{Error: "Pedido no encontrado", Err: domainErrors.ErrNotFound}
}

func (s *stubFacade) CreateOrder(_ context.Context, draft model.OrderDraft) service.Result[*domainApi.CreatedOrder] {
	return service.Result[*domainApi.CreatedOrder]{
		Success: true,
		Data: &domainApi.CreatedOrder{
			Order:        model.Order{ID: 99, CustomerID: draft.CustomerID, Price: draft.Price},
			WhatsappLink: "https://wa.me/54123?text=x",
		},
	}
}

func (s *stubFacade) UpdateOrder(_ context.Context, id int64, _ model.OrderPatch) service.Result[*model.Order] {
	return s.GetOrder(context.Background(), id)
}

func (s *stubFacade) MarkOrderPaid(_ context.Context, id int64) service.Result[*model.Order] {
	return s.GetOrder(context.Background(), id)
}

func (s *stubFacade) ApplyPayment(_ context.Context, _ int64, amountPaid float64) service.Result[*model.Order] {
	if amountPaid > 1000 {
		return service.Result[*model.Order]{Error: "monto inválido", Err: domainErrors.ErrInvalidAmount}
	}
	return service.Result[*model.Order]{Success: true, Data: &s.orders[0]}
}

func (s *stubFacade) DeleteOrder(context.Context, int64) service.Result[struct{}] {
	return service.Result[struct{}]{Success: true}
}

func (s *stubFacade) WhatsappLink(context.Context, int64) service.Result[string] {
	return service.Result[string]{Success: true, Data: "https://wa.me/54123?text=x"}
}

func (s *stubFacade) MarkWhatsappSent(_ context.Context, id int64) service.Result[*model.Order] {
	return s.GetOrder(context.Background(), id)
}

func (s *stubFacade) OrderStats() model.OrderStats {
	return model.OrderStats{TotalCount: len(s.orders)}
}

func (s *stubFacade) GroupedOrders() []state.OrderGroup {
	return nil
}

func (s *stubFacade) ListCustomers(context.Context) service.Result[[]model.Customer] {
	return service.Result[[]model.Customer]{Success: true, Data: s.customers}
}

func (s *stubFacade) GetCustomer(_ context.Context, id string) service.Result[*model.Customer] {
	for i := range s.customers {
		if s.customers[i].ID == id {
			return service.Result[*model.Customer]{Success: true, Data: &s.customers[i]}
		}
	}
	return service.Result[*model.Customer]{Error: "Cliente no encontrado", Err: domainErrors.ErrNotFound}
}

func (s *stubFacade) CreateCustomer(_ context.Context, draft model.CustomerDraft) service.Result[*model.Customer] {
	if draft.Name == "" || draft.Phone == "" {
		return service.Result[*model.Customer]{Error: "Nombre y teléfono son obligatorios", Err: domainErrors.ErrInvalidInput}
	}
	return service.Result[*model.Customer]{Success: true, Data: &model.Customer{ID: "8", Name: draft.Name}}
}

func (s *stubFacade) UpdateCustomer(_ context.Context, id string, _ model.CustomerPatch) service.Result[*model.Customer] {
	return s.GetCustomer(context.Background(), id)
}

func (s *stubFacade) DeleteCustomer(_ context.Context, id string) service.Result[struct{}] {
	if id == "1" {
		return service.Result[struct{}]{Error: "No se puede eliminar un cliente con pedidos registrados", Err: domainErrors.ErrCustomerHasOrders}
	}
	return service.Result[struct{}]{Success: true}
}

func (s *stubFacade) OrdersByCustomer(context.Context, string) service.Result[[]model.Order] {
	return service.Result[[]model.Order]{Success: true, Data: s.orders}
}

func (s *stubFacade) CustomersByRevenue() []model.Customer {
	return s.customers
}

func (s *stubFacade) CustomerStats() model.CustomerStats {
	return model.CustomerStats{TotalCustomers: len(s.customers)}
}

func (s *stubFacade) SendContact(context.Context, model.ContactForm) service.Result[string] {
	return service.Result[string]{Success: true, Data: "Tu mensaje ha sido enviado. Te responderemos pronto."}
}

func (s *stubFacade) SendWholesale(context.Context, model.WholesaleForm) service.Result[string] {
	return service.Result[string]{Success: true, Data: "Tu solicitud ha sido recibida."}
}

func newTestServer() *httptest.Server {
	facade := &stubFacade{
		orders: []model.Order{
			{ID: 1, CustomerID: "1", Price: 1000, AmountPaid: 1000, Status: model.OrderStatusPaid},
			{ID: 2, CustomerID: "2", Price: 400, Status: model.OrderStatusUnpaid},
		},
		customers: []model.Customer{
			{ID: "1", Name: "Bar Norte"},
			{ID: "2", Name: "Café Sur"},
		},
	}
	engine := router.Setup(facade, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return httptest.NewServer(engine)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func doRequest(t *testing.T, srv *httptest.Server, method, path, token string, body any) (int, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return resp.StatusCode, env
}

func TestLoginRoute(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	status, env := doRequest(t, srv, http.MethodPost, "/api/auth/login", "", map[string]string{
		"usuario": "demo", "password": "demo123",
	})
	if status != http.StatusOK || !env.Success {
		t.Fatalf("expected 200 success, got %d %+v", status, env)
	}

	status, env = doRequest(t, srv, http.MethodPost, "/api/auth/login", "", map[string]string{
		"usuario": "demo", "password": "wrong",
	})
	if status != http.StatusUnauthorized || env.Success {
		t.Fatalf("expected 401, got %d %+v", status, env)
	}

	status, _ = doRequest(t, srv, http.MethodPost, "/api/auth/login", "", map[string]string{"usuario": "demo"})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing password, got %d", status)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	status, _ := doRequest(t, srv, http.MethodGet, "/api/pedidos", "", nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", status)
	}

	status, _ = doRequest(t, srv, http.MethodGet, "/api/pedidos", "wrong-token", nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 with bad token, got %d", status)
	}

	status, env := doRequest(t, srv, http.MethodGet, "/api/pedidos", validToken, nil)
	if status != http.StatusOK || !env.Success {
		t.Fatalf("expected 200 with token, got %d %+v", status, env)
	}
}

func TestPublicRoutesNeedNoToken(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	status, env := doRequest(t, srv, http.MethodPost, "/api/contacto", "", model.ContactForm{
		Name: "Ana", Message: "Hola",
	})
	if status != http.StatusOK || !env.Success {
		t.Fatalf("expected 200, got %d %+v", status, env)
	}

	status, env = doRequest(t, srv, http.MethodPost, "/api/contacto/mayorista", "", model.WholesaleForm{
		Name: "Luis", Business: "Kiosco",
	})
	if status != http.StatusOK || !env.Success {
		t.Fatalf("expected 200, got %d %+v", status, env)
	}
}

func TestVerifyRouteEchoesUser(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	status, env := doRequest(t, srv, http.MethodGet, "/api/auth/verificar", validToken, nil)
	if status != http.StatusOK || !env.Success {
		t.Fatalf("expected 200, got %d %+v", status, env)
	}
	var user model.User
	if err := json.Unmarshal(env.Data, &user); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if user.Username != "demo" {
		t.Fatalf("unexpected user %+v", user)
	}
}

func TestOrderRoutes(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	status, _ := doRequest(t, srv, http.MethodGet, "/api/pedidos/1", validToken, nil)
	if status != http.StatusOK {
		t.Fatalf("get order: expected 200, got %d", status)
	}

	status, env := doRequest(t, srv, http.MethodGet, "/api/pedidos/999", validToken, nil)
	if status != http.StatusNotFound || env.Error == "" {
		t.Fatalf("expected 404 with message, got %d %+v", status, env)
	}

	status, _ = doRequest(t, srv, http.MethodGet, "/api/pedidos/abc", validToken, nil)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for non numeric id, got %d", status)
	}

	status, env = doRequest(t, srv, http.MethodPost, "/api/pedidos", validToken, map[string]any{
		"clienteId": "1", "precio": 500.0,
	})
	if status != http.StatusCreated || !env.Success {
		t.Fatalf("create: expected 201, got %d %+v", status, env)
	}

	status, _ = doRequest(t, srv, http.MethodPut, "/api/pedidos/1/precio-abonado", validToken, map[string]any{
		"precioAbonado": 5000.0,
	})
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for excess payment, got %d", status)
	}

	status, _ = doRequest(t, srv, http.MethodGet, "/api/pedidos/estadisticas", validToken, nil)
	if status != http.StatusOK {
		t.Fatalf("stats: expected 200, got %d", status)
	}
}

func TestCustomerRoutes(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	status, _ := doRequest(t, srv, http.MethodGet, "/api/clientes", validToken, nil)
	if status != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", status)
	}

	status, _ = doRequest(t, srv, http.MethodDelete, "/api/clientes/1", validToken, nil)
	if status != http.StatusConflict {
		t.Fatalf("expected 409 for customer with orders, got %d", status)
	}

	status, _ = doRequest(t, srv, http.MethodDelete, "/api/clientes/2", validToken, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	status, _ = doRequest(t, srv, http.MethodPost, "/api/clientes", validToken, model.CustomerDraft{})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty draft, got %d", status)
	}

	status, _ = doRequest(t, srv, http.MethodGet, "/api/clientes/1/pedidos", validToken, nil)
	if status != http.StatusOK {
		t.Fatalf("customer orders: expected 200, got %d", status)
	}

	status, _ = doRequest(t, srv, http.MethodGet, "/api/clientes/ranking", validToken, nil)
	if status != http.StatusOK {
		t.Fatalf("ranking: expected 200, got %d", status)
	}
}

func TestListOrdersRejectsMalformedDates(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	status, _ := doRequest(t, srv, http.MethodGet, "/api/pedidos?fechaDesde=12-01-2024", validToken, nil)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
}

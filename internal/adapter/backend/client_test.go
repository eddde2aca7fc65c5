package backend

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/SanTaClouse/verduleria-luna/internal/domain/errors"
	"github.com/SanTaClouse/verduleria-luna/internal/domain/model"
	"github.com/SanTaClouse/verduleria-luna/internal/pkg/auth"
)

func respond(t *testing.T, w http.ResponseWriter, status int, env envelope) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(env))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := NewClient(srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return client
}

func TestNewClientRejectsRelativeURL(t *testing.T) {
	_, err := NewClient("/not-absolute", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Error(t, err)
}

func TestListOrdersSendsFilterQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/pedidos", r.URL.Path)
		assert.Equal(t, "Bar Norte", r.URL.Query().Get("cliente"))
		assert.Equal(t, "Impago", r.URL.Query().Get("estado"))
		assert.Equal(t, "2024-12-01", r.URL.Query().Get("fechaDesde"))

		data, _ := json.Marshal([]model.Order{{ID: 7}})
		respond(t, w, http.StatusOK, envelope{Success: true, Data: data})
	})

	orders, err := client.Orders().List(context.Background(), &model.OrderFilter{
		Customer: "Bar Norte",
		Status:   "Impago",
		DateFrom: model.NewDate(2024, 12, 1),
	})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(7), orders[0].ID)
}

func TestGetOrderMapsNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, http.StatusNotFound, envelope{Error: "Pedido no encontrado"})
	})

	_, err := client.Orders().Get(context.Background(), 99)
	require.ErrorIs(t, err, domainErrors.ErrNotFound)
}

func TestApplyPaymentMapsInvalidAmount(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/pedidos/3/precio-abonado", r.URL.Path)
		respond(t, w, http.StatusUnprocessableEntity, envelope{Error: "monto inválido"})
	})

	_, err := client.Orders().ApplyPayment(context.Background(), 3, 999999)
	require.ErrorIs(t, err, domainErrors.ErrInvalidAmount)
}

func TestDeleteCustomerMapsConflict(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, http.StatusConflict, envelope{Error: "tiene pedidos"})
	})

	err := client.Customers().Delete(context.Background(), "1")
	require.ErrorIs(t, err, domainErrors.ErrCustomerHasOrders)
}

func TestLoginStoresBearerToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			data, _ := json.Marshal(loginResponse{
				User:  &model.User{ID: "1", Username: "demo"},
				Token: "signed-token",
			})
			respond(t, w, http.StatusOK, envelope{Success: true, Data: data})
		case "/api/pedidos":
			assert.Equal(t, "Bearer signed-token", r.Header.Get("Authorization"))
			data, _ := json.Marshal([]model.Order{})
			respond(t, w, http.StatusOK, envelope{Success: true, Data: data})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	ctx := context.Background()
	user, token, err := client.Auth().Login(ctx, "demo", "demo123")
	require.NoError(t, err)
	assert.Equal(t, "demo", user.Username)
	assert.Equal(t, "signed-token", token)

	_, err = client.Orders().List(ctx, nil)
	require.NoError(t, err)
}

func TestLoginMapsUnauthorizedToBadCredentials(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, http.StatusUnauthorized, envelope{Error: "Usuario o contraseña incorrectos"})
	})

	_, _, err := client.Auth().Login(context.Background(), "demo", "wrong")
	require.ErrorIs(t, err, domainErrors.ErrInvalidCredentials)
}

func TestVerifyTokenMapsUnauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, http.StatusUnauthorized, envelope{Error: "Token inválido"})
	})

	_, err := client.Auth().VerifyToken(context.Background(), "garbage")
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestMalformedResponseIsAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>upstream down</html>"))
	})

	_, err := client.Orders().Get(context.Background(), 1)
	require.Error(t, err)
}

func TestSendContactReturnsConfirmation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/contacto", r.URL.Path)
		data, _ := json.Marshal("Tu mensaje ha sido enviado. Te responderemos pronto.")
		respond(t, w, http.StatusOK, envelope{Success: true, Data: data})
	})

	msg, err := client.Contact().SendContact(context.Background(), model.ContactForm{Name: "Ana"})
	require.NoError(t, err)
	assert.NotEmpty(t, msg)
}

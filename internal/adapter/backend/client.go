// Package backend implements the API boundary against a real HTTP server.
// It is selected instead of the mock backend when a base URL is configured
// and speaks the same success/data/error envelope the server emits.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"sync"
	"time"

	"github.com/SanTaClouse/verduleria-luna/internal/domain/api"
	domainErrors "github.com/SanTaClouse/verduleria-luna/internal/domain/errors"
	"github.com/SanTaClouse/verduleria-luna/internal/domain/model"
	"github.com/SanTaClouse/verduleria-luna/internal/pkg/auth"
)

// Client talks to a remote back-office API. It implements the same
// interfaces as the mock backend so the service layer cannot tell them
// apart.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger

	mu    sync.RWMutex
	token string
}

// envelope mirrors the JSON wrapper of every server response.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// NewClient creates the HTTP client with a default timeout.
func NewClient(baseURL string, logger *slog.Logger) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("api url must be absolute")
	}
	return &Client{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// SetToken installs the bearer token used on authenticated routes.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Orders returns the order operations of this client.
func (c *Client) Orders() api.Orders { return (*ordersClient)(c) }

// Customers returns the customer operations of this client.
func (c *Client) Customers() api.Customers { return (*customersClient)(c) }

// Auth returns the session operations of this client.
func (c *Client) Auth() api.Auth { return (*authClient)(c) }

// Contact returns the public form operations of this client.
func (c *Client) Contact() api.Contact { return (*contactClient)(c) }

// do performs one round trip and decodes the envelope into out.
func (c *Client) do(ctx context.Context, method, route string, query url.Values, body, out any) error {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, route)
	if query != nil {
		endpoint.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.bearer(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		c.logger.Error("malformed api response",
			slog.Int("status", resp.StatusCode),
			slog.String("route", route),
		)
		return fmt.Errorf("api error: %s", resp.Status)
	}
	if !env.Success {
		return statusError(resp.StatusCode, env.Error)
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// statusError maps HTTP statuses back to the domain sentinels so errors.Is
// works identically for both backends.
func statusError(status int, message string) error {
	var sentinel error
	switch status {
	case http.StatusNotFound:
		sentinel = domainErrors.ErrNotFound
	case http.StatusUnauthorized:
		sentinel = auth.ErrInvalidToken
	case http.StatusUnprocessableEntity:
		sentinel = domainErrors.ErrInvalidAmount
	case http.StatusConflict:
		sentinel = domainErrors.ErrCustomerHasOrders
	case http.StatusBadRequest:
		sentinel = domainErrors.ErrInvalidInput
	default:
		return fmt.Errorf("api error %d: %s", status, message)
	}
	if message == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, message)
}

type ordersClient Client

func (c *ordersClient) List(ctx context.Context, filter *model.OrderFilter) ([]model.Order, error) {
	query := url.Values{}
	if filter != nil {
		if filter.Customer != "" {
			query.Set("cliente", filter.Customer)
		}
		if filter.Status != "" {
			query.Set("estado", filter.Status)
		}
		if !filter.DateFrom.IsZero() {
			query.Set("fechaDesde", filter.DateFrom.String())
		}
		if !filter.DateTo.IsZero() {
			query.Set("fechaHasta", filter.DateTo.String())
		}
	}
	var orders []model.Order
	if err := (*Client)(c).do(ctx, http.MethodGet, "/api/pedidos", query, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *ordersClient) Get(ctx context.Context, id int64) (*model.Order, error) {
	var order model.Order
	if err := (*Client)(c).do(ctx, http.MethodGet, orderRoute(id), nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *ordersClient) Create(ctx context.Context, draft model.OrderDraft) (*api.CreatedOrder, error) {
	var created api.CreatedOrder
	if err := (*Client)(c).do(ctx, http.MethodPost, "/api/pedidos", nil, draft, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *ordersClient) Update(ctx context.Context, id int64, patch model.OrderPatch) (*model.Order, error) {
	var order model.Order
	if err := (*Client)(c).do(ctx, http.MethodPatch, orderRoute(id), nil, patch, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *ordersClient) MarkPaid(ctx context.Context, id int64) (*model.Order, error) {
	var order model.Order
	if err := (*Client)(c).do(ctx, http.MethodPost, orderRoute(id)+"/marcar-pago", nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *ordersClient) ApplyPayment(ctx context.Context, id int64, amountPaid float64) (*model.Order, error) {
	body := map[string]float64{"precioAbonado": amountPaid}
	var order model.Order
	if err := (*Client)(c).do(ctx, http.MethodPut, orderRoute(id)+"/precio-abonado", nil, body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *ordersClient) Delete(ctx context.Context, id int64) error {
	return (*Client)(c).do(ctx, http.MethodDelete, orderRoute(id), nil, nil, nil)
}

func (c *ordersClient) ListByCustomer(ctx context.Context, customerID string) ([]model.Order, error) {
	var orders []model.Order
	route := "/api/clientes/" + customerID + "/pedidos"
	if err := (*Client)(c).do(ctx, http.MethodGet, route, nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *ordersClient) WhatsappLink(ctx context.Context, id int64) (string, error) {
	var link string
	if err := (*Client)(c).do(ctx, http.MethodGet, orderRoute(id)+"/whatsapp-link", nil, nil, &link); err != nil {
		return "", err
	}
	return link, nil
}

func (c *ordersClient) MarkWhatsappSent(ctx context.Context, id int64) (*model.Order, error) {
	var order model.Order
	if err := (*Client)(c).do(ctx, http.MethodPost, orderRoute(id)+"/whatsapp-enviado", nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func orderRoute(id int64) string {
	return "/api/pedidos/" + strconv.FormatInt(id, 10)
}

type customersClient Client

func (c *customersClient) List(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	if err := (*Client)(c).do(ctx, http.MethodGet, "/api/clientes", nil, nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (c *customersClient) Get(ctx context.Context, id string) (*model.Customer, error) {
	var customer model.Customer
	if err := (*Client)(c).do(ctx, http.MethodGet, "/api/clientes/"+id, nil, nil, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *customersClient) Create(ctx context.Context, draft model.CustomerDraft) (*model.Customer, error) {
	var customer model.Customer
	if err := (*Client)(c).do(ctx, http.MethodPost, "/api/clientes", nil, draft, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *customersClient) Update(ctx context.Context, id string, patch model.CustomerPatch) (*model.Customer, error) {
	var customer model.Customer
	if err := (*Client)(c).do(ctx, http.MethodPatch, "/api/clientes/"+id, nil, patch, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *customersClient) Delete(ctx context.Context, id string) error {
	return (*Client)(c).do(ctx, http.MethodDelete, "/api/clientes/"+id, nil, nil, nil)
}

type authClient Client

type loginRequest struct {
	Username string `json:"usuario"`
	Password string `json:"password"`
}

type loginResponse struct {
	User  *model.User `json:"usuario"`
	Token string      `json:"token"`
}

func (c *authClient) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	var data loginResponse
	err := (*Client)(c).do(ctx, http.MethodPost, "/api/auth/login", nil, loginRequest{Username: username, Password: password}, &data)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}
	(*Client)(c).SetToken(data.Token)
	return data.User, data.Token, nil
}

func (c *authClient) VerifyToken(ctx context.Context, token string) (*model.User, error) {
	(*Client)(c).SetToken(token)
	var user model.User
	if err := (*Client)(c).do(ctx, http.MethodGet, "/api/auth/verificar", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *authClient) Logout(ctx context.Context) error {
	err := (*Client)(c).do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, nil)
	(*Client)(c).SetToken("")
	return err
}

type contactClient Client

func (c *contactClient) SendContact(ctx context.Context, form model.ContactForm) (string, error) {
	var message string
	if err := (*Client)(c).do(ctx, http.MethodPost, "/api/contacto", nil, form, &message); err != nil {
		return "", err
	}
	return message, nil
}

func (c *contactClient) SendWholesale(ctx context.Context, form model.WholesaleForm) (string, error) {
	var message string
	if err := (*Client)(c).do(ctx, http.MethodPost, "/api/contacto/mayorista", nil, form, &message); err != nil {
		return "", err
	}
	return message, nil
}

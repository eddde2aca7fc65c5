package model

import "time"

// OrderStatus describes payment state of an order. It is derived from the
// paid amount and never set independently.
type OrderStatus string

const (
	OrderStatusPaid   OrderStatus = "Pago"
	OrderStatusUnpaid OrderStatus = "Impago"
)

// StatusFor derives order status from the amount paid so far.
func StatusFor(amountPaid, price float64) OrderStatus {
	if amountPaid >= price {
		return OrderStatusPaid
	}
	return OrderStatusUnpaid
}

// CustomerSnapshot is the customer data frozen into an order at creation
// time. It is historical and never follows later customer edits.
type CustomerSnapshot struct {
	ID      string `json:"id"`
	Name    string `json:"nombre"`
	Address string `json:"direccion,omitempty"`
	Phone   string `json:"telefono,omitempty"`
}

// UserRef identifies the back-office user that created an order.
type UserRef struct {
	ID       string `json:"id"`
	Username string `json:"usuario"`
	Name     string `json:"nombre,omitempty"`
}

// Order describes one customer transaction.
type Order struct {
	ID           int64            `json:"id"`
	CustomerID   string           `json:"clienteId"`
	Customer     CustomerSnapshot `json:"cliente"`
	Description  string           `json:"descripcion"`
	Price        float64          `json:"precio"`
	AmountPaid   float64          `json:"precioAbonado"`
	Status       OrderStatus      `json:"estado"`
	Date         Date             `json:"fecha"`
	CreatedAt    time.Time        `json:"timestamp"`
	WhatsappSent bool             `json:"whatsappEnviado"`
	CreatedBy    *UserRef         `json:"creadoPor,omitempty"`
}

// OrderDraft carries the caller-supplied fields for order creation.
type OrderDraft struct {
	CustomerID  string  `json:"clienteId"`
	Description string  `json:"descripcion"`
	Price       float64 `json:"precio"`
	AmountPaid  float64 `json:"precioAbonado"`
	Date        Date    `json:"fecha"`
}

// OrderPatch is a shallow partial update of order fields. Status is
// recomputed after applying, never patched directly.
type OrderPatch struct {
	Description *string  `json:"descripcion,omitempty"`
	Price       *float64 `json:"precio,omitempty"`
	AmountPaid  *float64 `json:"precioAbonado,omitempty"`
	Date        *Date    `json:"fecha,omitempty"`
}

// FilterAll is the sentinel meaning "no restriction" for a filter field.
const FilterAll = "todos"

// OrderFilter holds the ephemeral list-view criteria.
type OrderFilter struct {
	Customer string `json:"cliente"`
	Status   string `json:"estado"`
	DateFrom Date   `json:"fechaDesde"`
	DateTo   Date   `json:"fechaHasta"`
}

// Matches reports whether the order passes every active predicate.
func (f OrderFilter) Matches(o Order) bool {
	if f.Customer != "" && f.Customer != FilterAll && o.Customer.Name != f.Customer {
		return false
	}
	if f.Status != "" && f.Status != FilterAll && string(o.Status) != f.Status {
		return false
	}
	if !f.DateFrom.IsZero() && o.Date.Before(f.DateFrom) {
		return false
	}
	if !f.DateTo.IsZero() && o.Date.After(f.DateTo) {
		return false
	}
	return true
}

// OrderStats aggregates the currently visible orders.
type OrderStats struct {
	TotalSales     float64 `json:"totalVentas"`
	TotalCollected float64 `json:"totalCobrado"`
	TotalPending   float64 `json:"totalPendiente"`
	PaidCount      int     `json:"cantidadPagos"`
	UnpaidCount    int     `json:"cantidadImpagos"`
	TotalCount     int     `json:"cantidadTotal"`
}

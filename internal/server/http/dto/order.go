package dto

import "github.com/SanTaClouse/verduleria-luna/internal/domain/model"

// CreateOrderRequest is the POST /api/pedidos payload.
type CreateOrderRequest struct {
	CustomerID  string     `json:"clienteId" binding:"required"`
	Description string     `json:"descripcion"`
	Price       float64    `json:"precio"`
	AmountPaid  float64    `json:"precioAbonado"`
	Date        model.Date `json:"fecha"`
}

// Draft converts the request into the domain draft.
func (r CreateOrderRequest) Draft() model.OrderDraft {
	return model.OrderDraft{
		CustomerID:  r.CustomerID,
		Description: r.Description,
		Price:       r.Price,
		AmountPaid:  r.AmountPaid,
		Date:        r.Date,
	}
}

// PaymentRequest is the PUT /api/pedidos/:id/precio-abonado payload.
type PaymentRequest struct {
	AmountPaid float64 `json:"precioAbonado"`
}

// OrderFilterQuery binds the list-view query string.
type OrderFilterQuery struct {
	Customer string `form:"cliente"`
	Status   string `form:"estado"`
	DateFrom string `form:"fechaDesde"`
	DateTo   string `form:"fechaHasta"`
}

// Filter converts the query into the domain filter. Empty and malformed
// dates mean no restriction, matching the sentinel semantics.
func (q OrderFilterQuery) Filter() (*model.OrderFilter, error) {
	if q.Customer == "" && q.Status == "" && q.DateFrom == "" && q.DateTo == "" {
		return nil, nil
	}
	filter := &model.OrderFilter{Customer: q.Customer, Status: q.Status}
	if q.DateFrom != "" {
		d, err := model.ParseDate(q.DateFrom)
		if err != nil {
			return nil, err
		}
		filter.DateFrom = d
	}
	if q.DateTo != "" {
		d, err := model.ParseDate(q.DateTo)
		if err != nil {
			return nil, err
		}
		filter.DateTo = d
	}
	return filter, nil
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SanTaClouse/verduleria-luna/internal/domain/model"
	"github.com/SanTaClouse/verduleria-luna/internal/server/http/dto"
	"github.com/SanTaClouse/verduleria-luna/internal/service"
)

// OrderHandler serves the /api/pedidos routes.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler creates OrderHandler instance.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/pedidos with optional filter query.
func (h *OrderHandler) List(c *gin.Context) {
	var query dto.OrderFilterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, "filtro inválido")
		return
	}
	filter, err := query.Filter()
	if err != nil {
		badRequest(c, "fecha inválida, formato esperado 2006-01-02")
		return
	}

	respond(c, http.StatusOK, h.facade.ListOrders(c.Request.Context(), filter))
}

// Get handles GET /api/pedidos/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	respond(c, http.StatusOK, h.facade.GetOrder(c.Request.Context(), id))
}

// Create handles POST /api/pedidos.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "clienteId es obligatorio")
		return
	}
	respond(c, http.StatusCreated, h.facade.CreateOrder(c.Request.Context(), req.Draft()))
}

// Update handles PATCH /api/pedidos/:id.
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	var patch model.OrderPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "cuerpo inválido")
		return
	}
	respond(c, http.StatusOK, h.facade.UpdateOrder(c.Request.Context(), id, patch))
}

// MarkPaid handles POST /api/pedidos/:id/marcar-pago.
func (h *OrderHandler) MarkPaid(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	respond(c, http.StatusOK, h.facade.MarkOrderPaid(c.Request.Context(), id))
}

// ApplyPayment handles PUT /api/pedidos/:id/precio-abonado.
func (h *OrderHandler) ApplyPayment(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "precioAbonado es obligatorio")
		return
	}
	respond(c, http.StatusOK, h.facade.ApplyPayment(c.Request.Context(), id, req.AmountPaid))
}

// Delete handles DELETE /api/pedidos/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	respond(c, http.StatusOK, h.facade.DeleteOrder(c.Request.Context(), id))
}

// WhatsappLink handles GET /api/pedidos/:id/whatsapp-link.
func (h *OrderHandler) WhatsappLink(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	respond(c, http.StatusOK, h.facade.WhatsappLink(c.Request.Context(), id))
}

// MarkWhatsappSent handles POST /api/pedidos/:id/whatsapp-enviado.
func (h *OrderHandler) MarkWhatsappSent(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	respond(c, http.StatusOK, h.facade.MarkWhatsappSent(c.Request.Context(), id))
}

// Stats handles GET /api/pedidos/estadisticas over the working copy.
func (h *OrderHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, service.Result[model.OrderStats]{Success: true, Data: h.facade.OrderStats()})
}

// Grouped handles GET /api/pedidos/agrupados over the working copy.
func (h *OrderHandler) Grouped(c *gin.Context) {
	c.JSON(http.StatusOK, service.Result[any]{Success: true, Data: h.facade.GroupedOrders()})
}

func orderID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "id de pedido inválido")
		return 0, false
	}
	return id, true
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SanTaClouse/verduleria-luna/internal/domain/model"
	"github.com/SanTaClouse/verduleria-luna/internal/service"
)

// CustomerHandler serves the /api/clientes routes.
type CustomerHandler struct {
	facade CustomerFacade
}

// NewCustomerHandler creates CustomerHandler instance.
func NewCustomerHandler(facade CustomerFacade) *CustomerHandler {
	return &CustomerHandler{facade: facade}
}

// List handles GET /api/clientes.
func (h *CustomerHandler) List(c *gin.Context) {
	respond(c, http.StatusOK, h.facade.ListCustomers(c.Request.Context()))
}

// Get handles GET /api/clientes/:id.
func (h *CustomerHandler) Get(c *gin.Context) {
	respond(c, http.StatusOK, h.facade.GetCustomer(c.Request.Context(), c.Param("id")))
}

// Create handles POST /api/clientes.
func (h *CustomerHandler) Create(c *gin.Context) {
	var draft model.CustomerDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		badRequest(c, "cuerpo inválido")
		return
	}
	respond(c, http.StatusCreated, h.facade.CreateCustomer(c.Request.Context(), draft))
}

// Update handles PATCH /api/clientes/:id.
func (h *CustomerHandler) Update(c *gin.Context) {
	var patch model.CustomerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "cuerpo inválido")
		return
	}
	respond(c, http.StatusOK, h.facade.UpdateCustomer(c.Request.Context(), c.Param("id"), patch))
}

// Delete handles DELETE /api/clientes/:id.
func (h *CustomerHandler) Delete(c *gin.Context) {
	respond(c, http.StatusOK, h.facade.DeleteCustomer(c.Request.Context(), c.Param("id")))
}

// Orders handles GET /api/clientes/:id/pedidos.
func (h *CustomerHandler) Orders(c *gin.Context) {
	respond(c, http.StatusOK, h.facade.OrdersByCustomer(c.Request.Context(), c.Param("id")))
}

// Ranking handles GET /api/clientes/ranking over the working copy.
func (h *CustomerHandler) Ranking(c *gin.Context) {
	c.JSON(http.StatusOK, service.Result[[]model.Customer]{Success: true, Data: h.facade.CustomersByRevenue()})
}

// Stats handles GET /api/clientes/estadisticas over the working copy.
func (h *CustomerHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, service.Result[model.CustomerStats]{Success: true, Data: h.facade.CustomerStats()})
}

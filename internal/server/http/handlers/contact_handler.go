package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SanTaClouse/verduleria-luna/internal/domain/model"
)

// ContactHandler serves the public contact routes.
type ContactHandler struct {
	facade ContactFacade
}

// NewContactHandler creates ContactHandler instance.
func NewContactHandler(facade ContactFacade) *ContactHandler {
	return &ContactHandler{facade: facade}
}

// Send handles POST /api/contacto.
func (h *ContactHandler) Send(c *gin.Context) {
	var form model.ContactForm
	if err := c.ShouldBindJSON(&form); err != nil {
		badRequest(c, "cuerpo inválido")
		return
	}
	respond(c, http.StatusOK, h.facade.SendContact(c.Request.Context(), form))
}

// SendWholesale handles POST /api/contacto/mayorista.
func (h *ContactHandler) SendWholesale(c *gin.Context) {
	var form model.WholesaleForm
	if err := c.ShouldBindJSON(&form); err != nil {
		badRequest(c, "cuerpo inválido")
		return
	}
	respond(c, http.StatusOK, h.facade.SendWholesale(c.Request.Context(), form))
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SanTaClouse/verduleria-luna/internal/server/http/dto"
	"github.com/SanTaClouse/verduleria-luna/internal/service"
)

// AuthHandler processes login, logout and token verification.
type AuthHandler struct {
	facade SessionFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade SessionFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "usuario y password son obligatorios")
		return
	}

	res := h.facade.Login(c.Request.Context(), req.Username, req.Password)
	respond(c, http.StatusOK, res)
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.facade.Logout(c.Request.Context())
	c.JSON(http.StatusOK, service.Result[struct{}]{Success: true})
}

// Verify handles GET /api/auth/verificar. The middleware already resolved
// the token, so this only echoes the user back.
func (h *AuthHandler) Verify(c *gin.Context) {
	user := CurrentUser(c)
	c.JSON(http.StatusOK, service.Result[any]{Success: true, Data: user})
}

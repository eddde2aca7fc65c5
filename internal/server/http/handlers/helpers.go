package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/SanTaClouse/verduleria-luna/internal/domain/errors"
	"github.com/SanTaClouse/verduleria-luna/internal/domain/model"
	"github.com/SanTaClouse/verduleria-luna/internal/pkg/auth"
	"github.com/SanTaClouse/verduleria-luna/internal/server/http/middleware"
	"github.com/SanTaClouse/verduleria-luna/internal/service"
)

// respond writes the envelope with a status derived from the result.
func respond[T any](c *gin.Context, okStatus int, res service.Result[T]) {
	if res.Success {
		c.JSON(okStatus, res)
		return
	}
	c.JSON(statusOf(res.Err), res)
}

// statusOf maps domain sentinels to HTTP statuses. The HTTP adapter applies
// the inverse mapping on the client side.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainErrors.ErrInvalidAmount), errors.Is(err, domainErrors.ErrFutureDate):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainErrors.ErrCustomerHasOrders):
		return http.StatusConflict
	case errors.Is(err, domainErrors.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domainErrors.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// badRequest writes a failed envelope for malformed payloads.
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, service.Result[struct{}]{Error: message})
}

// CurrentUser extracts the authenticated user placed by the middleware.
func CurrentUser(c *gin.Context) *model.User {
	val, ok := c.Get(middleware.UserContextKey)
	if !ok {
		return nil
	}
	user, _ := val.(*model.User)
	return user
}

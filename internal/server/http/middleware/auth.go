package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SanTaClouse/verduleria-luna/internal/domain/model"
	"github.com/SanTaClouse/verduleria-luna/internal/service"
)

const (
	// UserContextKey is the gin context key of the authenticated user.
	UserContextKey = "currentUser"
	// TokenContextKey is the gin context key of the verified bearer token.
	TokenContextKey = "bearerToken"
)

// TokenVerifier checks a bearer token and resolves its user.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) service.Result[*model.User]
}

// AuthRequired gates back-office routes behind a verified bearer token.
func AuthRequired(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, service.Result[struct{}]{Error: "Token requerido"})
			return
		}

		res := verifier.VerifyToken(c.Request.Context(), token)
		if !res.Success {
			c.AbortWithStatusJSON(http.StatusUnauthorized, service.Result[struct{}]{Error: res.Error})
			return
		}

		c.Set(UserContextKey, res.Data)
		c.Set(TokenContextKey, token)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

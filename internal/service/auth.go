package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SanTaClouse/verduleria-luna/internal/domain/api"
	domainErrors "github.com/SanTaClouse/verduleria-luna/internal/domain/errors"
	"github.com/SanTaClouse/verduleria-luna/internal/domain/model"
	"github.com/SanTaClouse/verduleria-luna/internal/pkg/auth"
)

// LoginData is the payload of a successful login.
type LoginData struct {
	User  *model.User `json:"usuario"`
	Token string      `json:"token"`
}

// AuthService exposes authentication behind the result envelope.
type AuthService struct {
	auth   api.Auth
	logger *slog.Logger
}

// NewAuthService constructs AuthService.
func NewAuthService(a api.Auth, logger *slog.Logger) *AuthService {
	return &AuthService{auth: a, logger: logger}
}

func authMessage(err error) string {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		return "Usuario o contraseña incorrectos"
	case errors.Is(err, auth.ErrInvalidToken):
		return "Token inválido"
	default:
		return "Error de autenticación"
	}
}

func (s *AuthService) Login(ctx context.Context, username, password string) Result[LoginData] {
	return capture(s.logger, "auth.login", authMessage, func() (LoginData, error) {
		user, token, err := s.auth.Login(ctx, username, password)
		if err != nil {
			return LoginData{}, err
		}
		return LoginData{User: user, Token: token}, nil
	})
}

func (s *AuthService) VerifyToken(ctx context.Context, token string) Result[*model.User] {
	return capture(s.logger, "auth.verify", authMessage, func() (*model.User, error) {
		return s.auth.VerifyToken(ctx, token)
	})
}

func (s *AuthService) Logout(ctx context.Context) Result[struct{}] {
	return capture(s.logger, "auth.logout", authMessage, func() (struct{}, error) {
		return struct{}{}, s.auth.Logout(ctx)
	})
}

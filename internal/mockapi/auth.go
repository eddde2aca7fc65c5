package mockapi

import (
	"context"
	"log/slog"

	domainErrors "github.com/SanTaClouse/verduleria-luna/internal/domain/errors"
	"github.com/SanTaClouse/verduleria-luna/internal/domain/model"
	"github.com/SanTaClouse/verduleria-luna/internal/pkg/auth"
)

// Login checks credentials against the demo allow-list and issues a signed
// session token.
func (a *authAPI) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	if err := a.backend.pause(ctx); err != nil {
		return nil, "", err
	}

	b := a.backend
	for _, cred := range seedCredentials {
		if cred.username != username {
			continue
		}
		if err := b.hasher.Compare(cred.passwordHash, password); err != nil {
			break
		}
		user := findUser(username)
		if user == nil {
			break
		}
		token, err := b.tokens.IssueToken(user.ID)
		if err != nil {
			return nil, "", err
		}
		b.logger.Info("login", slog.String("user", username))
		return user, token, nil
	}

	return nil, "", domainErrors.ErrInvalidCredentials
}

// VerifyToken resolves a signed token back to its demo user.
func (a *authAPI) VerifyToken(ctx context.Context, token string) (*model.User, error) {
	if err := a.backend.pauseQuick(ctx); err != nil {
		return nil, err
	}

	userID, err := a.backend.tokens.ParseToken(token)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}
	for i := range seedUsers {
		if seedUsers[i].ID == userID {
			user := seedUsers[i]
			return &user, nil
		}
	}
	return nil, auth.ErrInvalidToken
}

// Logout does nothing server-side; the session manager clears local state.
func (a *authAPI) Logout(ctx context.Context) error {
	return a.backend.pauseQuick(ctx)
}

func findUser(username string) *model.User {
	for i := range seedUsers {
		if seedUsers[i].Username == username {
			user := seedUsers[i]
			return &user
		}
	}
	return nil
}

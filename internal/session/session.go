// Package session tracks the authenticated back-office user across process
// restarts. The token and the user record live in the blob store; on startup
// the stored token is re-verified before the session is trusted.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/SanTaClouse/verduleria-luna/internal/domain/model"
	"github.com/SanTaClouse/verduleria-luna/internal/service"
	"github.com/SanTaClouse/verduleria-luna/internal/storage/blob"
)

// Status is the session lifecycle state.
type Status int

const (
	StatusUnknown Status = iota
	StatusVerifying
	StatusAuthenticated
	StatusAnonymous
)

func (s Status) String() string {
	switch s {
	case StatusVerifying:
		return "verifying"
	case StatusAuthenticated:
		return "authenticated"
	case StatusAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Manager owns the current session state.
type Manager struct {
	auth   *service.AuthService
	store  blob.Store
	logger *slog.Logger

	mu     sync.RWMutex
	status Status
	user   *model.User
	token  string
}

// NewManager constructs Manager in the unknown state.
func NewManager(auth *service.AuthService, store blob.Store, logger *slog.Logger) *Manager {
	return &Manager{auth: auth, store: store, logger: logger}
}

// Bootstrap restores the persisted session. A stored token must verify to be
// trusted; on rejection the session is wiped. Without a token the cached user
// record is accepted as-is so the demo survives restarts.
func (m *Manager) Bootstrap(ctx context.Context) error {
	m.setStatus(StatusVerifying)

	token, ok := m.loadToken()
	if !ok {
		if user := m.loadUser(); user != nil {
			m.become(StatusAuthenticated, user, "")
			return nil
		}
		m.become(StatusAnonymous, nil, "")
		return nil
	}

	res := m.auth.VerifyToken(ctx, token)
	if !res.Success {
		m.logger.Info("stored token rejected, clearing session")
		m.clearStore()
		m.become(StatusAnonymous, nil, "")
		return nil
	}

	m.persistUser(res.Data)
	m.become(StatusAuthenticated, res.Data, token)
	return nil
}

// Login authenticates and, only on success, persists token and user.
func (m *Manager) Login(ctx context.Context, username, password string) service.Result[service.LoginData] {
	res := m.auth.Login(ctx, username, password)
	if !res.Success {
		return res
	}

	m.persistToken(res.Data.Token)
	m.persistUser(res.Data.User)
	m.become(StatusAuthenticated, res.Data.User, res.Data.Token)
	return res
}

// Logout clears the persisted session. The remote call is best effort, local
// state is wiped regardless of its outcome.
func (m *Manager) Logout(ctx context.Context) {
	if res := m.auth.Logout(ctx); !res.Success {
		m.logger.Warn("remote logout failed", slog.Any("error", res.Err))
	}
	m.clearStore()
	m.become(StatusAnonymous, nil, "")
}

// CurrentUser returns the authenticated user, nil otherwise.
func (m *Manager) CurrentUser() *model.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

// Status returns the current lifecycle state.
func (m *Manager) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// Token returns the active bearer token, empty when anonymous.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

func (m *Manager) setStatus(s Status) {
	m.mu.Lock()
	m.status = s
	m.mu.Unlock()
}

func (m *Manager) become(s Status, user *model.User, token string) {
	m.mu.Lock()
	m.status = s
	m.user = user
	m.token = token
	m.mu.Unlock()
}

func (m *Manager) loadToken() (string, bool) {
	data, ok, err := m.store.Get(blob.KeyToken)
	if err != nil || !ok {
		return "", false
	}
	var token string
	if err := json.Unmarshal(data, &token); err != nil || token == "" {
		return "", false
	}
	return token, true
}

func (m *Manager) loadUser() *model.User {
	data, ok, err := m.store.Get(blob.KeyUser)
	if err != nil || !ok {
		return nil
	}
	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil
	}
	return &user
}

func (m *Manager) persistToken(token string) {
	data, err := json.Marshal(token)
	if err != nil {
		return
	}
	if err := m.store.Set(blob.KeyToken, data); err != nil {
		m.logger.Warn("persist token", slog.Any("error", err))
	}
}

func (m *Manager) persistUser(user *model.User) {
	data, err := json.Marshal(user)
	if err != nil {
		return
	}
	if err := m.store.Set(blob.KeyUser, data); err != nil {
		m.logger.Warn("persist user", slog.Any("error", err))
	}
}

func (m *Manager) clearStore() {
	if err := m.store.Remove(blob.KeyToken); err != nil {
		m.logger.Warn("clear token", slog.Any("error", err))
	}
	if err := m.store.Remove(blob.KeyUser); err != nil {
		m.logger.Warn("clear user", slog.Any("error", err))
	}
}

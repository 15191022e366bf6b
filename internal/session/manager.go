// Package session manages the guest session token and answers the ambient
// authentication question. A guest token marks "this device has local data";
// an access token marks "this device is signed in". The two are independent
// keys and must never be conflated: absence of a guest token does not mean
// authenticated, and clearing the guest token leaves auth state alone.
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/andrewvu270/AI-Academic-Scheduler/pkg/types"
)

// TokenPrefix marks guest session tokens on the wire and in the store.
const TokenPrefix = "guest-"

// Manager owns the guest_session_id key. The auth keys are read-only here;
// the sign-in flow writes them.
type Manager struct {
	mu      sync.Mutex
	kv      types.KeyValue
	gateway types.Gateway
	log     *slog.Logger
}

// NewManager wraps a KeyValue backend and a gateway for best-effort session
// registration. A nil logger falls back to slog.Default.
func NewManager(kv types.KeyValue, gateway types.Gateway, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{kv: kv, gateway: gateway, log: log}
}

// GetOrCreate returns the device's guest token, minting one on first use.
// An existing token is returned unchanged with no remote traffic. A fresh
// token is persisted first and then announced to the backend; registration
// failure is logged and swallowed, and the token stays valid locally.
func (m *Manager) GetOrCreate(ctx context.Context) (string, error) {
	token, minted, err := m.getOrMint()
	if err != nil {
		return "", err
	}
	if !minted {
		return token, nil
	}

	if err := m.gateway.RegisterGuestSession(ctx, token); err != nil {
		m.log.Warn("guest session registration failed, continuing locally",
			"session_id", token, "error", err)
	}
	return token, nil
}

func (m *Manager) getOrMint() (token string, minted bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok, err := m.kv.Get(types.KeyGuestSession)
	if err != nil {
		return "", false, err
	}
	if ok && existing != "" {
		return existing, false, nil
	}

	token = NewToken()
	if err := m.kv.Set(types.KeyGuestSession, token); err != nil {
		return "", false, err
	}
	m.log.Info("minted guest session", "session_id", token)
	return token, true, nil
}

// NewToken mints a guest session token of the shape guest-<uuid4>.
func NewToken() string {
	return TokenPrefix + uuid.New().String()
}

// Current returns the guest token if one exists. Never mints.
func (m *Manager) Current() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	token, ok, err := m.kv.Get(types.KeyGuestSession)
	if err != nil {
		m.log.Debug("reading guest session", "error", err)
		return "", false
	}
	return token, ok && token != ""
}

// IsAuthenticated reports whether an access token is present. This is the
// single routing question the resolver asks.
func (m *Manager) IsAuthenticated() bool {
	token, ok, err := m.kv.Get(types.KeyAccessToken)
	if err != nil {
		m.log.Debug("reading access token", "error", err)
		return false
	}
	return ok && token != ""
}

// IsGuest is the complement of IsAuthenticated. It holds even when no guest
// token has been minted yet.
func (m *Manager) IsGuest() bool {
	return !m.IsAuthenticated()
}

// Clear removes only the guest token key. Entity cleanup is the local
// store's job and runs separately.
func (m *Manager) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.kv.Delete(types.KeyGuestSession)
}

// Package session owns the authentication lifecycle: it is the only
// writer of the token store and the source of the guard's state.
package session

import (
	"context"
	"log/slog"

	"github.com/eventfold/eventfold/pkg/api"
	"github.com/eventfold/eventfold/pkg/guard"
	"github.com/eventfold/eventfold/pkg/logging"
	"github.com/eventfold/eventfold/pkg/querycache"
	"github.com/eventfold/eventfold/pkg/tokens"
	"github.com/eventfold/eventfold/pkg/tokenstore"
)

var userDomain = querycache.Domain("user")

type Manager struct {
	API   *api.Client
	Store tokenstore.Store
	Cache querycache.View
}

func New(apiClient *api.Client, store tokenstore.Store, cache querycache.View) *Manager {
	return &Manager{API: apiClient, Store: store, Cache: cache}
}

// AccessToken makes the manager a TokenSource for the API client.
func (m *Manager) AccessToken() (string, error) {
	return m.Store.AccessToken()
}

func (m *Manager) Login(ctx context.Context, email, password string) error {
	l := logging.FromContext(ctx).With("svc", "session.login")

	pair, err := m.API.Login(ctx, email, password)
	if err != nil {
		l.Warn("login_failed", "error", err)
		return err
	}
	if err := m.Store.SetToken(pair.AccessToken, pair.RefreshToken); err != nil {
		l.Error("token_store_write_failed", "error", err)
		return err
	}
	m.Cache.Invalidate(userDomain.All())
	l.Info("login_success")
	return nil
}

// Refresh exchanges the stored refresh token for a new pair. On any
// failure both tokens are cleared: a broken refresh token is
// irrecoverable from this layer.
func (m *Manager) Refresh(ctx context.Context) error {
	l := logging.FromContext(ctx).With("svc", "session.refresh")

	refresh, err := m.Store.RefreshToken()
	if err != nil || refresh == "" {
		m.clear(ctx, l)
		return api.ErrNotAuthenticated
	}
	pair, err := m.API.RefreshTokens(ctx, refresh)
	if err != nil {
		l.Warn("refresh_failed", "error", err)
		m.clear(ctx, l)
		return err
	}
	if err := m.Store.SetToken(pair.AccessToken, pair.RefreshToken); err != nil {
		l.Error("token_store_write_failed", "error", err)
		return err
	}
	l.Info("refresh_success")
	return nil
}

func (m *Manager) Logout(ctx context.Context) error {
	l := logging.FromContext(ctx).With("svc", "session.logout")

	if refresh, err := m.Store.RefreshToken(); err == nil && refresh != "" {
		if err := m.API.Logout(ctx, refresh); err != nil {
			// server-side revocation is best effort; local state
			// still resets
			l.Warn("logout_revoke_failed", "error", err)
		}
	}
	m.clear(ctx, l)
	l.Info("logout_success")
	return nil
}

func (m *Manager) clear(ctx context.Context, l *slog.Logger) {
	if err := m.Store.Clear(); err != nil {
		l.Error("token_store_clear_failed", "error", err)
	}
	m.Cache.Remove(userDomain.All())
}

// Authenticated reports whether a usable access token exists. An
// expired access token with a live refresh token triggers exactly one
// refresh attempt before giving up.
func (m *Manager) Authenticated(ctx context.Context) bool {
	access, err := m.Store.AccessToken()
	if err != nil {
		return false
	}
	if tokens.Valid(access) {
		return true
	}
	if !tokens.Expired(access) {
		// absent or garbage; nothing to refresh from
		return false
	}
	if err := m.Refresh(ctx); err != nil {
		return false
	}
	access, err = m.Store.AccessToken()
	return err == nil && tokens.Valid(access)
}

func (m *Manager) User() *tokenstore.TokenUser {
	return tokenstore.UserFromToken(m.Store)
}

// State assembles the guard's view. The manifest is read through the
// query cache under user/manifest, so repeated gate checks inside the
// staleness window cost no network round-trips.
func (m *Manager) State(ctx context.Context) guard.State {
	s := guard.State{}
	if !m.Authenticated(ctx) {
		return s
	}
	s.Authenticated = true

	v, err := m.Cache.Get(ctx, userDomain.Named("manifest"), func(ctx context.Context) (any, error) {
		return m.API.GetManifest(ctx)
	})
	if err != nil {
		logging.FromContext(ctx).Warn("manifest_fetch_failed", "svc", "session.state", "error", err)
		return s
	}
	s.Manifest = v.(*api.Manifest)
	return s
}

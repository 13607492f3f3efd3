// Package session exposes the two process-wide session settings — the
// access token and the demo-mode flag — as explicit accessors over the
// local store. Both are read fresh on every call; nothing here caches,
// so toggling demo mode takes effect on the next data operation and
// never migrates data between stores.
package session

import (
	"context"
	"log/slog"
	"strings"

	"github.com/kit-start/kitstart/internal/localstore"
)

// Store reads and writes session settings.
type Store struct {
	db     *localstore.DB
	logger *slog.Logger
}

// NewStore creates a session store.
func NewStore(db *localstore.DB, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{db: db, logger: logger}
}

// Token returns the persisted access token, if any.
func (s *Store) Token(ctx context.Context) (string, bool) {
	token, err := s.db.GetSetting(ctx, localstore.SettingAccessToken)
	if err != nil {
		s.logger.Warn("failed to read access token", "error", err)
		return "", false
	}
	return token, token != ""
}

// SetToken persists the access token. Empty tokens are ignored, so a
// failed OIDC exchange never clears a working session.
func (s *Store) SetToken(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	return s.db.SetSetting(ctx, localstore.SettingAccessToken, token)
}

// ClearToken removes the persisted access token.
func (s *Store) ClearToken(ctx context.Context) error {
	return s.db.DeleteSetting(ctx, localstore.SettingAccessToken)
}

// TokenValid reports whether a token is present. Expiry is the OIDC
// collaborator's concern.
func (s *Store) TokenValid(ctx context.Context) bool {
	_, ok := s.Token(ctx)
	return ok
}

// DemoEnabled reports the persisted demo-mode flag.
func (s *Store) DemoEnabled(ctx context.Context) bool {
	return s.db.IsDemoModeEnabled(ctx)
}

// EnableDemo turns demo mode on.
func (s *Store) EnableDemo(ctx context.Context) error {
	return s.db.SetSetting(ctx, localstore.SettingDemoMode, "true")
}

// DisableDemo turns demo mode off.
func (s *Store) DisableDemo(ctx context.Context) error {
	return s.db.SetSetting(ctx, localstore.SettingDemoMode, "false")
}

// ToggleDemo flips the demo-mode flag and returns the new state.
func (s *Store) ToggleDemo(ctx context.Context) (bool, error) {
	if s.DemoEnabled(ctx) {
		return false, s.DisableDemo(ctx)
	}
	return true, s.EnableDemo(ctx)
}

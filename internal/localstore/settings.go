package localstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Namespaced setting keys, kept identical to the browser storage keys
// of the original client so exported demo data stays recognizable.
const (
	SettingDemoMode    = "kitstart_demo_mode"
	SettingAccessToken = "kitstart_access_token"
)

// GetSetting reads a setting value; an absent key reads as the empty
// string, matching browser-storage semantics.
func (db *DB) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read setting %s: %w", key, err)
	}
	return value, nil
}

// SetSetting writes a setting value, replacing any previous one.
func (db *DB) SetSetting(ctx context.Context, key, value string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to write setting %s: %w", key, err)
	}
	return nil
}

// DeleteSetting removes a setting; removing an absent key is a no-op.
func (db *DB) DeleteSetting(ctx context.Context, key string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete setting %s: %w", key, err)
	}
	return nil
}

// IsDemoModeEnabled reports the persisted demo flag; absent or any
// value other than "true" means disabled.
func (db *DB) IsDemoModeEnabled(ctx context.Context) bool {
	value, err := db.GetSetting(ctx, SettingDemoMode)
	if err != nil {
		return false
	}
	return value == "true"
}

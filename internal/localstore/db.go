// Package localstore is the Local Demo Store: a SQLite-backed stand-in
// for the remote API used in demo mode and as the fallback target when
// the network is unreachable. It also persists the session settings
// (demo flag, access token) the rest of the client reads.
package localstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	*sql.DB

	// latency, when set, delays every store operation to simulate the
	// network round-trip the store substitutes for.
	latency time.Duration
}

// New creates a new SQLite database connection.
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{DB: db}, nil
}

// SetLatency configures the simulated per-operation delay. Zero
// disables it.
func (db *DB) SetLatency(d time.Duration) {
	db.latency = d
}

// wait applies the simulated latency, honoring context cancellation.
func (db *DB) wait(ctx context.Context) error {
	if db.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(db.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// RunMigrations creates the demo-store schema.
func (db *DB) RunMigrations() error {
	migration := `
-- Session settings (demo flag, access token)
CREATE TABLE settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

-- Field reference data
CREATE TABLE fields (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    info TEXT NOT NULL DEFAULT ''
);

-- Projects
CREATE TABLE projects (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    field_id TEXT NOT NULL,
    progress INTEGER NOT NULL DEFAULT 0 CHECK(progress BETWEEN 0 AND 100),
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    edited_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (field_id) REFERENCES fields(id)
);
CREATE INDEX idx_field_projects ON projects(field_id);

-- Section breakdown shown in a project's detail view
CREATE TABLE sections (
    id TEXT PRIMARY KEY,
    project_id TEXT NOT NULL,
    name TEXT NOT NULL,
    progress INTEGER NOT NULL DEFAULT 0,
    position INTEGER NOT NULL,
    FOREIGN KEY (project_id) REFERENCES projects(id)
);
CREATE INDEX idx_project_sections ON sections(project_id);

CREATE TABLE actions (
    id TEXT PRIMARY KEY,
    section_id TEXT NOT NULL,
    name TEXT NOT NULL,
    info TEXT NOT NULL DEFAULT '',
    type TEXT NOT NULL CHECK(type IN ('content', 'query', 'document')),
    prev_action TEXT,
    done INTEGER NOT NULL DEFAULT 0,
    position INTEGER NOT NULL,
    FOREIGN KEY (section_id) REFERENCES sections(id)
);
CREATE INDEX idx_section_actions ON actions(section_id);

-- Documents. No foreign key to projects: the store must accept
-- documents written back for projects that exist only remotely.
CREATE TABLE documents (
    id TEXT PRIMARY KEY,
    project_id TEXT NOT NULL,
    name TEXT NOT NULL,
    content_kind TEXT NOT NULL DEFAULT 'none' CHECK(content_kind IN ('none', 'binary', 'text')),
    content_data BLOB,
    content_mime TEXT NOT NULL DEFAULT '',
    content_text TEXT NOT NULL DEFAULT '',
    size INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX idx_project_documents ON documents(project_id);
`

	_, err := db.Exec(migration)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

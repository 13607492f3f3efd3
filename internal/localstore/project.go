package localstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kit-start/kitstart/internal/domain/project"
	"github.com/kit-start/kitstart/internal/repository"
)

// ProjectStore implements project.Source and project.FieldSource over
// the local demo collections.
type ProjectStore struct {
	db *DB
}

var (
	_ project.Source      = (*ProjectStore)(nil)
	_ project.FieldSource = (*ProjectStore)(nil)
)

// NewProjectStore creates a new ProjectStore.
func NewProjectStore(db *DB) *ProjectStore {
	return &ProjectStore{db: db}
}

// List returns all demo projects, newest first.
func (s *ProjectStore) List(ctx context.Context) ([]project.Project, error) {
	if err := s.db.wait(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.progress, p.created_at, p.edited_at, f.id, f.name, f.info
		FROM projects p
		JOIN fields f ON f.id = p.field_id
		ORDER BY p.created_at DESC, p.id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		var proj project.Project
		err := rows.Scan(
			&proj.ID, &proj.Name, &proj.Progress, &proj.CreatedAt, &proj.EditedAt,
			&proj.Field.ID, &proj.Field.Name, &proj.Field.Info,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, proj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return projects, nil
}

// Get returns the detail view of a project: the base entity, its
// field's section breakdown, and a completed-documents counter.
func (s *ProjectStore) Get(ctx context.Context, id string) (*project.Info, error) {
	if err := s.db.wait(ctx); err != nil {
		return nil, err
	}

	var info project.Info
	err := s.db.QueryRowContext(ctx, `
		SELECT p.id, p.name, p.progress, p.created_at, p.edited_at, f.id, f.name, f.info
		FROM projects p
		JOIN fields f ON f.id = p.field_id
		WHERE p.id = ?
	`, id).Scan(
		&info.ID, &info.Name, &info.Progress, &info.CreatedAt, &info.EditedAt,
		&info.Field.ID, &info.Field.Name, &info.Field.Info,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	sections, err := s.loadSections(ctx, id)
	if err != nil {
		return nil, err
	}
	info.Field.Sections = sections

	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM documents WHERE project_id = ?`, id).Scan(&info.DocumentsDone)
	if err != nil {
		return nil, fmt.Errorf("failed to count documents: %w", err)
	}

	return &info, nil
}

// Create adds a new demo project with a fresh identifier, both
// timestamps set to now, and zero progress.
func (s *ProjectStore) Create(ctx context.Context, in project.CreateInput) (*project.Project, error) {
	if err := s.db.wait(ctx); err != nil {
		return nil, err
	}

	var field project.Field
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, info FROM fields WHERE id = ?`, in.FieldID).
		Scan(&field.ID, &field.Name, &field.Info)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve field: %w", err)
	}

	now := time.Now().UTC()
	proj := &project.Project{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Field:     field,
		Progress:  0,
		CreatedAt: now,
		EditedAt:  now,
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO projects (id, name, field_id, progress, created_at, edited_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		proj.ID, proj.Name, field.ID, proj.Progress, proj.CreatedAt, proj.EditedAt)
	if isForeignKeyViolation(err) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return proj, nil
}

// ListFields returns the field reference data.
func (s *ProjectStore) ListFields(ctx context.Context) ([]project.Field, error) {
	if err := s.db.wait(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, info FROM fields ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list fields: %w", err)
	}
	defer rows.Close()

	var fields []project.Field
	for rows.Next() {
		var f project.Field
		if err := rows.Scan(&f.ID, &f.Name, &f.Info); err != nil {
			return nil, fmt.Errorf("failed to scan field: %w", err)
		}
		fields = append(fields, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating field rows: %w", err)
	}

	return fields, nil
}

func (s *ProjectStore) loadSections(ctx context.Context, projectID string) ([]project.Section, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, progress FROM sections
		WHERE project_id = ?
		ORDER BY position ASC
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}
	defer rows.Close()

	var sections []project.Section
	for rows.Next() {
		var sec project.Section
		if err := rows.Scan(&sec.ID, &sec.Name, &sec.Progress); err != nil {
			return nil, fmt.Errorf("failed to scan section: %w", err)
		}
		sections = append(sections, sec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating section rows: %w", err)
	}

	for i := range sections {
		actions, err := s.loadActions(ctx, sections[i].ID)
		if err != nil {
			return nil, err
		}
		sections[i].Actions = actions
	}

	return sections, nil
}

func (s *ProjectStore) loadActions(ctx context.Context, sectionID string) ([]project.Action, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, info, type, prev_action, done FROM actions
		WHERE section_id = ?
		ORDER BY position ASC
	`, sectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list actions: %w", err)
	}
	defer rows.Close()

	var actions []project.Action
	for rows.Next() {
		var (
			act        project.Action
			actType    string
			prevAction sql.NullString
		)
		if err := rows.Scan(&act.ID, &act.Name, &act.Info, &actType, &prevAction, &act.Done); err != nil {
			return nil, fmt.Errorf("failed to scan action: %w", err)
		}
		act.Type = project.ActionType(actType)
		if prevAction.Valid {
			act.PrevAction = &prevAction.String
		}
		actions = append(actions, act)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating action rows: %w", err)
	}

	return actions, nil
}

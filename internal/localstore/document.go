package localstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/kit-start/kitstart/internal/domain/document"
	"github.com/kit-start/kitstart/internal/repository"
)

// DocumentStore implements document.Source over the local demo
// collections.
type DocumentStore struct {
	db *DB
}

var _ document.Source = (*DocumentStore)(nil)

// NewDocumentStore creates a new DocumentStore.
func NewDocumentStore(db *DB) *DocumentStore {
	return &DocumentStore{db: db}
}

const documentColumns = `id, project_id, name, content_kind, content_data, content_mime, content_text, size, created_at, updated_at`

// List returns the documents owned by a project, oldest first.
func (s *DocumentStore) List(ctx context.Context, projectID string) ([]document.Document, error) {
	if err := s.db.wait(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE project_id = ? ORDER BY created_at ASC, id ASC`,
		projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []document.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating document rows: %w", err)
	}

	return docs, nil
}

// Get retrieves a document by ID. The projectID narrows the lookup
// when present; demo data created before the scoped routes may lack
// it.
func (s *DocumentStore) Get(ctx context.Context, projectID, id string) (*document.Document, error) {
	if err := s.db.wait(ctx); err != nil {
		return nil, err
	}

	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = ?`
	args := []any{id}
	if projectID != "" {
		query += ` AND project_id = ?`
		args = append(args, projectID)
	}

	row := s.db.QueryRowContext(ctx, query, args...)
	doc, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Create appends a new document to its project's collection. The
// identifier derives from the current time, in string form, matching
// the demo convention of the original client.
func (s *DocumentStore) Create(ctx context.Context, in document.CreateInput) (*document.Document, error) {
	if err := s.db.wait(ctx); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := &document.Document{
		Name:      in.Name,
		Content:   in.Content,
		Size:      in.Content.ByteSize(),
		ProjectID: in.ProjectID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Time-derived string IDs can collide when two uploads land in the
	// same millisecond; bump until the insert sticks.
	millis := now.UnixMilli()
	for {
		doc.ID = strconv.FormatInt(millis, 10)
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO documents (`+documentColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			doc.ID, doc.ProjectID, doc.Name,
			string(contentKind(doc.Content)), doc.Content.Data, doc.Content.MIME, doc.Content.Text,
			doc.Size, doc.CreatedAt, doc.UpdatedAt)
		if isUniqueViolation(err) {
			millis++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create document: %w", err)
		}
		return doc, nil
	}
}

// Update shallow-merges the provided fields over the stored record and
// refreshes the updated timestamp. An absent document is an error.
func (s *DocumentStore) Update(ctx context.Context, in document.UpdateInput) (*document.Document, error) {
	doc, err := s.Get(ctx, in.ProjectID, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		doc.Name = *in.Name
	}
	if in.Content != nil {
		doc.Content = *in.Content
		doc.Size = in.Content.ByteSize()
	}
	doc.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx,
		`UPDATE documents
		 SET name = ?, content_kind = ?, content_data = ?, content_mime = ?, content_text = ?, size = ?, updated_at = ?
		 WHERE id = ?`,
		doc.Name,
		string(contentKind(doc.Content)), doc.Content.Data, doc.Content.MIME, doc.Content.Text,
		doc.Size, doc.UpdatedAt, doc.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update document: %w", err)
	}

	return doc, nil
}

// Delete filters the document out of its collection. Deleting an
// absent ID is a no-op, not an error.
func (s *DocumentStore) Delete(ctx context.Context, projectID, id string) error {
	if err := s.db.wait(ctx); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

func contentKind(c document.Content) document.ContentKind {
	if c.IsZero() {
		return document.KindNone
	}
	return c.Kind
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*document.Document, error) {
	var (
		doc  document.Document
		kind string
		data []byte
		mime string
		text string
	)
	err := row.Scan(
		&doc.ID,
		&doc.ProjectID,
		&doc.Name,
		&kind,
		&data,
		&mime,
		&text,
		&doc.Size,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan document: %w", err)
	}

	doc.Content = document.Content{
		Kind: document.ContentKind(kind),
		Data: data,
		MIME: mime,
		Text: text,
	}
	return &doc, nil
}

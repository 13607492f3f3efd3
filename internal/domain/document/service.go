package document

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kit-start/kitstart/internal/repository"
)

// Service handles document operations on top of a resolved source.
type Service struct {
	source Source
	logger *slog.Logger
}

// NewService creates a new document service.
func NewService(source Source, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{source: source, logger: logger}
}

// List returns the documents attached to a project.
func (s *Service) List(ctx context.Context, projectID string) ([]Document, error) {
	if strings.TrimSpace(projectID) == "" {
		return nil, ErrInvalidInput
	}
	return s.source.List(ctx, projectID)
}

// Get fetches a document by ID. Absence is a visible error: direct
// fetches must fail loudly rather than render nothing.
func (s *Service) Get(ctx context.Context, projectID, id string) (*Document, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidInput
	}
	doc, err := s.source.Get(ctx, projectID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("getting document: %w", err)
	}
	return doc, nil
}

// Upload validates and stores a new document. Validation failures are
// rejected before the source is touched.
func (s *Service) Upload(ctx context.Context, in CreateInput) (*Document, error) {
	if strings.TrimSpace(in.ProjectID) == "" {
		return nil, ErrInvalidInput
	}
	if err := ValidateUpload(in.Name, in.Content.MIME, in.Content.ByteSize()); err != nil {
		return nil, err
	}

	doc, err := s.source.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("creating document: %w", err)
	}
	return doc, nil
}

// Update applies a partial document update.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*Document, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, ErrInvalidInput
	}
	doc, err := s.source.Update(ctx, in)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("updating document: %w", err)
	}
	return doc, nil
}

// Delete removes a document from its project.
func (s *Service) Delete(ctx context.Context, projectID, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	if err := s.source.Delete(ctx, projectID, id); err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	return nil
}

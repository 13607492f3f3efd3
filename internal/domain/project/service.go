package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kit-start/kitstart/internal/repository"
)

// Service handles project operations on top of a resolved source.
type Service struct {
	projects Source
	fields   FieldSource
	logger   *slog.Logger
}

// NewService creates a new project service.
func NewService(projects Source, fields FieldSource, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{projects: projects, fields: fields, logger: logger}
}

// List returns all projects visible to the current session.
func (s *Service) List(ctx context.Context) ([]Project, error) {
	return s.projects.List(ctx)
}

// Get fetches a project's detail view by ID.
func (s *Service) Get(ctx context.Context, id string) (*Info, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidInput
	}
	info, err := s.projects.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return info, nil
}

// Create creates a new project after resolving its field reference.
// The field must exist at creation time; a fresh project starts with
// zero progress.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Project, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.FieldID) == "" {
		return nil, ErrInvalidInput
	}

	fields, err := s.fields.ListFields(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolving field: %w", err)
	}
	found := false
	for _, f := range fields {
		if f.ID == in.FieldID {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrFieldNotFound
	}

	proj, err := s.projects.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}
	return proj, nil
}

// Fields returns the field reference data used by the creation form.
func (s *Service) Fields(ctx context.Context) ([]Field, error) {
	return s.fields.ListFields(ctx)
}

// ValidateProgress reports whether a progress percent is within the
// [0,100] invariant.
func ValidateProgress(progress int) error {
	if progress < 0 || progress > 100 {
		return ErrInvalidInput
	}
	return nil
}

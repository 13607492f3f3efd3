package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kit-start/kitstart/internal/domain/document"
	"github.com/kit-start/kitstart/internal/domain/project"
)

// ProjectSource is a mock for project.Source.
type ProjectSource struct {
	mock.Mock
}

var _ project.Source = (*ProjectSource)(nil)

func (m *ProjectSource) List(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectSource) Get(ctx context.Context, id string) (*project.Info, error) {
	args := m.Called(ctx, id)
	if info, ok := args.Get(0).(*project.Info); ok {
		return info, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectSource) Create(ctx context.Context, in project.CreateInput) (*project.Project, error) {
	args := m.Called(ctx, in)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

// FieldSource is a mock for project.FieldSource.
type FieldSource struct {
	mock.Mock
}

var _ project.FieldSource = (*FieldSource)(nil)

func (m *FieldSource) ListFields(ctx context.Context) ([]project.Field, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Field); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// DocumentSource is a mock for document.Source.
type DocumentSource struct {
	mock.Mock
}

var _ document.Source = (*DocumentSource)(nil)

func (m *DocumentSource) List(ctx context.Context, projectID string) ([]document.Document, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]document.Document); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DocumentSource) Get(ctx context.Context, projectID, id string) (*document.Document, error) {
	args := m.Called(ctx, projectID, id)
	if doc, ok := args.Get(0).(*document.Document); ok {
		return doc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DocumentSource) Create(ctx context.Context, in document.CreateInput) (*document.Document, error) {
	args := m.Called(ctx, in)
	if doc, ok := args.Get(0).(*document.Document); ok {
		return doc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DocumentSource) Update(ctx context.Context, in document.UpdateInput) (*document.Document, error) {
	args := m.Called(ctx, in)
	if doc, ok := args.Get(0).(*document.Document); ok {
		return doc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DocumentSource) Delete(ctx context.Context, projectID, id string) error {
	args := m.Called(ctx, projectID, id)
	return args.Error(0)
}

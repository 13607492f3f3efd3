// Package resource composes the remote API client over the local demo
// store. Each fallback source checks the demo flag first, then tries
// the remote, and degrades to the local store when the remote cannot
// answer — a 404 included, so an entity written locally during an
// outage stays reachable. A not-found surfaces only when both sides
// miss. Callers above this package never learn which side replied.
package resource

import (
	"context"
	"log/slog"

	"github.com/kit-start/kitstart/internal/domain/document"
	"github.com/kit-start/kitstart/internal/domain/project"
)

// ModeProvider reports whether demo mode is on. It is consulted on
// every call so a toggle takes effect immediately.
type ModeProvider interface {
	DemoEnabled(ctx context.Context) bool
}

// Projects is the fallback project source.
type Projects struct {
	mode   ModeProvider
	remote project.Source
	local  project.Source
	cache  *Cache
	logger *slog.Logger
}

var _ project.Source = (*Projects)(nil)

// NewProjects builds the fallback project source. The cache may be nil.
func NewProjects(mode ModeProvider, remote, local project.Source, cache *Cache, logger *slog.Logger) *Projects {
	if logger == nil {
		logger = slog.Default()
	}
	return &Projects{mode: mode, remote: remote, local: local, cache: cache, logger: logger}
}

// List returns all projects.
func (p *Projects) List(ctx context.Context) ([]project.Project, error) {
	if p.mode.DemoEnabled(ctx) {
		return p.local.List(ctx)
	}
	if cached, ok := p.cache.get(projectListKey()); ok {
		return cloneProjects(cached.([]project.Project)), nil
	}

	projects, err := p.remote.List(ctx)
	if err != nil {
		p.logger.Warn("remote project list failed, serving local store", "error", err)
		return p.local.List(ctx)
	}
	p.cache.set(projectListKey(), cloneProjects(projects))
	return projects, nil
}

// Get returns one project's detail view.
func (p *Projects) Get(ctx context.Context, id string) (*project.Info, error) {
	if p.mode.DemoEnabled(ctx) {
		return p.local.Get(ctx, id)
	}
	if cached, ok := p.cache.get(projectKey(id)); ok {
		info := cached.(project.Info).Clone()
		return &info, nil
	}

	info, err := p.remote.Get(ctx, id)
	if err != nil {
		p.logger.Warn("remote project get failed, serving local store", "project_id", id, "error", err)
		return p.local.Get(ctx, id)
	}
	p.cache.set(projectKey(id), info.Clone())
	return info, nil
}

// Create creates a project. A remote failure creates it locally so the
// user's work is not lost when the API is down.
func (p *Projects) Create(ctx context.Context, in project.CreateInput) (*project.Project, error) {
	defer p.cache.invalidate(projectListKey())

	if p.mode.DemoEnabled(ctx) {
		return p.local.Create(ctx, in)
	}

	proj, err := p.remote.Create(ctx, in)
	if err != nil {
		p.logger.Warn("remote project create failed, writing local store", "error", err)
		return p.local.Create(ctx, in)
	}
	return proj, nil
}

// Fields is the fallback field source.
type Fields struct {
	mode   ModeProvider
	remote project.FieldSource
	local  project.FieldSource
	cache  *Cache
	logger *slog.Logger
}

var _ project.FieldSource = (*Fields)(nil)

// NewFields builds the fallback field source. The cache may be nil.
func NewFields(mode ModeProvider, remote, local project.FieldSource, cache *Cache, logger *slog.Logger) *Fields {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fields{mode: mode, remote: remote, local: local, cache: cache, logger: logger}
}

// ListFields returns the field reference data.
func (f *Fields) ListFields(ctx context.Context) ([]project.Field, error) {
	if f.mode.DemoEnabled(ctx) {
		return f.local.ListFields(ctx)
	}
	if cached, ok := f.cache.get(fieldListKey()); ok {
		return cloneFields(cached.([]project.Field)), nil
	}

	fields, err := f.remote.ListFields(ctx)
	if err != nil {
		f.logger.Warn("remote field list failed, serving local store", "error", err)
		return f.local.ListFields(ctx)
	}
	f.cache.set(fieldListKey(), cloneFields(fields))
	return fields, nil
}

// Documents is the fallback document source.
type Documents struct {
	mode   ModeProvider
	remote document.Source
	local  document.Source
	cache  *Cache
	logger *slog.Logger
}

var _ document.Source = (*Documents)(nil)

// NewDocuments builds the fallback document source. The cache may be
// nil.
func NewDocuments(mode ModeProvider, remote, local document.Source, cache *Cache, logger *slog.Logger) *Documents {
	if logger == nil {
		logger = slog.Default()
	}
	return &Documents{mode: mode, remote: remote, local: local, cache: cache, logger: logger}
}

// List returns a project's documents.
func (d *Documents) List(ctx context.Context, projectID string) ([]document.Document, error) {
	if d.mode.DemoEnabled(ctx) {
		return d.local.List(ctx, projectID)
	}
	if cached, ok := d.cache.get(documentListKey(projectID)); ok {
		return cloneDocuments(cached.([]document.Document)), nil
	}

	docs, err := d.remote.List(ctx, projectID)
	if err != nil {
		d.logger.Warn("remote document list failed, serving local store", "project_id", projectID, "error", err)
		return d.local.List(ctx, projectID)
	}
	d.cache.set(documentListKey(projectID), cloneDocuments(docs))
	return docs, nil
}

// Get returns one document.
func (d *Documents) Get(ctx context.Context, projectID, id string) (*document.Document, error) {
	if d.mode.DemoEnabled(ctx) {
		return d.local.Get(ctx, projectID, id)
	}
	if cached, ok := d.cache.get(documentKey(projectID, id)); ok {
		doc := cached.(document.Document).Clone()
		return &doc, nil
	}

	doc, err := d.remote.Get(ctx, projectID, id)
	if err != nil {
		d.logger.Warn("remote document get failed, serving local store", "document_id", id, "error", err)
		return d.local.Get(ctx, projectID, id)
	}
	d.cache.set(documentKey(projectID, id), doc.Clone())
	return doc, nil
}

// Create uploads a document, locally when remote is unavailable.
func (d *Documents) Create(ctx context.Context, in document.CreateInput) (*document.Document, error) {
	defer d.cache.invalidate(documentListKey(in.ProjectID))

	if d.mode.DemoEnabled(ctx) {
		return d.local.Create(ctx, in)
	}

	doc, err := d.remote.Create(ctx, in)
	if err != nil {
		d.logger.Warn("remote document create failed, writing local store", "error", err)
		return d.local.Create(ctx, in)
	}
	return doc, nil
}

// Update modifies a document, locally when remote is unavailable.
func (d *Documents) Update(ctx context.Context, in document.UpdateInput) (*document.Document, error) {
	defer d.cache.invalidate(documentKey(in.ProjectID, in.ID), documentListKey(in.ProjectID))

	if d.mode.DemoEnabled(ctx) {
		return d.local.Update(ctx, in)
	}

	doc, err := d.remote.Update(ctx, in)
	if err != nil {
		d.logger.Warn("remote document update failed, writing local store", "document_id", in.ID, "error", err)
		return d.local.Update(ctx, in)
	}
	return doc, nil
}

// Delete removes a document, locally when remote is unavailable.
func (d *Documents) Delete(ctx context.Context, projectID, id string) error {
	defer d.cache.invalidate(documentKey(projectID, id), documentListKey(projectID))

	if d.mode.DemoEnabled(ctx) {
		return d.local.Delete(ctx, projectID, id)
	}

	if err := d.remote.Delete(ctx, projectID, id); err != nil {
		d.logger.Warn("remote document delete failed, writing local store", "document_id", id, "error", err)
		return d.local.Delete(ctx, projectID, id)
	}
	return nil
}

func cloneProjects(list []project.Project) []project.Project {
	out := make([]project.Project, len(list))
	for i, p := range list {
		out[i] = p.Clone()
	}
	return out
}

func cloneFields(list []project.Field) []project.Field {
	out := make([]project.Field, len(list))
	for i, f := range list {
		out[i] = f.Clone()
	}
	return out
}

func cloneDocuments(list []document.Document) []document.Document {
	out := make([]document.Document, len(list))
	for i, d := range list {
		out[i] = d.Clone()
	}
	return out
}

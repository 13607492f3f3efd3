package remote

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kit-start/kitstart/internal/domain/document"
)

// Documents implements document.Source against the remote API.
type Documents struct {
	c *Client
}

var _ document.Source = (*Documents)(nil)

// NewDocuments creates the document source facade.
func NewDocuments(c *Client) *Documents {
	return &Documents{c: c}
}

// List fetches a project's documents.
func (d *Documents) List(ctx context.Context, projectID string) ([]document.Document, error) {
	var dtos []DocumentDTO
	path := "/projects/" + projectID + "/documents"
	if err := d.c.do(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, fmt.Errorf("ошибка при получении документов: %w", err)
	}

	docs := make([]document.Document, 0, len(dtos))
	for _, dto := range dtos {
		docs = append(docs, d.documentFromDTO(dto))
	}
	return docs, nil
}

// Get fetches a single document.
func (d *Documents) Get(ctx context.Context, projectID, id string) (*document.Document, error) {
	var dto DocumentDTO
	path := "/projects/" + projectID + "/documents/" + id
	if err := d.c.do(ctx, http.MethodGet, path, nil, &dto); err != nil {
		return nil, fmt.Errorf("ошибка при получении документа: %w", err)
	}

	doc := d.documentFromDTO(dto)
	return &doc, nil
}

// Create uploads a new document.
func (d *Documents) Create(ctx context.Context, in document.CreateInput) (*document.Document, error) {
	req := UploadDocumentRequest{FileName: in.Name, Content: in.Content.EncodeWire()}
	var dto DocumentDTO
	path := "/projects/" + in.ProjectID + "/documents"
	if err := d.c.do(ctx, http.MethodPost, path, req, &dto); err != nil {
		return nil, fmt.Errorf("ошибка при создании документа: %w", err)
	}

	doc := d.documentFromDTO(dto)
	return &doc, nil
}

// Update replaces a document's name and content. The wire contract
// always carries both, so missing fields are filled from the current
// record first.
func (d *Documents) Update(ctx context.Context, in document.UpdateInput) (*document.Document, error) {
	current, err := d.Get(ctx, in.ProjectID, in.ID)
	if err != nil {
		return nil, err
	}

	req := UpdateDocumentRequest{FileName: current.Name, Content: current.Content.EncodeWire()}
	if in.Name != nil {
		req.FileName = *in.Name
	}
	if in.Content != nil {
		req.Content = in.Content.EncodeWire()
	}

	var dto DocumentDTO
	path := "/projects/" + in.ProjectID + "/documents/" + in.ID
	if err := d.c.do(ctx, http.MethodPut, path, req, &dto); err != nil {
		return nil, fmt.Errorf("ошибка при обновлении документа: %w", err)
	}

	doc := d.documentFromDTO(dto)
	return &doc, nil
}

// Delete removes a document.
func (d *Documents) Delete(ctx context.Context, projectID, id string) error {
	path := "/projects/" + projectID + "/documents/" + id
	if err := d.c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("ошибка при удалении документа: %w", err)
	}
	return nil
}

// documentFromDTO converts a wire document, classifying its content
// exactly once. Undecodable content degrades to an empty binary body
// the viewer recovers from with placeholder text.
func (d *Documents) documentFromDTO(dto DocumentDTO) document.Document {
	content, err := document.DecodeWireContent(dto.Content)
	if err != nil {
		d.c.logger.Warn("document content undecodable, keeping degraded form",
			"document_id", dto.ID, "error", err)
	}

	size := dto.Size
	if size == 0 {
		size = content.ByteSize()
	}

	return document.Document{
		ID:        dto.ID,
		Name:      dto.Name,
		Content:   content,
		Size:      size,
		ProjectID: dto.ProjectID,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	}
}

package document

import "time"

// Document is a Word-format file attached to a project. The name
// carries the file extension; Content holds either the binary payload
// or, after an in-place edit, plain extracted text.
type Document struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Content   Content   `json:"content"`
	Size      int64     `json:"size"`
	ProjectID string    `json:"project_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns an independent copy, including the content bytes.
func (d Document) Clone() Document {
	out := d
	if d.Content.Data != nil {
		out.Content.Data = make([]byte, len(d.Content.Data))
		copy(out.Content.Data, d.Content.Data)
	}
	return out
}

// CreateInput describes a document upload.
type CreateInput struct {
	Name      string
	Content   Content
	ProjectID string
}

// UpdateInput describes a partial document update. Nil fields keep the
// existing values.
type UpdateInput struct {
	ID        string
	ProjectID string
	Name      *string
	Content   *Content
}

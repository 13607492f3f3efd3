// Package docview is the document content pipeline: it turns a stored
// document into renderable text, tracks the view/edit lifecycle, and
// persists edits back through a caller-supplied callback.
package docview

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/kit-start/kitstart/internal/domain/document"
	"github.com/kit-start/kitstart/internal/format"
)

// State names a phase of the viewer lifecycle.
type State string

const (
	StateLoading  State = "loading"
	StateRendered State = "rendered"
	StateEditing  State = "editing"
	StateFailed   State = "failed"
)

// PersistFunc saves an edited document and returns its stored form.
type PersistFunc func(ctx context.Context, in document.UpdateInput) (*document.Document, error)

// Attachment is a file picked to replace a document's content on save.
type Attachment struct {
	Name string
	Data []byte
	MIME string
}

// Viewer renders one document and tracks its edit lifecycle.
//
//	Loading → Rendered        (Render; extraction failures degrade to a
//	                           placeholder with a warning, never an error)
//	Rendered → Editing        (Edit)
//	Editing → Rendered        (Cancel, successful Save)
//	Editing → Failed          (Save whose persistence callback errored;
//	                           the edit buffer survives)
//	Failed → Editing          (Edit, to retry)
type Viewer struct {
	doc     document.Document
	state   State
	text    string
	buffer  string
	warning string
	logger  *slog.Logger
}

// Open wraps a document in a viewer. The viewer starts in Loading;
// call Render to produce text.
func Open(doc document.Document, logger *slog.Logger) *Viewer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Viewer{doc: doc, state: StateLoading, logger: logger}
}

// State returns the current lifecycle phase.
func (v *Viewer) State() State { return v.state }

// Text returns the rendered text.
func (v *Viewer) Text() string { return v.text }

// Buffer returns the current edit buffer.
func (v *Viewer) Buffer() string { return v.buffer }

// Warning returns the non-blocking message of the last render, empty
// when the content rendered cleanly.
func (v *Viewer) Warning() string { return v.warning }

// Document returns the document being viewed.
func (v *Viewer) Document() document.Document { return v.doc }

// Render produces the viewable text. It never fails: absent content
// gets the deterministic placeholder, and content that cannot be
// extracted degrades to the same placeholder with a warning recorded
// for the UI to show.
func (v *Viewer) Render() string {
	v.warning = ""

	if v.doc.Content.IsZero() {
		v.text = Placeholder(v.doc.Name)
		v.state = StateRendered
		return v.text
	}

	text, err := v.extract()
	if err != nil {
		v.logger.Warn("document render degraded to placeholder",
			"document_id", v.doc.ID, "name", v.doc.Name, "error", err)
		v.warning = fmt.Sprintf("Не удалось отобразить содержимое документа «%s», показан шаблон", v.doc.Name)
		text = Placeholder(v.doc.Name)
	}
	v.text = text
	v.state = StateRendered
	return v.text
}

func (v *Viewer) extract() (string, error) {
	content := v.doc.Content
	switch content.Kind {
	case document.KindText:
		return content.Text, nil
	case document.KindBinary:
		if len(content.Data) == 0 {
			return "", ErrNoContent
		}
		switch format.DetectType(v.doc.Name) {
		case format.TypeDOCX:
			return ExtractDOCX(content.Data)
		case format.TypeDOC:
			return ExtractDOC(content.Data)
		default:
			return "", ErrUnsupportedType
		}
	default:
		return "", ErrNoContent
	}
}

// Edit switches into editing, loading the rendered text into the
// buffer. The buffer is kept as-is when retrying after a failed save.
func (v *Viewer) Edit() error {
	switch v.state {
	case StateRendered:
		v.buffer = v.text
	case StateFailed:
		// keep the preserved buffer
	default:
		return ErrWrongState
	}
	v.state = StateEditing
	return nil
}

// SetBuffer replaces the edit buffer.
func (v *Viewer) SetBuffer(text string) error {
	if v.state != StateEditing {
		return ErrWrongState
	}
	v.buffer = text
	return nil
}

// Cancel abandons the edit and returns to the rendered text.
func (v *Viewer) Cancel() error {
	if v.state != StateEditing {
		return ErrWrongState
	}
	v.buffer = ""
	v.state = StateRendered
	return nil
}

// Save persists the edit. With an attachment the document adopts the
// file's bytes and name; without one the buffer text is stored
// verbatim and the name is kept. A persistence failure preserves the
// buffer and leaves the viewer in Failed for a retry.
func (v *Viewer) Save(ctx context.Context, persist PersistFunc, file *Attachment) error {
	if v.state != StateEditing {
		return ErrWrongState
	}

	in := document.UpdateInput{ID: v.doc.ID, ProjectID: v.doc.ProjectID}
	if file != nil {
		content := document.BinaryContent(file.Data, file.MIME)
		in.Name = &file.Name
		in.Content = &content
	} else {
		content := document.TextContent(v.buffer)
		in.Content = &content
	}

	saved, err := persist(ctx, in)
	if err != nil {
		v.state = StateFailed
		return fmt.Errorf("сохранение документа: %w", err)
	}

	v.doc = *saved
	v.buffer = ""
	v.Render()
	return nil
}

// Download writes the document's stored bytes (text content is written
// as UTF-8) and returns the MIME type detected from the name.
func (v *Viewer) Download(w io.Writer) (string, error) {
	mime := format.DetectType(v.doc.Name).MIME()

	var payload []byte
	switch v.doc.Content.Kind {
	case document.KindBinary:
		if len(v.doc.Content.Data) == 0 {
			return "", ErrNoContent
		}
		payload = v.doc.Content.Data
		if v.doc.Content.MIME != "" {
			mime = v.doc.Content.MIME
		}
	case document.KindText:
		payload = []byte(v.doc.Content.Text)
	default:
		return "", ErrNoContent
	}

	if _, err := w.Write(payload); err != nil {
		return "", fmt.Errorf("выгрузка документа: %w", err)
	}
	return mime, nil
}

package remote

import (
	"time"

	"github.com/kit-start/kitstart/internal/domain/document"
	"github.com/kit-start/kitstart/internal/domain/project"
)

// Wire DTOs. Shared with internal/testserver so the fake API speaks
// exactly the shapes the client expects.

// FieldDTO is the wire form of a field.
type FieldDTO struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Info     string       `json:"info,omitempty"`
	Sections []SectionDTO `json:"sections,omitempty"`
}

// SectionDTO is the wire form of a section.
type SectionDTO struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Progress int         `json:"progress"`
	Actions  []ActionDTO `json:"actions"`
}

// ActionDTO is the wire form of an action.
type ActionDTO struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Info       string  `json:"info,omitempty"`
	Type       string  `json:"type"`
	PrevAction *string `json:"prev_action,omitempty"`
	Done       bool    `json:"done"`
}

// ProjectDTO is the wire form of a project.
type ProjectDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Field     FieldDTO  `json:"field"`
	Progress  int       `json:"progress"`
	CreatedAt time.Time `json:"created_at"`
	EditedAt  time.Time `json:"edited_at"`
}

// ProjectsResponse wraps the project list endpoint payload.
type ProjectsResponse struct {
	Projects []ProjectDTO `json:"projects"`
}

// ProjectInfoDTO is the project detail payload.
type ProjectInfoDTO struct {
	ProjectDTO
	DocumentsDone int `json:"documents_done"`
}

// CreateProjectRequest is the project creation payload.
type CreateProjectRequest struct {
	Name    string `json:"name"`
	FieldID string `json:"fieldId"`
}

// DocumentDTO is the wire form of a document. Content is a single
// string whose interpretation (data URL, bare base64, plain text) is
// resolved by document.DecodeWireContent.
type DocumentDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	Size      int64     `json:"size"`
	ProjectID string    `json:"projectId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UploadDocumentRequest is the document creation payload.
type UploadDocumentRequest struct {
	FileName string `json:"fileName"`
	Content  string `json:"content"`
}

// UpdateDocumentRequest is the document update payload.
type UpdateDocumentRequest struct {
	FileName string `json:"fileName"`
	Content  string `json:"content"`
}

func fieldFromDTO(dto FieldDTO) project.Field {
	f := project.Field{ID: dto.ID, Name: dto.Name, Info: dto.Info}
	for _, s := range dto.Sections {
		sec := project.Section{ID: s.ID, Name: s.Name, Progress: s.Progress}
		for _, a := range s.Actions {
			sec.Actions = append(sec.Actions, project.Action{
				ID:         a.ID,
				Name:       a.Name,
				Info:       a.Info,
				Type:       project.ActionType(a.Type),
				PrevAction: a.PrevAction,
				Done:       a.Done,
			})
		}
		f.Sections = append(f.Sections, sec)
	}
	return f
}

func projectFromDTO(dto ProjectDTO) project.Project {
	return project.Project{
		ID:        dto.ID,
		Name:      dto.Name,
		Field:     fieldFromDTO(dto.Field),
		Progress:  dto.Progress,
		CreatedAt: dto.CreatedAt,
		EditedAt:  dto.EditedAt,
	}
}

// FieldToDTO converts a domain field to its wire form.
func FieldToDTO(f project.Field) FieldDTO {
	dto := FieldDTO{ID: f.ID, Name: f.Name, Info: f.Info}
	for _, s := range f.Sections {
		sec := SectionDTO{ID: s.ID, Name: s.Name, Progress: s.Progress}
		for _, a := range s.Actions {
			sec.Actions = append(sec.Actions, ActionDTO{
				ID:         a.ID,
				Name:       a.Name,
				Info:       a.Info,
				Type:       string(a.Type),
				PrevAction: a.PrevAction,
				Done:       a.Done,
			})
		}
		dto.Sections = append(dto.Sections, sec)
	}
	return dto
}

// ProjectToDTO converts a domain project to its wire form.
func ProjectToDTO(p project.Project) ProjectDTO {
	return ProjectDTO{
		ID:        p.ID,
		Name:      p.Name,
		Field:     FieldToDTO(p.Field),
		Progress:  p.Progress,
		CreatedAt: p.CreatedAt,
		EditedAt:  p.EditedAt,
	}
}

// DocumentToDTO converts a domain document to its wire form.
func DocumentToDTO(d document.Document) DocumentDTO {
	return DocumentDTO{
		ID:        d.ID,
		Name:      d.Name,
		Content:   d.Content.EncodeWire(),
		Size:      d.Size,
		ProjectID: d.ProjectID,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

package project

import "time"

// ActionType tags the kind of work item an action represents.
type ActionType string

const (
	// ActionContent is read-only informational text.
	ActionContent ActionType = "content"
	// ActionQuery is reserved and unused by current flows.
	ActionQuery ActionType = "query"
	// ActionDocument carries a free-text editable body.
	ActionDocument ActionType = "document"
)

// Action is the leaf work item inside a section.
type Action struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Info       string     `json:"info,omitempty"`
	Type       ActionType `json:"type"`
	PrevAction *string    `json:"prev_action,omitempty"`
	Done       bool       `json:"done"`
}

// Section groups an ordered list of actions within a project.
type Section struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Progress int      `json:"progress"`
	Actions  []Action `json:"actions"`
}

// Field is the category a project belongs to. Static reference data;
// sections appear only in a project's detail expansion.
type Field struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Info     string    `json:"info,omitempty"`
	Sections []Section `json:"sections,omitempty"`
}

// Project is the top-level entity of the kit-start workspace.
type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Field     Field     `json:"field"`
	Progress  int       `json:"progress"`
	CreatedAt time.Time `json:"created_at"`
	EditedAt  time.Time `json:"edited_at"`
}

// Info is the detail view of a project: the base entity plus the
// field's section breakdown and a completed-documents counter.
type Info struct {
	Project
	DocumentsDone int `json:"documents_done"`
}

// Clone returns an independent copy, down to the section and action
// slices.
func (f Field) Clone() Field {
	out := f
	if f.Sections != nil {
		out.Sections = make([]Section, len(f.Sections))
		for i, s := range f.Sections {
			out.Sections[i] = s
			if s.Actions != nil {
				out.Sections[i].Actions = make([]Action, len(s.Actions))
				copy(out.Sections[i].Actions, s.Actions)
			}
		}
	}
	return out
}

// Clone returns an independent copy of the project.
func (p Project) Clone() Project {
	out := p
	out.Field = p.Field.Clone()
	return out
}

// Clone returns an independent copy of the detail view.
func (i Info) Clone() Info {
	out := i
	out.Project = i.Project.Clone()
	return out
}

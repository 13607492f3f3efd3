package remote

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kit-start/kitstart/internal/domain/project"
)

// Projects implements project.Source against the remote API.
type Projects struct {
	c *Client
}

var _ project.Source = (*Projects)(nil)

// NewProjects creates the project source facade.
func NewProjects(c *Client) *Projects {
	return &Projects{c: c}
}

// List fetches all projects.
func (p *Projects) List(ctx context.Context) ([]project.Project, error) {
	var resp ProjectsResponse
	if err := p.c.do(ctx, http.MethodGet, "/projects", nil, &resp); err != nil {
		return nil, fmt.Errorf("ошибка при получении проектов: %w", err)
	}

	projects := make([]project.Project, 0, len(resp.Projects))
	for _, dto := range resp.Projects {
		projects = append(projects, projectFromDTO(dto))
	}
	return projects, nil
}

// Get fetches a project's detail view.
func (p *Projects) Get(ctx context.Context, id string) (*project.Info, error) {
	var dto ProjectInfoDTO
	if err := p.c.do(ctx, http.MethodGet, "/projects/"+id, nil, &dto); err != nil {
		return nil, fmt.Errorf("ошибка при получении проекта: %w", err)
	}

	return &project.Info{
		Project:       projectFromDTO(dto.ProjectDTO),
		DocumentsDone: dto.DocumentsDone,
	}, nil
}

// Create creates a new project.
func (p *Projects) Create(ctx context.Context, in project.CreateInput) (*project.Project, error) {
	req := CreateProjectRequest{Name: in.Name, FieldID: in.FieldID}
	var dto ProjectDTO
	if err := p.c.do(ctx, http.MethodPost, "/projects", req, &dto); err != nil {
		return nil, fmt.Errorf("ошибка при создании проекта: %w", err)
	}

	proj := projectFromDTO(dto)
	return &proj, nil
}

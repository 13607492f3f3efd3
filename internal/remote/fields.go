package remote

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kit-start/kitstart/internal/domain/project"
)

// Fields implements project.FieldSource against the remote API.
type Fields struct {
	c *Client
}

var _ project.FieldSource = (*Fields)(nil)

// NewFields creates the field source facade.
func NewFields(c *Client) *Fields {
	return &Fields{c: c}
}

// ListFields fetches the field reference data.
func (f *Fields) ListFields(ctx context.Context) ([]project.Field, error) {
	var dtos []FieldDTO
	if err := f.c.do(ctx, http.MethodGet, "/fields", nil, &dtos); err != nil {
		return nil, fmt.Errorf("ошибка при получении полей: %w", err)
	}

	fields := make([]project.Field, 0, len(dtos))
	for _, dto := range dtos {
		fields = append(fields, fieldFromDTO(dto))
	}
	return fields, nil
}

package project

import "context"

// CreateInput defines project creation inputs.
type CreateInput struct {
	Name    string
	FieldID string
}

// Source provides project data. Both the remote API client and the
// local demo store implement it.
type Source interface {
	List(ctx context.Context) ([]Project, error)
	Get(ctx context.Context, id string) (*Info, error)
	Create(ctx context.Context, in CreateInput) (*Project, error)
}

// FieldSource provides the static field reference data.
type FieldSource interface {
	ListFields(ctx context.Context) ([]Field, error)
}

package document

import "context"

// Source provides document data. Both the remote API client and the
// local demo store implement it.
type Source interface {
	List(ctx context.Context, projectID string) ([]Document, error)
	Get(ctx context.Context, projectID, id string) (*Document, error)
	Create(ctx context.Context, in CreateInput) (*Document, error)
	Update(ctx context.Context, in UpdateInput) (*Document, error)
	Delete(ctx context.Context, projectID, id string) error
}

package essays

import "context"

// Repo abstracts essay persistence.
type Repo interface {
	GetByID(ctx context.Context, id int64) (Essay, error)
	Create(ctx context.Context, e Essay) (int64, error)
}

package evaluations

import "context"

// Repo abstracts evaluation persistence.
type Repo interface {
	Create(ctx context.Context, e Evaluation) (int64, error)
}

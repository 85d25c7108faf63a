package scholarships

import "context"

// Repo defines persistence operations for scholarships.
type Repo interface {
	GetByID(ctx context.Context, id int64) (Scholarship, error)
	List(ctx context.Context) ([]Scholarship, error)
	Create(ctx context.Context, s Scholarship) (int64, error)
}

package profiles

import "context"

// Repo abstracts student profile persistence.
type Repo interface {
	GetByID(ctx context.Context, id int64) (StudentProfile, error)
	GetByEmail(ctx context.Context, email string) (StudentProfile, error)
	Create(ctx context.Context, p StudentProfile) (StudentProfile, error)
	Save(ctx context.Context, p StudentProfile) (StudentProfile, error)
}

package personas

import "context"

// Repo defines persistence operations for personas.
type Repo interface {
	GetByScholarship(ctx context.Context, scholarshipID int64) (Persona, error)
	GetByID(ctx context.Context, id int64) (Persona, error)
	// Create inserts the persona unless one already exists for its
	// scholarship in which case the existing row is returned. The bool
	// reports whether an insert happened.
	Create(ctx context.Context, p Persona) (Persona, bool, error)
}

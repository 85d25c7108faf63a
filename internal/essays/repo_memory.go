package essays

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory Repo for tests and database-less development.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]Essay
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{nextID: 1, byID: make(map[int64]Essay)}
}

// GetByID returns an essay by id.
func (r *MemoryRepo) GetByID(_ context.Context, id int64) (Essay, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byID[id]
	if !ok {
		return Essay{}, ErrNotFound
	}
	return e, nil
}

// Create stores a new essay and returns its id.
func (r *MemoryRepo) Create(_ context.Context, e Essay) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = r.nextID
	r.nextID++
	e.CreatedAt = time.Now().UTC()
	r.byID[e.ID] = e
	return e.ID, nil
}

// Seed inserts an essay directly, for test setup.
func (r *MemoryRepo) Seed(e Essay) Essay {
	id, _ := r.Create(context.Background(), e)
	e.ID = id
	return e
}

var _ Repo = (*MemoryRepo)(nil)

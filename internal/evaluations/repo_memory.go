package evaluations

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory Repo for tests and database-less development.
type MemoryRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]Evaluation
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{nextID: 1, byID: make(map[int64]Evaluation)}
}

// Create stores a new evaluation and returns its id.
func (r *MemoryRepo) Create(_ context.Context, e Evaluation) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = r.nextID
	r.nextID++
	e.CreatedAt = time.Now().UTC()
	r.byID[e.ID] = e
	return e.ID, nil
}

// Get returns a stored evaluation, for test assertions.
func (r *MemoryRepo) Get(id int64) (Evaluation, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.byID[id]
	return e, ok
}

var _ Repo = (*MemoryRepo)(nil)

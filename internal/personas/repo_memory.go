package personas

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu            sync.RWMutex
	nextID        int64
	byID          map[int64]Persona
	byScholarship map[int64]int64
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		nextID:        1,
		byID:          make(map[int64]Persona),
		byScholarship: make(map[int64]int64),
	}
}

// GetByScholarship returns the cached persona for a scholarship.
func (r *MemoryRepo) GetByScholarship(ctx context.Context, scholarshipID int64) (Persona, error) {
	if err := ctx.Err(); err != nil {
		return Persona{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byScholarship[scholarshipID]
	if !ok {
		return Persona{}, ErrNotFound
	}
	return r.byID[id], nil
}

// GetByID returns a persona by id.
func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (Persona, error) {
	if err := ctx.Err(); err != nil {
		return Persona{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return Persona{}, ErrNotFound
	}
	return p, nil
}

// Create inserts the persona unless the scholarship already has one.
func (r *MemoryRepo) Create(ctx context.Context, p Persona) (Persona, bool, error) {
	if err := ctx.Err(); err != nil {
		return Persona{}, false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.byScholarship[p.ScholarshipID]; ok {
		return r.byID[id], false, nil
	}
	p.ID = r.nextID
	r.nextID++
	if p.Version <= 0 {
		p.Version = 1
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	r.byID[p.ID] = p
	r.byScholarship[p.ScholarshipID] = p.ID
	return p, true, nil
}

var _ Repo = (*MemoryRepo)(nil)

package profiles

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory Repo for tests and database-less development.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]StudentProfile
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{nextID: 1, byID: make(map[int64]StudentProfile)}
}

// GetByID returns a profile by id.
func (r *MemoryRepo) GetByID(_ context.Context, id int64) (StudentProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return StudentProfile{}, ErrNotFound
	}
	return p, nil
}

// GetByEmail returns a profile by email.
func (r *MemoryRepo) GetByEmail(_ context.Context, email string) (StudentProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.byID {
		if p.Email != "" && p.Email == email {
			return p, nil
		}
	}
	return StudentProfile{}, ErrNotFound
}

// Create stores a new profile and assigns an id.
func (r *MemoryRepo) Create(_ context.Context, p StudentProfile) (StudentProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.nextID
	r.nextID++
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.byID[p.ID] = p
	return p, nil
}

// Save replaces an existing profile.
func (r *MemoryRepo) Save(_ context.Context, p StudentProfile) (StudentProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.byID[p.ID]
	if !ok {
		return StudentProfile{}, ErrNotFound
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	r.byID[p.ID] = p
	return p, nil
}

// Seed inserts a profile directly, for test setup.
func (r *MemoryRepo) Seed(p StudentProfile) StudentProfile {
	out, _ := r.Create(context.Background(), p)
	return out
}

var _ Repo = (*MemoryRepo)(nil)

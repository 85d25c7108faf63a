package scholarships

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	data   map[int64]Scholarship
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		nextID: 1,
		data:   make(map[int64]Scholarship),
	}
}

// Seed loads scholarships with their given ids, bumping the id counter past
// the highest. Used for demo data and tests.
func (r *MemoryRepo) Seed(items ...Scholarship) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range items {
		if s.ID >= r.nextID {
			r.nextID = s.ID + 1
		}
		if s.CreatedAt.IsZero() {
			s.CreatedAt = time.Now().UTC()
		}
		r.data[s.ID] = s
	}
}

// GetByID returns a scholarship by id.
func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (Scholarship, error) {
	if err := ctx.Err(); err != nil {
		return Scholarship{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.data[id]
	if !ok {
		return Scholarship{}, ErrNotFound
	}
	return s, nil
}

// List returns all scholarships, newest first.
func (r *MemoryRepo) List(ctx context.Context) ([]Scholarship, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Scholarship, 0, len(r.data))
	for _, s := range r.data {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Create inserts a scholarship and returns its id.
func (r *MemoryRepo) Create(ctx context.Context, s Scholarship) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = r.nextID
	r.nextID++
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	s.UpdatedAt = s.CreatedAt
	r.data[s.ID] = s
	return s.ID, nil
}

var _ Repo = (*MemoryRepo)(nil)

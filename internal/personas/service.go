package personas

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"scholarlens-backend/internal/llm"
	"scholarlens-backend/internal/scholarships"
	"scholarlens-backend/internal/shared/telemetry"
)

// Generator is the slice of the generation client the persona workflow uses.
type Generator interface {
	Invoke(ctx context.Context, kind llm.PromptKind, payload any) (json.RawMessage, error)
}

// Service orchestrates persona analysis with an at-most-one-computation
// cache per scholarship. There is no forced-refresh path; a persisted
// persona is returned as-is regardless of age.
type Service struct {
	Repo         Repo
	Scholarships scholarships.Repo
	Gen          Generator

	mu    sync.Mutex
	inFly map[int64]*sync.Mutex
}

// Resolution reports how a persona was obtained.
type Resolution struct {
	Persona Persona
	Cached  bool
	// Fallback is true when the provider failed and the fixed mock
	// payload was substituted.
	Fallback bool
}

// GetOrCreate resolves the persona for a scholarship, analyzing and
// persisting it on first request. A per-scholarship lock plus the repo's
// conflict handling guarantee at most one live persona per scholarship even
// under concurrent first requests.
func (s *Service) GetOrCreate(ctx context.Context, scholarshipID int64) (Resolution, error) {
	sch, err := s.Scholarships.GetByID(ctx, scholarshipID)
	if err != nil {
		return Resolution{}, err
	}

	existing, err := s.Repo.GetByScholarship(ctx, scholarshipID)
	if err == nil {
		return Resolution{Persona: existing, Cached: true}, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Resolution{}, err
	}

	unlock := s.lockScholarship(scholarshipID)
	defer unlock()

	// Re-check after acquiring the lock: a concurrent request may have
	// finished the analysis while we waited.
	existing, err = s.Repo.GetByScholarship(ctx, scholarshipID)
	if err == nil {
		return Resolution{Persona: existing, Cached: true}, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Resolution{}, err
	}

	analyzed, fallback := s.Analyze(ctx, sch.Description)
	analyzed.ScholarshipID = scholarshipID
	analyzed.Version = 1

	persisted, inserted, err := s.Repo.Create(ctx, analyzed)
	if err != nil {
		return Resolution{}, err
	}
	return Resolution{Persona: persisted, Cached: !inserted, Fallback: fallback}, nil
}

// Analyze runs persona analysis over a description without persisting. The
// returned bool is true when the provider failed and the fixed fallback
// payload was used instead.
func (s *Service) Analyze(ctx context.Context, description string) (Persona, bool) {
	raw, err := s.Gen.Invoke(ctx, llm.KindPersonaBuilder, description)
	if err != nil {
		telemetry.Warn("persona.fallback", map[string]any{"error": err.Error()})
		return Normalize(llm.MockPersona()), true
	}
	return Normalize(raw), false
}

func (s *Service) lockScholarship(id int64) func() {
	s.mu.Lock()
	if s.inFly == nil {
		s.inFly = make(map[int64]*sync.Mutex)
	}
	lock, ok := s.inFly[id]
	if !ok {
		lock = &sync.Mutex{}
		s.inFly[id] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// Context returns the persona summary passed into essay and evaluation
// prompts.
func Context(p Persona) llm.PersonaContext {
	return llm.PersonaContext{
		Name:    p.Name,
		Tone:    p.Tone,
		Weights: p.Weights,
	}
}

package essays

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"scholarlens-backend/internal/llm"
	"scholarlens-backend/internal/personas"
	"scholarlens-backend/internal/profiles"
	"scholarlens-backend/internal/scholarships"
)

type stubGenerator struct {
	resp    json.RawMessage
	err     error
	lastKey llm.PromptKind
}

func (s *stubGenerator) Invoke(_ context.Context, kind llm.PromptKind, _ any) (json.RawMessage, error) {
	s.lastKey = kind
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

const essayResponse = `{
	"persona_name": "The Builder",
	"tone_used": "Determined and Warm",
	"essay": [
		{"paragraph": "One.", "focus": "Leadership", "reason": "r1", "alignment_score": 0.8},
		{"paragraph": "Two.", "focus": "Innovation", "reason": "r2", "alignment_score": 0.7},
		{"paragraph": "Three.", "focus": "Academics", "reason": "r3", "alignment_score": 0.6}
	],
	"overall_alignment": 0.7,
	"summary": "s"
}`

type fixture struct {
	svc      *Service
	essays   *MemoryRepo
	profiles *profiles.MemoryRepo
	personas *personas.MemoryRepo
	student  profiles.StudentProfile
}

func setup(t *testing.T, gen Generator) fixture {
	t.Helper()
	schRepo := scholarships.NewMemoryRepo()
	schRepo.Seed(scholarships.Scholarship{
		ID:          1,
		Name:        "STEM Scholarship",
		Description: "For students who lead and innovate.",
	})
	personaRepo := personas.NewMemoryRepo()
	profileRepo := profiles.NewMemoryRepo()
	student := profileRepo.Seed(profiles.StudentProfile{
		Name:  "Maya Chen",
		Email: "maya@example.edu",
	})
	essayRepo := NewMemoryRepo()

	personaSvc := &personas.Service{Repo: personaRepo, Scholarships: schRepo, Gen: gen}
	svc := &Service{Repo: essayRepo, Profiles: profileRepo, Personas: personaSvc, Gen: gen}
	return fixture{svc: svc, essays: essayRepo, profiles: profileRepo, personas: personaRepo, student: student}
}

func seedPersona(t *testing.T, f fixture) personas.Persona {
	t.Helper()
	p, _, err := f.personas.Create(context.Background(), personas.Persona{
		ScholarshipID: 1,
		Name:          "The Builder",
		Tone:          "Determined and Warm",
		Weights:       personas.Weights{"Leadership": 0.5, "Innovation": 0.5},
	})
	if err != nil {
		t.Fatalf("seed persona: %v", err)
	}
	return p
}

func TestGenerateAdaptivePersistsEssay(t *testing.T) {
	gen := &stubGenerator{resp: json.RawMessage(essayResponse)}
	f := setup(t, gen)
	seedPersona(t, f)

	res, err := f.svc.Generate(context.Background(), 1, f.student.ID, TypeAdaptive)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Fallback {
		t.Fatal("unexpected fallback")
	}
	if len(res.Generated.Paragraphs) != 3 {
		t.Fatalf("paragraphs = %d", len(res.Generated.Paragraphs))
	}
	if res.EssayID == 0 {
		t.Fatal("essay not persisted")
	}
	stored, err := f.essays.GetByID(context.Background(), res.EssayID)
	if err != nil {
		t.Fatalf("load stored essay: %v", err)
	}
	if stored.EssayType != TypeAdaptive || stored.StudentProfileID != f.student.ID {
		t.Fatalf("stored essay: %+v", stored)
	}
	if gen.lastKey != llm.KindEssayGenerator {
		t.Fatalf("last kind = %s", gen.lastKey)
	}
}

func TestGenerateBaselineRelabelsTone(t *testing.T) {
	gen := &stubGenerator{resp: json.RawMessage(essayResponse)}
	f := setup(t, gen)
	seedPersona(t, f)

	res, err := f.svc.Generate(context.Background(), 1, f.student.ID, TypeBaseline)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// Baseline shares the adaptive prompt; only the reported tone label
	// changes afterwards.
	if res.Generated.ToneUsed != ToneBaseline {
		t.Fatalf("ToneUsed = %q, want %q", res.Generated.ToneUsed, ToneBaseline)
	}
	stored, err := f.essays.GetByID(context.Background(), res.EssayID)
	if err != nil {
		t.Fatalf("load stored essay: %v", err)
	}
	if stored.ToneUsed != ToneBaseline {
		t.Fatalf("stored tone = %q", stored.ToneUsed)
	}
}

func TestGenerateBaselineWithoutPersonaUsesGeneric(t *testing.T) {
	gen := &stubGenerator{resp: json.RawMessage(essayResponse)}
	f := setup(t, gen)

	res, err := f.svc.Generate(context.Background(), 1, f.student.ID, TypeBaseline)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.EssayID != 0 {
		t.Fatal("essay persisted without a persisted persona")
	}
	if gen.lastKey != llm.KindEssayGenerator {
		t.Fatalf("generic baseline still generated via %s", gen.lastKey)
	}
}

func TestGenerateAdaptiveWithoutPersonaAnalyzesTransiently(t *testing.T) {
	gen := &stubGenerator{resp: json.RawMessage(essayResponse)}
	f := setup(t, gen)

	res, err := f.svc.Generate(context.Background(), 1, f.student.ID, TypeAdaptive)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.EssayID != 0 {
		t.Fatal("transient persona must not lead to essay persistence")
	}
	// Transient analysis does not write a persona row.
	if _, err := f.personas.GetByScholarship(context.Background(), 1); !errors.Is(err, personas.ErrNotFound) {
		t.Fatalf("persona unexpectedly persisted: %v", err)
	}
}

func TestGenerateUnknownScholarship(t *testing.T) {
	f := setup(t, &stubGenerator{resp: json.RawMessage(essayResponse)})

	_, err := f.svc.Generate(context.Background(), 99, f.student.ID, TypeAdaptive)
	if !errors.Is(err, scholarships.ErrNotFound) {
		t.Fatalf("err = %v, want scholarships.ErrNotFound", err)
	}
}

func TestGenerateUnknownStudent(t *testing.T) {
	f := setup(t, &stubGenerator{resp: json.RawMessage(essayResponse)})
	seedPersona(t, f)

	_, err := f.svc.Generate(context.Background(), 1, 99, TypeAdaptive)
	if !errors.Is(err, profiles.ErrNotFound) {
		t.Fatalf("err = %v, want profiles.ErrNotFound", err)
	}
}

func TestGenerateRejectsUnknownType(t *testing.T) {
	f := setup(t, &stubGenerator{resp: json.RawMessage(essayResponse)})

	_, err := f.svc.Generate(context.Background(), 1, f.student.ID, "freeform")
	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("err = %v, want ErrUnknownType", err)
	}
}

func TestGenerateFallsBackOnProviderFailure(t *testing.T) {
	gen := &stubGenerator{err: &llm.GenerationError{
		Kind: llm.KindEssayGenerator, Stage: "transport", Err: errors.New("boom"),
	}}
	f := setup(t, gen)
	seedPersona(t, f)

	res, err := f.svc.Generate(context.Background(), 1, f.student.ID, TypeAdaptive)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !res.Fallback {
		t.Fatal("fallback not reported")
	}
	if len(res.Generated.Paragraphs) != 3 {
		t.Fatalf("fallback essay has %d paragraphs", len(res.Generated.Paragraphs))
	}
	if res.Generated.PersonaName != "The Builder" {
		t.Fatalf("fallback persona name = %q", res.Generated.PersonaName)
	}
}

type failingPersonaRepo struct {
	err error
}

func (f *failingPersonaRepo) GetByScholarship(context.Context, int64) (personas.Persona, error) {
	return personas.Persona{}, f.err
}

func (f *failingPersonaRepo) GetByID(context.Context, int64) (personas.Persona, error) {
	return personas.Persona{}, f.err
}

func (f *failingPersonaRepo) Create(context.Context, personas.Persona) (personas.Persona, bool, error) {
	return personas.Persona{}, false, f.err
}

func TestGeneratePropagatesPersonaRepoFailure(t *testing.T) {
	// A persona storage failure is not a cache miss: it must not fall
	// through to a fresh analysis or the generic persona.
	gen := &stubGenerator{resp: json.RawMessage(essayResponse)}
	f := setup(t, gen)
	repoErr := errors.New("connection reset")
	f.svc.Personas.Repo = &failingPersonaRepo{err: repoErr}

	if _, err := f.svc.Generate(context.Background(), 1, f.student.ID, TypeBaseline); !errors.Is(err, repoErr) {
		t.Fatalf("err = %v, want %v", err, repoErr)
	}
}

package flows

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"scholarlens-backend/internal/essays"
	"scholarlens-backend/internal/evaluations"
	"scholarlens-backend/internal/llm"
	"scholarlens-backend/internal/personas"
	"scholarlens-backend/internal/profiles"
	"scholarlens-backend/internal/scholarships"
)

// kindGenerator answers each prompt kind with a canned payload, the way a
// live provider would.
type kindGenerator struct {
	err   error
	kinds []llm.PromptKind
}

func (g *kindGenerator) Invoke(_ context.Context, kind llm.PromptKind, _ any) (json.RawMessage, error) {
	g.kinds = append(g.kinds, kind)
	if g.err != nil {
		return nil, g.err
	}
	switch kind {
	case llm.KindPersonaBuilder:
		return json.RawMessage(`{
			"persona_name": "The Builder",
			"tone": "Determined",
			"weights": {"Leadership": 0.6, "Innovation": 0.4},
			"rationale": "r"
		}`), nil
	case llm.KindEssayGenerator:
		return json.RawMessage(`{
			"persona_name": "The Builder",
			"tone_used": "Determined",
			"essay": [
				{"paragraph": "One.", "focus": "Leadership", "reason": "r", "alignment_score": 0.8},
				{"paragraph": "Two.", "focus": "Innovation", "reason": "r", "alignment_score": 0.7},
				{"paragraph": "Three.", "focus": "Academics", "reason": "r", "alignment_score": 0.6}
			],
			"overall_alignment": 0.7,
			"summary": "s"
		}`), nil
	case llm.KindEvaluationAgent:
		return json.RawMessage(`{
			"persona_name": "The Builder",
			"trait_alignment": {"Leadership": 0.9},
			"baseline_alignment": {"Leadership": 0.5},
			"alignment_gain": 0.4,
			"tone_consistency_score": 0.9,
			"summary": "s",
			"recommendation": "adaptive"
		}`), nil
	default:
		return json.RawMessage(`{}`), nil
	}
}

func setup(t *testing.T, gen *kindGenerator) (*Service, int64) {
	t.Helper()
	schRepo := scholarships.NewMemoryRepo()
	schRepo.SeedDemo()
	personaRepo := personas.NewMemoryRepo()
	profileRepo := profiles.NewMemoryRepo()
	profileRepo.SeedDemo()
	essayRepo := essays.NewMemoryRepo()
	evalRepo := evaluations.NewMemoryRepo()

	personaSvc := &personas.Service{Repo: personaRepo, Scholarships: schRepo, Gen: gen}
	essaySvc := &essays.Service{Repo: essayRepo, Profiles: profileRepo, Personas: personaSvc, Gen: gen}
	evalSvc := &evaluations.Service{Repo: evalRepo, Essays: essayRepo, Personas: personaSvc, Gen: gen}
	svc := &Service{Personas: personaSvc, Essays: essaySvc, Evaluations: evalSvc}
	return svc, 1
}

func TestRunCompletesFullPipeline(t *testing.T) {
	gen := &kindGenerator{}
	svc, studentID := setup(t, gen)

	out := svc.Run(context.Background(), 1, studentID)
	if !out.Success() {
		t.Fatalf("flow failed at %q: %v", out.FailedStep, out.Err)
	}
	if out.Persona == nil || out.Persona.Cached {
		t.Fatalf("persona step: %+v", out.Persona)
	}
	if out.Adaptive == nil || out.Adaptive.EssayID == 0 {
		t.Fatalf("adaptive essay not persisted: %+v", out.Adaptive)
	}
	if out.Baseline == nil || out.Baseline.Generated.ToneUsed != essays.ToneBaseline {
		t.Fatalf("baseline step: %+v", out.Baseline)
	}
	if out.Evaluation == nil || out.Evaluation.EvaluationID == 0 {
		t.Fatalf("evaluation not persisted: %+v", out.Evaluation)
	}

	// The pipeline analyzes the persona once and generates two essays and
	// one comparison.
	want := []llm.PromptKind{
		llm.KindPersonaBuilder,
		llm.KindEssayGenerator,
		llm.KindEssayGenerator,
		llm.KindEvaluationAgent,
	}
	if len(gen.kinds) != len(want) {
		t.Fatalf("calls = %v", gen.kinds)
	}
	for i, kind := range want {
		if gen.kinds[i] != kind {
			t.Fatalf("call %d = %s, want %s", i, gen.kinds[i], kind)
		}
	}
}

func TestRunShortCircuitsOnUnknownScholarship(t *testing.T) {
	svc, studentID := setup(t, &kindGenerator{})

	out := svc.Run(context.Background(), 99, studentID)
	if out.Success() {
		t.Fatal("flow succeeded against unknown scholarship")
	}
	if out.FailedStep != StepPersona {
		t.Fatalf("FailedStep = %q", out.FailedStep)
	}
	if !errors.Is(out.Err, scholarships.ErrNotFound) {
		t.Fatalf("Err = %v", out.Err)
	}
	if out.Adaptive != nil || out.Baseline != nil || out.Evaluation != nil {
		t.Fatal("later steps ran after failure")
	}
}

func TestRunShortCircuitsOnUnknownStudent(t *testing.T) {
	svc, _ := setup(t, &kindGenerator{})

	out := svc.Run(context.Background(), 1, 999)
	if out.FailedStep != StepAdaptive {
		t.Fatalf("FailedStep = %q", out.FailedStep)
	}
	if !errors.Is(out.Err, profiles.ErrNotFound) {
		t.Fatalf("Err = %v", out.Err)
	}
	if out.Persona == nil {
		t.Fatal("persona step result missing")
	}
}

func TestRunSurvivesProviderOutage(t *testing.T) {
	gen := &kindGenerator{err: &llm.GenerationError{
		Kind: llm.KindPersonaBuilder, Stage: "transport", Err: errors.New("outage"),
	}}
	svc, studentID := setup(t, gen)

	out := svc.Run(context.Background(), 1, studentID)
	if !out.Success() {
		t.Fatalf("flow failed at %q: %v", out.FailedStep, out.Err)
	}
	if !out.Persona.Fallback || !out.Adaptive.Fallback || !out.Evaluation.Fallback {
		t.Fatal("fallbacks not reported during outage")
	}
	if len(out.Adaptive.Generated.Paragraphs) != 3 {
		t.Fatalf("fallback essay has %d paragraphs", len(out.Adaptive.Generated.Paragraphs))
	}
}

package evaluations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"scholarlens-backend/internal/essays"
	"scholarlens-backend/internal/llm"
	"scholarlens-backend/internal/personas"
	"scholarlens-backend/internal/shared/telemetry"
)

// Generator is the slice of the generation client the comparison workflow
// uses.
type Generator interface {
	Invoke(ctx context.Context, kind llm.PromptKind, payload any) (json.RawMessage, error)
}

// Service orchestrates essay comparison: persona resolution, essay
// reference resolution, evaluation, and best-effort persistence.
type Service struct {
	Repo     Repo
	Essays   essays.Repo
	Personas *personas.Service
	Gen      Generator
}

// Result is one comparison outcome.
type Result struct {
	Comparison   Comparison
	EvaluationID int64
	// Fallback is true when the provider failed and the fixed mock
	// payload was substituted.
	Fallback bool
}

type comparePayload struct {
	Persona       llm.PersonaContext `json:"persona"`
	AdaptiveEssay []string           `json:"adaptive_essay"`
	BaselineEssay []string           `json:"baseline_essay"`
}

// Compare evaluates an adaptive essay against a baseline for a scholarship.
// Each side may reference a stored essay or carry paragraphs inline; a
// dangling essay id fails with the missing side named. Unlike essay
// generation there is no generic persona fallback: an unknown scholarship
// fails outright.
func (s *Service) Compare(ctx context.Context, scholarshipID int64, adaptive, baseline EssayRef) (Result, error) {
	persona, err := s.resolvePersona(ctx, scholarshipID)
	if err != nil {
		return Result{}, err
	}

	adaptiveParagraphs, err := s.resolveRef(ctx, "adaptive", adaptive)
	if err != nil {
		return Result{}, err
	}
	baselineParagraphs, err := s.resolveRef(ctx, "baseline", baseline)
	if err != nil {
		return Result{}, err
	}

	personaCtx := personas.Context(persona)
	raw, genErr := s.Gen.Invoke(ctx, llm.KindEvaluationAgent, comparePayload{
		Persona:       personaCtx,
		AdaptiveEssay: adaptiveParagraphs,
		BaselineEssay: baselineParagraphs,
	})
	if genErr != nil {
		telemetry.Warn("evaluations.fallback", map[string]any{"error": genErr.Error()})
		raw = llm.MockEvaluation(personaCtx)
	}

	comparison, err := Normalize(raw)
	if err != nil {
		telemetry.Warn("evaluations.fallback", map[string]any{"error": err.Error()})
		comparison, _ = Normalize(llm.MockEvaluation(personaCtx))
		genErr = err
	}

	res := Result{Comparison: comparison, Fallback: genErr != nil}

	// Persistence is best-effort and only possible against a persisted
	// persona row. Essay ids are recorded only for by-id inputs.
	if persona.ID != 0 {
		eval := Evaluation{
			PersonaID:            persona.ID,
			TraitAlignment:       comparison.TraitAlignment,
			BaselineAlignment:    comparison.BaselineAlignment,
			AlignmentGain:        comparison.AlignmentGain,
			ToneConsistencyScore: comparison.ToneConsistencyScore,
			Summary:              comparison.Summary,
			Recommendation:       comparison.Recommendation,
		}
		if adaptive.IsByID() {
			id := adaptive.EssayID()
			eval.AdaptiveEssayID = &id
		}
		if baseline.IsByID() {
			id := baseline.EssayID()
			eval.BaselineEssayID = &id
		}

		id, err := s.Repo.Create(ctx, eval)
		if err != nil {
			telemetry.Warn("evaluations.persist_failed", map[string]any{
				"scholarship_id": scholarshipID,
				"error":          err.Error(),
			})
		} else {
			res.EvaluationID = id
		}
	}

	return res, nil
}

func (s *Service) resolvePersona(ctx context.Context, scholarshipID int64) (personas.Persona, error) {
	existing, err := s.Personas.Repo.GetByScholarship(ctx, scholarshipID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, personas.ErrNotFound) {
		return personas.Persona{}, err
	}
	sch, err := s.Personas.Scholarships.GetByID(ctx, scholarshipID)
	if err != nil {
		return personas.Persona{}, err
	}
	analyzed, _ := s.Personas.Analyze(ctx, sch.Description)
	return analyzed, nil
}

func (s *Service) resolveRef(ctx context.Context, side string, ref EssayRef) ([]string, error) {
	if !ref.IsByID() {
		return ref.Paragraphs(), nil
	}
	essay, err := s.Essays.GetByID(ctx, ref.EssayID())
	if err != nil {
		return nil, fmt.Errorf("%s essay %d: %w", side, ref.EssayID(), err)
	}
	paragraphs := make([]string, 0, len(essay.Paragraphs))
	for _, p := range essay.Paragraphs {
		paragraphs = append(paragraphs, p.Paragraph)
	}
	return paragraphs, nil
}

package essays

import (
	"context"
	"encoding/json"
	"errors"

	"scholarlens-backend/internal/llm"
	"scholarlens-backend/internal/personas"
	"scholarlens-backend/internal/profiles"
	"scholarlens-backend/internal/shared/telemetry"
)

// Generator is the slice of the generation client the essay workflow uses.
type Generator interface {
	Invoke(ctx context.Context, kind llm.PromptKind, payload any) (json.RawMessage, error)
}

// Service orchestrates essay generation: persona resolution, student
// lookup, generation, and best-effort persistence.
type Service struct {
	Repo     Repo
	Profiles profiles.Repo
	Personas *personas.Service
	Gen      Generator
}

// Result is one essay generation outcome.
type Result struct {
	Generated   Generated
	EssayID     int64
	EssayType   string
	StudentName string
	// Fallback is true when the provider failed and the fixed mock
	// payload was substituted.
	Fallback bool
}

type essayPayload struct {
	Persona        llm.PersonaContext `json:"persona"`
	StudentProfile studentPayload     `json:"student_profile"`
}

type studentPayload struct {
	Name         string   `json:"name"`
	GPA          *float64 `json:"gpa,omitempty"`
	Activities   []string `json:"activities,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
	Goals        string   `json:"goals,omitempty"`
	Skills       []string `json:"skills,omitempty"`
}

// Generate produces an essay of the requested type for a student and
// scholarship.
//
// Persona precedence: a persisted persona row wins; with none, adaptive
// essays analyze the scholarship transiently while baseline essays fall
// back to the fixed generic persona. Both types share the same generation
// prompt; baseline only relabels the reported tone afterwards. The essay
// row is persisted best-effort and only when the persona itself has a
// persisted identity.
func (s *Service) Generate(ctx context.Context, scholarshipID, studentID int64, essayType string) (Result, error) {
	if essayType == "" {
		essayType = TypeAdaptive
	}
	if essayType != TypeAdaptive && essayType != TypeBaseline {
		return Result{}, ErrUnknownType
	}

	persona, err := s.resolvePersona(ctx, scholarshipID, essayType)
	if err != nil {
		return Result{}, err
	}

	student, err := s.Profiles.GetByID(ctx, studentID)
	if err != nil {
		return Result{}, err
	}

	generated, fallback := s.generate(ctx, persona, student)
	if essayType == TypeBaseline {
		generated.ToneUsed = ToneBaseline
	}

	res := Result{
		Generated:   generated,
		EssayType:   essayType,
		StudentName: student.Name,
		Fallback:    fallback,
	}

	// Persisting the essay is a side effect, not part of the contract:
	// a storage failure is logged and the generated essay still returned.
	if persona.ID != 0 {
		id, err := s.Repo.Create(ctx, Essay{
			StudentProfileID: student.ID,
			PersonaID:        persona.ID,
			EssayType:        essayType,
			Paragraphs:       generated.Paragraphs,
			ToneUsed:         generated.ToneUsed,
			OverallAlignment: generated.OverallAlignment,
			Summary:          generated.Summary,
		})
		if err != nil {
			telemetry.Warn("essays.persist_failed", map[string]any{
				"scholarship_id": scholarshipID,
				"student_id":     studentID,
				"error":          err.Error(),
			})
		} else {
			res.EssayID = id
		}
	}

	return res, nil
}

func (s *Service) resolvePersona(ctx context.Context, scholarshipID int64, essayType string) (personas.Persona, error) {
	existing, err := s.Personas.Repo.GetByScholarship(ctx, scholarshipID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, personas.ErrNotFound) {
		return personas.Persona{}, err
	}

	if essayType == TypeBaseline {
		return personas.Generic(), nil
	}

	sch, err := s.Personas.Scholarships.GetByID(ctx, scholarshipID)
	if err != nil {
		return personas.Persona{}, err
	}
	analyzed, _ := s.Personas.Analyze(ctx, sch.Description)
	return analyzed, nil
}

func (s *Service) generate(ctx context.Context, persona personas.Persona, student profiles.StudentProfile) (Generated, bool) {
	personaCtx := personas.Context(persona)
	payload := essayPayload{
		Persona: personaCtx,
		StudentProfile: studentPayload{
			Name:         student.Name,
			GPA:          student.GPA,
			Activities:   student.Activities,
			Achievements: student.Achievements,
			Goals:        student.Goals,
			Skills:       student.Skills,
		},
	}

	raw, err := s.Gen.Invoke(ctx, llm.KindEssayGenerator, payload)
	if err != nil {
		telemetry.Warn("essays.fallback", map[string]any{"error": err.Error()})
		raw = llm.MockEssay(personaCtx)
	}

	generated, normErr := Normalize(raw)
	if normErr != nil {
		telemetry.Warn("essays.fallback", map[string]any{"error": normErr.Error()})
		generated, _ = Normalize(llm.MockEssay(personaCtx))
		return generated, true
	}
	return generated, err != nil
}

package flows

import (
	"context"

	"scholarlens-backend/internal/essays"
	"scholarlens-backend/internal/evaluations"
	"scholarlens-backend/internal/personas"
)

// Flow step names, reported on short-circuit.
const (
	StepPersona    = "persona"
	StepAdaptive   = "adaptive_essay"
	StepBaseline   = "baseline_essay"
	StepEvaluation = "evaluation"
)

// Service chains the full pipeline for one scholarship and student:
// persona analysis, adaptive and baseline essay generation, and the final
// comparison.
type Service struct {
	Personas    *personas.Service
	Essays      *essays.Service
	Evaluations *evaluations.Service
}

// Outcome carries whichever steps completed before a failure. FailedStep is
// empty when the whole flow ran through.
type Outcome struct {
	Persona    *personas.Resolution
	Adaptive   *essays.Result
	Baseline   *essays.Result
	Evaluation *evaluations.Result

	FailedStep string
	Err        error
}

// Success reports whether every step completed.
func (o Outcome) Success() bool { return o.FailedStep == "" }

// Run executes the pipeline sequentially, short-circuiting on the first
// failing step and returning everything produced up to that point.
func (s *Service) Run(ctx context.Context, scholarshipID, studentID int64) Outcome {
	var out Outcome

	persona, err := s.Personas.GetOrCreate(ctx, scholarshipID)
	if err != nil {
		out.FailedStep, out.Err = StepPersona, err
		return out
	}
	out.Persona = &persona

	adaptive, err := s.Essays.Generate(ctx, scholarshipID, studentID, essays.TypeAdaptive)
	if err != nil {
		out.FailedStep, out.Err = StepAdaptive, err
		return out
	}
	out.Adaptive = &adaptive

	baseline, err := s.Essays.Generate(ctx, scholarshipID, studentID, essays.TypeBaseline)
	if err != nil {
		out.FailedStep, out.Err = StepBaseline, err
		return out
	}
	out.Baseline = &baseline

	evaluation, err := s.Evaluations.Compare(
		ctx,
		scholarshipID,
		evaluations.Inline(paragraphTexts(adaptive.Generated.Paragraphs)),
		evaluations.Inline(paragraphTexts(baseline.Generated.Paragraphs)),
	)
	if err != nil {
		out.FailedStep, out.Err = StepEvaluation, err
		return out
	}
	out.Evaluation = &evaluation

	return out
}

func paragraphTexts(paragraphs []essays.Paragraph) []string {
	texts := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		texts = append(texts, p.Paragraph)
	}
	return texts
}

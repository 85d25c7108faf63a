package llm

import (
	"context"
	"errors"
	"fmt"
)

// PromptKind selects the prompt template and sampling behavior for a call.
type PromptKind string

const (
	KindPersonaBuilder  PromptKind = "persona_builder"
	KindEssayGenerator  PromptKind = "essay_generator"
	KindEvaluationAgent PromptKind = "evaluation_agent"
	KindResumeExtractor PromptKind = "resume_extractor"
)

// Request is a single completion request against the model provider.
type Request struct {
	Kind        PromptKind
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Usage reports provider token counts when available.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Completer abstracts the generative model provider. Implementations block
// until a response or failure.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, Usage, error)
	Model() string
}

// CallLog captures one provider invocation for observability.
type CallLog struct {
	Kind         PromptKind
	Status       string
	Model        string
	LatencyMS    int
	InputTokens  int
	OutputTokens int
	ErrorMessage string
}

// CallLogger records call logs. Implementations must not fail the call path.
type CallLogger interface {
	LogCall(ctx context.Context, entry CallLog)
}

// ErrNoProvider signals that no model provider is configured.
var ErrNoProvider = errors.New("no model provider configured")

// GenerationError is the only error type the generation client returns.
// Workflows decide whether to substitute a fallback result.
type GenerationError struct {
	Kind  PromptKind
	Stage string // "config", "transport", "parse"
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation %s failed at %s: %v", e.Kind, e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// IsGenerationError reports whether err is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}

// PersonaContext is the persona summary passed into essay and evaluation prompts.
type PersonaContext struct {
	Name    string             `json:"persona_name"`
	Tone    string             `json:"tone"`
	Weights map[string]float64 `json:"weights"`
}

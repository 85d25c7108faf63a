package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"scholarlens-backend/internal/shared/telemetry"
)

const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 2048

	// Evaluation and extraction favor determinism over creativity.
	deterministicTemperature = 0.3
)

// Client builds a kind-specific prompt, invokes the provider, and extracts the
// JSON payload from the free-text response. It never returns anything but a
// *GenerationError on failure; substituting fallback values is the caller's
// policy, not the client's.
type Client struct {
	Provider    Completer
	Logs        CallLogger
	Temperature float64
	MaxTokens   int
}

// NewClient constructs a Client. provider may be nil when no API key is
// configured; every Invoke then fails with a config-stage GenerationError.
func NewClient(provider Completer, logs CallLogger, temperature float64, maxTokens int) *Client {
	if temperature <= 0 {
		temperature = defaultTemperature
	}
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	return &Client{Provider: provider, Logs: logs, Temperature: temperature, MaxTokens: maxTokens}
}

// Invoke renders the prompt for kind, sends it, and returns the parsed JSON
// object from the response text.
func (c *Client) Invoke(ctx context.Context, kind PromptKind, payload any) (json.RawMessage, error) {
	template, ok := promptTemplates[kind]
	if !ok {
		return nil, &GenerationError{Kind: kind, Stage: "config", Err: fmt.Errorf("unknown prompt kind %q", kind)}
	}
	if c.Provider == nil {
		return nil, &GenerationError{Kind: kind, Stage: "config", Err: ErrNoProvider}
	}

	body, err := renderPayload(payload)
	if err != nil {
		return nil, &GenerationError{Kind: kind, Stage: "config", Err: err}
	}

	req := Request{
		Kind:        kind,
		Prompt:      template + body,
		Temperature: c.temperatureFor(kind),
		MaxTokens:   c.MaxTokens,
	}

	start := time.Now()
	text, usage, err := c.Provider.Complete(ctx, req)
	latency := time.Since(start)

	if err != nil {
		c.logCall(ctx, kind, "error", latency, usage, err)
		return nil, &GenerationError{Kind: kind, Stage: "transport", Err: err}
	}

	raw, err := ExtractJSON(text)
	if err != nil {
		c.logCall(ctx, kind, "error", latency, usage, err)
		return nil, &GenerationError{Kind: kind, Stage: "parse", Err: err}
	}

	c.logCall(ctx, kind, "success", latency, usage, nil)
	return raw, nil
}

func (c *Client) temperatureFor(kind PromptKind) float64 {
	switch kind {
	case KindEvaluationAgent, KindResumeExtractor:
		return deterministicTemperature
	default:
		return c.Temperature
	}
}

func (c *Client) logCall(ctx context.Context, kind PromptKind, status string, latency time.Duration, usage Usage, callErr error) {
	fields := map[string]any{
		"kind":          string(kind),
		"status":        status,
		"latency_ms":    latency.Milliseconds(),
		"input_tokens":  usage.InputTokens,
		"output_tokens": usage.OutputTokens,
	}
	entry := CallLog{
		Kind:         kind,
		Status:       status,
		Model:        c.Provider.Model(),
		LatencyMS:    int(latency.Milliseconds()),
		InputTokens:  usage.InputTokens,
		OutputTokens: usage.OutputTokens,
	}
	if callErr != nil {
		fields["error"] = callErr.Error()
		entry.ErrorMessage = callErr.Error()
		telemetry.Error("llm.call", fields)
	} else {
		telemetry.Info("llm.call", fields)
	}
	if c.Logs != nil {
		c.Logs.LogCall(ctx, entry)
	}
}

// renderPayload serializes the prompt payload: free text is appended as-is,
// anything else as indented JSON.
func renderPayload(payload any) (string, error) {
	switch v := payload.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal payload: %w", err)
		}
		return string(data), nil
	}
}

// ExtractJSON pulls the JSON object out of a model response, stripping a
// leading/trailing markdown code fence when present (both the language-tagged
// and untagged form).
func ExtractJSON(text string) (json.RawMessage, error) {
	cleaned := strings.TrimSpace(text)

	if idx := strings.Index(cleaned, "```json"); idx >= 0 {
		cleaned = cleaned[idx+len("```json"):]
		if end := strings.Index(cleaned, "```"); end >= 0 {
			cleaned = cleaned[:end]
		}
	} else if idx := strings.Index(cleaned, "```"); idx >= 0 {
		cleaned = cleaned[idx+len("```"):]
		if end := strings.Index(cleaned, "```"); end >= 0 {
			cleaned = cleaned[:end]
		}
	}
	cleaned = strings.TrimSpace(cleaned)

	if cleaned == "" {
		return nil, fmt.Errorf("empty response")
	}

	var probe map[string]any
	if err := json.Unmarshal([]byte(cleaned), &probe); err != nil {
		return nil, fmt.Errorf("response is not a JSON object: %w", err)
	}
	return json.RawMessage(cleaned), nil
}

package apilog

import (
	"context"
	"time"

	"scholarlens-backend/internal/llm"
	"scholarlens-backend/internal/shared/telemetry"
)

// Recorder adapts a Repo to the generation client's CallLogger. A failed
// write is logged and dropped; observability must never fail the model call.
type Recorder struct {
	Repo Repo
}

// LogCall persists one call log entry.
func (r *Recorder) LogCall(ctx context.Context, entry llm.CallLog) {
	if r == nil || r.Repo == nil {
		return
	}
	err := r.Repo.Create(ctx, Log{
		PromptKind:   string(entry.Kind),
		Status:       entry.Status,
		Model:        entry.Model,
		LatencyMS:    entry.LatencyMS,
		InputTokens:  entry.InputTokens,
		OutputTokens: entry.OutputTokens,
		ErrorMessage: entry.ErrorMessage,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		telemetry.Warn("apilog.write_failed", map[string]any{
			"kind":  string(entry.Kind),
			"error": err.Error(),
		})
	}
}

var _ llm.CallLogger = (*Recorder)(nil)

package apilog

import "time"

// Log is one recorded model-provider call.
type Log struct {
	ID           int64
	PromptKind   string
	Status       string // 'success' or 'error'
	Model        string
	LatencyMS    int
	InputTokens  int
	OutputTokens int
	ErrorMessage string
	CreatedAt    time.Time
}

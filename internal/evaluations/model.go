package evaluations

import "time"

// Evaluation is a persisted essay comparison.
type Evaluation struct {
	ID                   int64              `json:"id"`
	PersonaID            int64              `json:"persona_id"`
	AdaptiveEssayID      *int64             `json:"adaptive_essay_id,omitempty"`
	BaselineEssayID      *int64             `json:"baseline_essay_id,omitempty"`
	TraitAlignment       map[string]float64 `json:"trait_alignment"`
	BaselineAlignment    map[string]float64 `json:"baseline_alignment"`
	AlignmentGain        float64            `json:"alignment_gain"`
	ToneConsistencyScore float64            `json:"tone_consistency_score"`
	Summary              string             `json:"summary"`
	Recommendation       string             `json:"recommendation"`
	CreatedAt            time.Time          `json:"created_at"`
}

// Comparison is the normalized output of one evaluation call, before any
// persistence.
type Comparison struct {
	PersonaName          string             `json:"persona_name"`
	TraitAlignment       map[string]float64 `json:"trait_alignment"`
	BaselineAlignment    map[string]float64 `json:"baseline_alignment"`
	AlignmentGain        float64            `json:"alignment_gain"`
	ToneConsistencyScore float64            `json:"tone_consistency_score"`
	Summary              string             `json:"summary"`
	Recommendation       string             `json:"recommendation"`
}

package evaluations

import (
	"encoding/json"
	"math"

	"scholarlens-backend/internal/llm"
	"scholarlens-backend/internal/personas"
)

// Normalize parses a raw evaluation response and cleans it: trait maps are
// restricted to the known trait set with scores clamped to [0, 1], the gain
// is clamped to [-1, 1], and non-finite numbers are zeroed. Field
// mismatches degrade to typed zeros instead of failing the whole response;
// only a top-level non-object errors.
func Normalize(raw json.RawMessage) (Comparison, error) {
	fields, err := llm.ParseFields(raw)
	if err != nil {
		return Comparison{}, err
	}

	c := Comparison{
		PersonaName:       fields.String("persona_name"),
		TraitAlignment:    cleanTraitMap(fields.Object("trait_alignment")),
		BaselineAlignment: cleanTraitMap(fields.Object("baseline_alignment")),
		Summary:           fields.String("summary"),
		Recommendation:    fields.String("recommendation"),
	}
	if v, ok := fields.Number("alignment_gain"); ok {
		c.AlignmentGain = clampGain(v)
	}
	if v, ok := fields.Number("tone_consistency_score"); ok {
		c.ToneConsistencyScore = clampScore(v)
	}
	return c, nil
}

func cleanTraitMap(fields llm.FieldMap) map[string]float64 {
	out := make(map[string]float64, len(personas.Traits))
	for _, trait := range personas.Traits {
		v, _ := fields.Number(trait)
		out[trait] = clampScore(v)
	}
	return out
}

func clampScore(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampGain(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

package personas

import (
	"encoding/json"
	"math"

	"scholarlens-backend/internal/llm"
)

const weightSumTolerance = 0.01

// Normalize coerces a raw persona payload into a complete, valid shape. It
// never fails: missing or mistyped fields get typed defaults and the weight
// distribution is clamped per-trait to [0,1] and rescaled to sum to 1.0
// when the prompt contract was violated.
func Normalize(raw json.RawMessage) Persona {
	fields, err := llm.ParseFields(raw)
	if err != nil {
		fields = llm.FieldMap{}
	}

	weights := make(map[string]float64, len(Traits))
	weightFields := fields.Object("weights")
	for _, trait := range Traits {
		if w, ok := weightFields.Number(trait); ok {
			weights[trait] = w
		}
	}

	p := Persona{
		Name:      fields.String("persona_name"),
		Tone:      fields.String("tone"),
		Weights:   NormalizeWeights(weights),
		Rationale: fields.String("rationale"),
	}
	if p.Name == "" {
		p.Name = "Unnamed Persona"
	}
	if p.Tone == "" {
		p.Tone = "Professional"
	}
	return p
}

// NormalizeWeights clamps each trait weight to [0,1], drops unknown traits,
// and rescales so the six weights sum to 1.0. A missing or all-zero
// distribution falls back to the generic one.
func NormalizeWeights(raw map[string]float64) Weights {
	out := make(Weights, len(Traits))
	sum := 0.0
	for _, trait := range Traits {
		w := raw[trait]
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			w = 0
		}
		if w > 1 {
			w = 1
		}
		out[trait] = w
		sum += w
	}

	if sum <= 0 {
		return Generic().Weights
	}
	if math.Abs(sum-1.0) > weightSumTolerance {
		for trait, w := range out {
			out[trait] = w / sum
		}
	}
	return out
}

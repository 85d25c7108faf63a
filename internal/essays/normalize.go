package essays

import (
	"encoding/json"
	"math"
	"strings"

	"scholarlens-backend/internal/llm"
	"scholarlens-backend/internal/personas"
)

// Normalize parses a raw generator response into a clean Generated shape:
// missing text fields become empty strings, paragraph focus values outside
// the trait set are blanked, and every score is clamped to [0, 1]. Field
// mismatches degrade to typed zeros instead of failing the whole response;
// only a top-level non-object errors.
func Normalize(raw json.RawMessage) (Generated, error) {
	fields, err := llm.ParseFields(raw)
	if err != nil {
		return Generated{}, err
	}

	g := Generated{
		PersonaName: fields.String("persona_name"),
		ToneUsed:    fields.String("tone_used"),
		Summary:     fields.String("summary"),
	}
	if v, ok := fields.Number("overall_alignment"); ok {
		g.OverallAlignment = clampScore(v)
	}
	for _, item := range fields.ObjectList("essay") {
		p := Paragraph{
			Paragraph: item.String("paragraph"),
			Focus:     validFocus(item.String("focus")),
			Reason:    item.String("reason"),
		}
		if p.Paragraph == "" {
			continue
		}
		if v, ok := item.Number("alignment_score"); ok {
			p.AlignmentScore = clampScore(v)
		}
		g.Paragraphs = append(g.Paragraphs, p)
	}
	return g, nil
}

func validFocus(focus string) string {
	focus = strings.TrimSpace(focus)
	for _, trait := range personas.Traits {
		if strings.EqualFold(focus, trait) {
			return trait
		}
	}
	return ""
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

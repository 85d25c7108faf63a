package llm

import "encoding/json"

// Fixed fallback payloads returned by workflows when the provider is
// unavailable. Shapes mirror the live prompt contracts exactly so callers see
// a uniform result regardless of source.

// MockPersona returns the fixed persona fallback payload.
func MockPersona() json.RawMessage {
	return mustMarshal(map[string]any{
		"persona_name": "The Innovation Leader",
		"tone":         "Ambitious and Forward-Thinking",
		"weights": map[string]float64{
			"Academics":     0.20,
			"Leadership":    0.35,
			"Community":     0.15,
			"Innovation":    0.30,
			"FinancialNeed": 0.00,
			"Research":      0.00,
		},
		"rationale": "This scholarship emphasizes leadership and innovation in STEM fields.",
	})
}

// MockEssay returns the fixed essay fallback payload, echoing the persona's
// name and tone the way the live prompt would.
func MockEssay(persona PersonaContext) json.RawMessage {
	name := persona.Name
	if name == "" {
		name = "The Leader"
	}
	tone := persona.Tone
	if tone == "" {
		tone = "Professional"
	}
	return mustMarshal(map[string]any{
		"persona_name": name,
		"tone_used":    tone,
		"essay": []map[string]any{
			{
				"paragraph":       "Leading my school's robotics team taught me that innovation isn't just about building machines, it's about building futures. When we faced budget constraints, I organized coding workshops for younger students, turning our challenge into an opportunity to inspire the next generation of STEM leaders.",
				"focus":           "Leadership",
				"reason":          "Emphasizing leadership aligns with the scholarship's primary focus",
				"alignment_score": 0.85,
			},
			{
				"paragraph":       "My proudest innovation was developing an AI-powered tutoring app that helped struggling students improve their math scores by 30%. This project combined my technical skills with my passion for educational equity, demonstrating how technology can bridge academic gaps.",
				"focus":           "Innovation",
				"reason":          "Showcasing innovation in education technology",
				"alignment_score": 0.80,
			},
			{
				"paragraph":       "These experiences have shaped my vision to pursue computer science with a focus on educational technology. I aim to develop accessible learning platforms that adapt to individual needs, ensuring every student has the tools to reach their potential.",
				"focus":           "Academics",
				"reason":          "Connecting achievements to academic goals",
				"alignment_score": 0.75,
			},
		},
		"overall_alignment": 0.80,
		"summary":           "Essay successfully emphasizes leadership and innovation while maintaining authentic voice.",
	})
}

// MockEvaluation returns the fixed evaluation fallback payload.
func MockEvaluation(persona PersonaContext) json.RawMessage {
	name := persona.Name
	if name == "" {
		name = "The Leader"
	}
	return mustMarshal(map[string]any{
		"persona_name": name,
		"trait_alignment": map[string]float64{
			"Academics":     0.70,
			"Leadership":    0.85,
			"Community":     0.60,
			"Innovation":    0.80,
			"FinancialNeed": 0.00,
			"Research":      0.20,
		},
		"baseline_alignment": map[string]float64{
			"Academics":     0.75,
			"Leadership":    0.50,
			"Community":     0.40,
			"Innovation":    0.45,
			"FinancialNeed": 0.00,
			"Research":      0.15,
		},
		"alignment_gain":         0.25,
		"tone_consistency_score": 0.88,
		"summary":                "The adaptive essay shows 25% better alignment with scholarship values, particularly in leadership and innovation aspects.",
		"recommendation":         "Use the adaptive essay - it clearly demonstrates stronger alignment with the scholarship's focus on innovation and leadership.",
	})
}

func mustMarshal(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		// Fixed literals above cannot fail to marshal.
		panic(err)
	}
	return data
}

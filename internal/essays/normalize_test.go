package essays

import (
	"encoding/json"
	"testing"
)

func TestNormalizeCleansParagraphs(t *testing.T) {
	g, err := Normalize(json.RawMessage(`{
		"persona_name": " The Builder ",
		"tone_used": "Determined",
		"essay": [
			{"paragraph": " First. ", "focus": "leadership", "reason": "r", "alignment_score": 0.9},
			{"paragraph": "", "focus": "Academics", "reason": "dropped", "alignment_score": 0.5},
			{"paragraph": "Second.", "focus": "Charisma", "reason": "r", "alignment_score": 1.4}
		],
		"overall_alignment": -0.2,
		"summary": "s"
	}`))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if g.PersonaName != "The Builder" {
		t.Fatalf("PersonaName = %q", g.PersonaName)
	}
	if len(g.Paragraphs) != 2 {
		t.Fatalf("empty paragraph kept: %v", g.Paragraphs)
	}
	// Focus is matched case-insensitively against the trait set and
	// canonicalized; unknown traits are blanked.
	if g.Paragraphs[0].Focus != "Leadership" {
		t.Fatalf("Focus = %q", g.Paragraphs[0].Focus)
	}
	if g.Paragraphs[1].Focus != "" {
		t.Fatalf("unknown focus kept: %q", g.Paragraphs[1].Focus)
	}
	if g.Paragraphs[1].AlignmentScore != 1.0 {
		t.Fatalf("score not clamped: %v", g.Paragraphs[1].AlignmentScore)
	}
	if g.OverallAlignment != 0 {
		t.Fatalf("negative overall alignment kept: %v", g.OverallAlignment)
	}
}

func TestNormalizeEmptyObject(t *testing.T) {
	g, err := Normalize(json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if len(g.Paragraphs) != 0 || g.Summary != "" {
		t.Fatalf("got %+v", g)
	}
}

func TestNormalizeToleratesFieldMismatches(t *testing.T) {
	// A mistyped field degrades to its zero value; the rest of the
	// response survives.
	g, err := Normalize(json.RawMessage(`{
		"persona_name": "The Builder",
		"essay": "not an array",
		"overall_alignment": "0.8",
		"summary": "s"
	}`))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if g.PersonaName != "The Builder" || g.Summary != "s" {
		t.Fatalf("valid fields discarded: %+v", g)
	}
	if len(g.Paragraphs) != 0 {
		t.Fatalf("Paragraphs = %v", g.Paragraphs)
	}
	// Numeric strings are coerced.
	if g.OverallAlignment != 0.8 {
		t.Fatalf("OverallAlignment = %v", g.OverallAlignment)
	}
}

func TestNormalizeRejectsNonObject(t *testing.T) {
	if _, err := Normalize(json.RawMessage(`["not", "an", "object"]`)); err == nil {
		t.Fatal("expected error")
	}
}

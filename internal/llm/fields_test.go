package llm

import (
	"encoding/json"
	"testing"
)

func TestFieldMapCoercions(t *testing.T) {
	fields, err := ParseFields(json.RawMessage(`{
		"name": "  Maya  ",
		"count": 3,
		"gpa": "3.86",
		"skills": ["Go", " ", 7, "SQL"],
		"nested": {"score": "0.5"},
		"items": [{"a": 1}, "skip", {"b": 2}],
		"none": null
	}`))
	if err != nil {
		t.Fatalf("ParseFields: %v", err)
	}

	if got := fields.String("name"); got != "Maya" {
		t.Fatalf("String(name) = %q", got)
	}
	if got := fields.String("count"); got != "3" {
		t.Fatalf("String(count) = %q", got)
	}
	if got := fields.String("skills"); got != "" {
		t.Fatalf("String(skills) = %q", got)
	}

	if v, ok := fields.Number("gpa"); !ok || v != 3.86 {
		t.Fatalf("Number(gpa) = %v, %v", v, ok)
	}
	if _, ok := fields.Number("name"); ok {
		t.Fatal("Number(name) accepted a non-numeric string")
	}
	if _, ok := fields.Number("missing"); ok {
		t.Fatal("Number(missing) reported present")
	}

	skills := fields.StringList("skills")
	if len(skills) != 2 || skills[0] != "Go" || skills[1] != "SQL" {
		t.Fatalf("StringList(skills) = %v", skills)
	}
	if got := fields.StringList("name"); got != nil {
		t.Fatalf("StringList(name) = %v", got)
	}

	if v, ok := fields.Object("nested").Number("score"); !ok || v != 0.5 {
		t.Fatalf("nested score = %v, %v", v, ok)
	}
	if len(fields.Object("name")) != 0 {
		t.Fatal("Object(name) not empty")
	}

	items := fields.ObjectList("items")
	if len(items) != 2 {
		t.Fatalf("ObjectList(items) = %v", items)
	}

	if fields.Has("none") {
		t.Fatal("Has(none) true for null")
	}
	if !fields.Has("name") {
		t.Fatal("Has(name) false")
	}
}

func TestParseFieldsRejectsNonObject(t *testing.T) {
	if _, err := ParseFields(json.RawMessage(`[1, 2]`)); err == nil {
		t.Fatal("expected error")
	}
}

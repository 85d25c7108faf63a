package evaluations

import (
	"encoding/json"
	"testing"
)

func TestEssayRefUnmarshalsID(t *testing.T) {
	var ref EssayRef
	if err := json.Unmarshal([]byte(`42`), &ref); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !ref.IsByID() || ref.EssayID() != 42 {
		t.Fatalf("got %+v", ref)
	}
}

func TestEssayRefUnmarshalsParagraphArray(t *testing.T) {
	var ref EssayRef
	if err := json.Unmarshal([]byte(`["one", "two"]`), &ref); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if ref.IsByID() {
		t.Fatal("array parsed as id")
	}
	if got := ref.Paragraphs(); len(got) != 2 || got[0] != "one" {
		t.Fatalf("Paragraphs = %v", got)
	}
}

func TestEssayRefRejectsOtherShapes(t *testing.T) {
	for _, raw := range []string{`{"id": 1}`, `"text"`, `[1, 2]`, `true`} {
		var ref EssayRef
		if err := json.Unmarshal([]byte(raw), &ref); err == nil {
			t.Fatalf("%s: expected error", raw)
		}
	}
}

func TestEssayRefZero(t *testing.T) {
	var ref EssayRef
	if !ref.IsZero() {
		t.Fatal("zero value not reported as unset")
	}
	if Inline([]string{"p"}).IsZero() || ByID(1).IsZero() {
		t.Fatal("set refs reported as unset")
	}
}

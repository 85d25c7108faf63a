package evaluations

import (
	"encoding/json"
	"fmt"
)

// EssayRef is either a stored essay id or an inline list of paragraph
// texts. Exactly one form is set.
type EssayRef struct {
	id         int64
	paragraphs []string
	byID       bool
	set        bool
}

// ByID references a stored essay.
func ByID(id int64) EssayRef {
	return EssayRef{id: id, byID: true, set: true}
}

// Inline carries paragraph texts directly.
func Inline(paragraphs []string) EssayRef {
	return EssayRef{paragraphs: paragraphs, set: true}
}

// IsByID reports whether the reference names a stored essay.
func (r EssayRef) IsByID() bool { return r.byID }

// EssayID returns the referenced essay id; only meaningful when IsByID.
func (r EssayRef) EssayID() int64 { return r.id }

// Paragraphs returns the inline paragraph texts; only meaningful when not
// IsByID.
func (r EssayRef) Paragraphs() []string { return r.paragraphs }

// IsZero reports an unset reference.
func (r EssayRef) IsZero() bool { return !r.set }

// UnmarshalJSON accepts either a JSON number (essay id) or an array of
// strings (inline paragraphs).
func (r *EssayRef) UnmarshalJSON(data []byte) error {
	var id int64
	if err := json.Unmarshal(data, &id); err == nil {
		*r = ByID(id)
		return nil
	}
	var paragraphs []string
	if err := json.Unmarshal(data, &paragraphs); err == nil {
		*r = Inline(paragraphs)
		return nil
	}
	return fmt.Errorf("essay reference must be an essay id or an array of paragraph strings")
}

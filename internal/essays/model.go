package essays

import "time"

// Essay type tags.
const (
	TypeAdaptive      = "adaptive"
	TypeBaseline      = "baseline"
	TypeUserSubmitted = "user_submitted"
)

// ToneBaseline is the tone label stamped on baseline essays regardless of
// what the generator reported.
const ToneBaseline = "Generic Academic"

// Paragraph is one generated paragraph with its trait focus and the model's
// own alignment estimate.
type Paragraph struct {
	Paragraph      string  `json:"paragraph"`
	Focus          string  `json:"focus"`
	Reason         string  `json:"reason"`
	AlignmentScore float64 `json:"alignment_score"`
}

// Essay is a persisted generated essay.
type Essay struct {
	ID               int64       `json:"id"`
	StudentProfileID int64       `json:"student_profile_id"`
	PersonaID        int64       `json:"persona_id"`
	EssayType        string      `json:"essay_type"`
	Paragraphs       []Paragraph `json:"paragraphs"`
	ToneUsed         string      `json:"tone_used"`
	OverallAlignment float64     `json:"overall_alignment"`
	Summary          string      `json:"summary"`
	CreatedAt        time.Time   `json:"created_at"`
}

// Generated is the normalized output of one essay generation call, before
// any persistence.
type Generated struct {
	PersonaName      string      `json:"persona_name"`
	ToneUsed         string      `json:"tone_used"`
	Paragraphs       []Paragraph `json:"essay"`
	OverallAlignment float64     `json:"overall_alignment"`
	Summary          string      `json:"summary"`
}

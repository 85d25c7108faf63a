package profiles

import (
	"encoding/json"
	"math"
	"strconv"

	"scholarlens-backend/internal/extract"
	"scholarlens-backend/internal/llm"
)

const (
	defaultConfidence  = 0.5
	fallbackConfidence = 0.3
)

// Extraction is the structured result of running the extractor over resume
// text, whether by model or by the regex fallback.
type Extraction struct {
	Name           string           `json:"name"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	GPA            *float64         `json:"gpa"`
	Activities     []string         `json:"activities"`
	Achievements   []string         `json:"achievements"`
	Goals          string           `json:"goals"`
	Skills         []string         `json:"skills"`
	Education      []Education      `json:"education"`
	WorkExperience []WorkExperience `json:"work_experience"`
	Certifications []string         `json:"certifications"`
	Languages      []string         `json:"languages"`
	Awards         []string         `json:"awards"`
	Confidence     float64          `json:"extraction_confidence"`
}

// NormalizeExtraction parses a raw extractor response and cleans it
// field by field: a GPA outside [0, 4] is discarded and numeric strings
// are coerced, string lists are trimmed of blanks with non-list values
// emptied, and the confidence is clamped to [0, 1] — computed from field
// coverage when the response omits it. A bad field never discards the
// rest of the payload; only a top-level non-object fails.
func NormalizeExtraction(raw json.RawMessage) (Extraction, error) {
	fields, err := llm.ParseFields(raw)
	if err != nil {
		return Extraction{}, err
	}

	e := Extraction{
		Name:           fields.String("name"),
		Email:          fields.String("email"),
		Phone:          fields.String("phone"),
		Goals:          fields.String("goals"),
		Activities:     fields.StringList("activities"),
		Achievements:   fields.StringList("achievements"),
		Skills:         fields.StringList("skills"),
		Education:      educationList(fields),
		WorkExperience: workExperienceList(fields),
		Certifications: fields.StringList("certifications"),
		Languages:      fields.StringList("languages"),
		Awards:         fields.StringList("awards"),
	}
	e.GPA = validGPA(fields, "gpa")

	if conf, ok := fields.Number("extraction_confidence"); ok {
		if math.IsNaN(conf) || math.IsInf(conf, 0) {
			e.Confidence = defaultConfidence
		} else {
			e.Confidence = math.Max(0, math.Min(1, conf))
		}
	} else {
		e.Confidence = ComputeConfidence(e)
	}
	return e, nil
}

func validGPA(fields llm.FieldMap, key string) *float64 {
	gpa, ok := fields.Number(key)
	if !ok || math.IsNaN(gpa) || math.IsInf(gpa, 0) || gpa < 0 || gpa > 4.0 {
		return nil
	}
	rounded := math.Round(gpa*100) / 100
	return &rounded
}

func educationList(fields llm.FieldMap) []Education {
	var out []Education
	for _, item := range fields.ObjectList("education") {
		edu := Education{
			School:         item.String("school"),
			Degree:         item.String("degree"),
			Field:          item.String("field"),
			GraduationYear: item.String("graduation_year"),
			GPA:            validGPA(item, "gpa"),
		}
		if edu.School == "" && edu.Degree == "" {
			continue
		}
		out = append(out, edu)
	}
	return out
}

func workExperienceList(fields llm.FieldMap) []WorkExperience {
	var out []WorkExperience
	for _, item := range fields.ObjectList("work_experience") {
		work := WorkExperience{
			Company:         item.String("company"),
			Role:            item.String("role"),
			Duration:        item.String("duration"),
			Description:     item.String("description"),
			KeyAchievements: item.StringList("key_achievements"),
		}
		if work.Company == "" && work.Role == "" {
			continue
		}
		out = append(out, work)
	}
	return out
}

// ComputeConfidence scores field coverage. Fields a reader needs to trust
// the extraction weigh double.
func ComputeConfidence(e Extraction) float64 {
	important := []bool{
		e.Name != "",
		e.Email != "",
		len(e.Education) > 0,
		len(e.Skills) > 0,
		len(e.WorkExperience) > 0,
	}
	optional := []bool{
		e.GPA != nil,
		e.Phone != "",
		len(e.Activities) > 0,
		len(e.Achievements) > 0,
		e.Goals != "",
		len(e.Certifications) > 0,
		len(e.Languages) > 0,
		len(e.Awards) > 0,
	}

	var score, max float64
	for _, filled := range important {
		max += 2.0
		if filled {
			score += 2.0
		}
	}
	for _, filled := range optional {
		max += 1.0
		if filled {
			score += 1.0
		}
	}
	return math.Round(score/max*100) / 100
}

// HeuristicExtraction scrapes resume text with regex patterns. It is the
// fallback when model extraction fails and carries a fixed low confidence.
func HeuristicExtraction(resumeText string) Extraction {
	e := Extraction{
		Name:       extract.NameGuess(resumeText),
		Email:      extract.Email(resumeText),
		Phone:      extract.Phone(resumeText),
		Skills:     extract.Skills(resumeText),
		Confidence: fallbackConfidence,
	}
	if raw := extract.GPA(resumeText); raw != "" {
		if gpa, err := strconv.ParseFloat(raw, 64); err == nil && gpa >= 0 && gpa <= 4.0 {
			e.GPA = &gpa
		}
	}
	return e
}

package profiles

import "time"

// Profile provenance values.
const (
	SourceManual      = "manual"
	SourceResume      = "resume"
	SourceAIExtracted = "ai_extracted"
)

// Education is one schooling entry on a profile.
type Education struct {
	School         string   `json:"school"`
	Degree         string   `json:"degree"`
	Field          string   `json:"field,omitempty"`
	GraduationYear string   `json:"graduation_year,omitempty"`
	GPA            *float64 `json:"gpa,omitempty"`
}

// WorkExperience is one employment entry on a profile.
type WorkExperience struct {
	Company         string   `json:"company"`
	Role            string   `json:"role"`
	Duration        string   `json:"duration,omitempty"`
	Description     string   `json:"description,omitempty"`
	KeyAchievements []string `json:"key_achievements,omitempty"`
}

// StudentProfile holds everything known about a student, whether entered
// manually or extracted from an uploaded resume.
type StudentProfile struct {
	ID             int64            `json:"id"`
	Name           string           `json:"name"`
	Email          string           `json:"email,omitempty"`
	Phone          string           `json:"phone,omitempty"`
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

	ProfileSource    string `json:"profile_source"`
	ResumeFilename   string `json:"resume_filename,omitempty"`
	ResumeStorageKey string `json:"-"`
	RawResumeText    string `json:"-"`

	ExtractionConfidence *float64   `json:"extraction_confidence,omitempty"`
	LastExtractedAt      *time.Time `json:"last_extracted_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Update is a partial manual edit. Nil fields are left untouched; any set
// field flips provenance back to manual.
type Update struct {
	Name           *string           `json:"name"`
	Email          *string           `json:"email"`
	Phone          *string           `json:"phone"`
	GPA            *float64          `json:"gpa"`
	Activities     *[]string         `json:"activities"`
	Achievements   *[]string         `json:"achievements"`
	Goals          *string           `json:"goals"`
	Skills         *[]string         `json:"skills"`
	Education      *[]Education      `json:"education"`
	WorkExperience *[]WorkExperience `json:"work_experience"`
	Certifications *[]string         `json:"certifications"`
	Languages      *[]string         `json:"languages"`
	Awards         *[]string         `json:"awards"`
}

// Empty reports whether the update would change nothing.
func (u Update) Empty() bool {
	return u.Name == nil && u.Email == nil && u.Phone == nil && u.GPA == nil &&
		u.Activities == nil && u.Achievements == nil && u.Goals == nil &&
		u.Skills == nil && u.Education == nil && u.WorkExperience == nil &&
		u.Certifications == nil && u.Languages == nil && u.Awards == nil
}

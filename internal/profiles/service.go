package profiles

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"scholarlens-backend/internal/extract"
	"scholarlens-backend/internal/llm"
	"scholarlens-backend/internal/shared/storage/object"
	"scholarlens-backend/internal/shared/telemetry"
)

const (
	maxResumeBytes      = 10 << 20
	maxResumeTextLength = 50000
	textPreviewLength   = 500
)

// Generator is the slice of the generation client the extraction workflow
// uses.
type Generator interface {
	Invoke(ctx context.Context, kind llm.PromptKind, payload any) (json.RawMessage, error)
}

// Service implements profile CRUD and the resume pipeline: upload, text
// extraction, and AI-assisted structuring.
type Service struct {
	Repo  Repo
	Store object.ObjectStore
	Gen   Generator
}

// Create stores a new manually entered profile.
func (s *Service) Create(ctx context.Context, p StudentProfile) (StudentProfile, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.ProfileSource == "" {
		p.ProfileSource = SourceManual
	}
	return s.Repo.Create(ctx, p)
}

// Get returns a profile by id.
func (s *Service) Get(ctx context.Context, id int64) (StudentProfile, error) {
	return s.Repo.GetByID(ctx, id)
}

// ApplyUpdate patches a profile with manual edits. Any applied field flips
// provenance back to manual.
func (s *Service) ApplyUpdate(ctx context.Context, id int64, u Update) (StudentProfile, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return StudentProfile{}, err
	}
	if u.Empty() {
		return p, nil
	}

	if u.Name != nil {
		p.Name = strings.TrimSpace(*u.Name)
	}
	if u.Email != nil {
		p.Email = strings.TrimSpace(*u.Email)
	}
	if u.Phone != nil {
		p.Phone = strings.TrimSpace(*u.Phone)
	}
	if u.GPA != nil {
		p.GPA = u.GPA
	}
	if u.Activities != nil {
		p.Activities = *u.Activities
	}
	if u.Achievements != nil {
		p.Achievements = *u.Achievements
	}
	if u.Goals != nil {
		p.Goals = *u.Goals
	}
	if u.Skills != nil {
		p.Skills = *u.Skills
	}
	if u.Education != nil {
		p.Education = *u.Education
	}
	if u.WorkExperience != nil {
		p.WorkExperience = *u.WorkExperience
	}
	if u.Certifications != nil {
		p.Certifications = *u.Certifications
	}
	if u.Languages != nil {
		p.Languages = *u.Languages
	}
	if u.Awards != nil {
		p.Awards = *u.Awards
	}
	p.ProfileSource = SourceManual

	return s.Repo.Save(ctx, p)
}

// ResumeUpload describes a stored resume after upload.
type ResumeUpload struct {
	Profile     StudentProfile
	StorageKey  string
	TextLength  int
	TextPreview string
}

// AttachResume validates a PDF upload, stores it, extracts its text, and
// records both on the profile with provenance "resume". A previously stored
// resume object is removed.
func (s *Service) AttachResume(ctx context.Context, studentID int64, fileName string, size int64, r io.Reader) (ResumeUpload, error) {
	p, err := s.Repo.GetByID(ctx, studentID)
	if err != nil {
		return ResumeUpload{}, err
	}

	if strings.ToLower(filepath.Ext(fileName)) != ".pdf" {
		return ResumeUpload{}, ErrNotPDF
	}
	if size > maxResumeBytes {
		return ResumeUpload{}, ErrFileTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(r, maxResumeBytes+1))
	if err != nil {
		return ResumeUpload{}, fmt.Errorf("read upload: %w", err)
	}
	if len(data) > maxResumeBytes {
		return ResumeUpload{}, ErrFileTooLarge
	}

	text, err := extract.PDFText(data)
	if err != nil {
		return ResumeUpload{}, fmt.Errorf("%w: %v", ErrEmptyText, err)
	}
	if text == "" {
		return ResumeUpload{}, ErrEmptyText
	}

	ownerKey := fmt.Sprintf("profiles/%d", studentID)
	storageKey, _, _, err := s.Store.Save(ctx, ownerKey, fileName, bytes.NewReader(data))
	if err != nil {
		return ResumeUpload{}, fmt.Errorf("store resume: %w", err)
	}

	if p.ResumeStorageKey != "" && p.ResumeStorageKey != storageKey {
		if err := s.Store.Delete(ctx, p.ResumeStorageKey); err != nil {
			telemetry.Warn("profiles.resume_cleanup_failed", map[string]any{
				"student_id":  studentID,
				"storage_key": p.ResumeStorageKey,
				"error":       err.Error(),
			})
		}
	}

	fullLength := len(text)
	if len(text) > maxResumeTextLength {
		text = text[:maxResumeTextLength]
	}

	p.ResumeFilename = fileName
	p.ResumeStorageKey = storageKey
	p.RawResumeText = text
	p.ProfileSource = SourceResume

	saved, err := s.Repo.Save(ctx, p)
	if err != nil {
		return ResumeUpload{}, err
	}

	preview := text
	if len(preview) > textPreviewLength {
		preview = preview[:textPreviewLength]
	}
	return ResumeUpload{
		Profile:     saved,
		StorageKey:  storageKey,
		TextLength:  fullLength,
		TextPreview: preview,
	}, nil
}

// RemoveResume deletes the stored resume object and clears resume fields on
// the profile. A missing stored object is not an error.
func (s *Service) RemoveResume(ctx context.Context, studentID int64) (StudentProfile, error) {
	p, err := s.Repo.GetByID(ctx, studentID)
	if err != nil {
		return StudentProfile{}, err
	}

	if p.ResumeStorageKey != "" {
		if err := s.Store.Delete(ctx, p.ResumeStorageKey); err != nil {
			telemetry.Warn("profiles.resume_delete_failed", map[string]any{
				"student_id":  studentID,
				"storage_key": p.ResumeStorageKey,
				"error":       err.Error(),
			})
		}
	}

	p.ResumeFilename = ""
	p.ResumeStorageKey = ""
	p.RawResumeText = ""

	return s.Repo.Save(ctx, p)
}

// ExtractionResult is the outcome of structuring a resume into profile
// fields.
type ExtractionResult struct {
	Profile  StudentProfile
	Fallback bool
}

// Extract structures the stored resume text into profile fields. On model
// failure the regex fallback is substituted. Scalars overwrite only when the
// extraction produced a value; list fields are replaced wholesale. The
// profile ends up with provenance "ai_extracted" and a fresh extraction
// timestamp.
func (s *Service) Extract(ctx context.Context, studentID int64) (ExtractionResult, error) {
	p, err := s.Repo.GetByID(ctx, studentID)
	if err != nil {
		return ExtractionResult{}, err
	}
	if p.RawResumeText == "" {
		return ExtractionResult{}, ErrNoResumeText
	}

	extraction, fallback := s.runExtraction(ctx, p.RawResumeText)

	if extraction.Name != "" {
		p.Name = extraction.Name
	}
	if extraction.Email != "" {
		p.Email = extraction.Email
	}
	if extraction.Phone != "" {
		p.Phone = extraction.Phone
	}
	if extraction.GPA != nil {
		p.GPA = extraction.GPA
	}
	p.Activities = extraction.Activities
	p.Achievements = extraction.Achievements
	p.Goals = extraction.Goals
	p.Skills = extraction.Skills
	p.Education = extraction.Education
	p.WorkExperience = extraction.WorkExperience
	p.Certifications = extraction.Certifications
	p.Languages = extraction.Languages
	p.Awards = extraction.Awards

	confidence := extraction.Confidence
	p.ExtractionConfidence = &confidence
	now := time.Now().UTC()
	p.LastExtractedAt = &now
	p.ProfileSource = SourceAIExtracted

	saved, err := s.Repo.Save(ctx, p)
	if err != nil {
		return ExtractionResult{}, err
	}
	return ExtractionResult{Profile: saved, Fallback: fallback}, nil
}

func (s *Service) runExtraction(ctx context.Context, resumeText string) (Extraction, bool) {
	raw, err := s.Gen.Invoke(ctx, llm.KindResumeExtractor, resumeText)
	if err != nil {
		telemetry.Warn("profiles.extraction_fallback", map[string]any{"error": err.Error()})
		return HeuristicExtraction(resumeText), true
	}
	extraction, err := NormalizeExtraction(raw)
	if err != nil {
		telemetry.Warn("profiles.extraction_fallback", map[string]any{"error": err.Error()})
		return HeuristicExtraction(resumeText), true
	}
	return extraction, false
}

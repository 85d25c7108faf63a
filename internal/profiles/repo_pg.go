package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const profileColumns = `id, name, email, phone, gpa, activities, achievements, goals, skills,
	education, work_experience, certifications, languages, awards,
	profile_source, resume_filename, resume_storage_key, raw_resume_text,
	extraction_confidence, last_extracted_at, created_at, updated_at`

// GetByID returns a profile by id.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (StudentProfile, error) {
	const query = `
SELECT ` + profileColumns + `
FROM student_profiles
WHERE id = $1`

	p, err := scanProfile(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return StudentProfile{}, ErrNotFound
		}
		return StudentProfile{}, err
	}
	return p, nil
}

// GetByEmail returns a profile by email.
func (r *PGRepo) GetByEmail(ctx context.Context, email string) (StudentProfile, error) {
	const query = `
SELECT ` + profileColumns + `
FROM student_profiles
WHERE email = $1`

	p, err := scanProfile(r.DB.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return StudentProfile{}, ErrNotFound
		}
		return StudentProfile{}, err
	}
	return p, nil
}

// Create inserts a profile and returns it with generated fields filled in.
func (r *PGRepo) Create(ctx context.Context, p StudentProfile) (StudentProfile, error) {
	const query = `
INSERT INTO student_profiles (
	name, email, phone, gpa, activities, achievements, goals, skills,
	education, work_experience, certifications, languages, awards,
	profile_source, resume_filename, resume_storage_key, raw_resume_text,
	extraction_confidence, last_extracted_at, created_at, updated_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, now(), now())
RETURNING id, created_at, updated_at`

	args, err := profileArgs(p)
	if err != nil {
		return StudentProfile{}, err
	}

	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return StudentProfile{}, err
	}
	return p, nil
}

// Save overwrites every mutable column of an existing profile.
func (r *PGRepo) Save(ctx context.Context, p StudentProfile) (StudentProfile, error) {
	const query = `
UPDATE student_profiles SET
	name = $1, email = $2, phone = $3, gpa = $4, activities = $5, achievements = $6,
	goals = $7, skills = $8, education = $9, work_experience = $10,
	certifications = $11, languages = $12, awards = $13,
	profile_source = $14, resume_filename = $15, resume_storage_key = $16,
	raw_resume_text = $17, extraction_confidence = $18, last_extracted_at = $19,
	updated_at = now()
WHERE id = $20
RETURNING updated_at`

	args, err := profileArgs(p)
	if err != nil {
		return StudentProfile{}, err
	}
	args = append(args, p.ID)

	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return StudentProfile{}, ErrNotFound
		}
		return StudentProfile{}, err
	}
	return p, nil
}

func profileArgs(p StudentProfile) ([]any, error) {
	jsonCols := []struct {
		name  string
		value any
	}{
		{"activities", p.Activities},
		{"achievements", p.Achievements},
		{"skills", p.Skills},
		{"education", p.Education},
		{"work_experience", p.WorkExperience},
		{"certifications", p.Certifications},
		{"languages", p.Languages},
		{"awards", p.Awards},
	}
	encoded := make(map[string][]byte, len(jsonCols))
	for _, col := range jsonCols {
		data, err := json.Marshal(col.value)
		if err != nil {
			return nil, fmt.Errorf("marshal %s: %w", col.name, err)
		}
		encoded[col.name] = data
	}

	var lastExtracted sql.NullTime
	if p.LastExtractedAt != nil {
		lastExtracted = sql.NullTime{Time: *p.LastExtractedAt, Valid: true}
	}

	return []any{
		p.Name,
		nullString(p.Email),
		nullString(p.Phone),
		p.GPA,
		encoded["activities"],
		encoded["achievements"],
		nullString(p.Goals),
		encoded["skills"],
		encoded["education"],
		encoded["work_experience"],
		encoded["certifications"],
		encoded["languages"],
		encoded["awards"],
		p.ProfileSource,
		nullString(p.ResumeFilename),
		nullString(p.ResumeStorageKey),
		nullString(p.RawResumeText),
		p.ExtractionConfidence,
		lastExtracted,
	}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (StudentProfile, error) {
	var p StudentProfile
	var email, phone, goals, resumeFilename, resumeKey, rawText sql.NullString
	var gpa, confidence sql.NullFloat64
	var lastExtracted sql.NullTime
	var activities, achievements, skills, education, workExperience,
		certifications, languages, awards []byte

	err := row.Scan(
		&p.ID,
		&p.Name,
		&email,
		&phone,
		&gpa,
		&activities,
		&achievements,
		&goals,
		&skills,
		&education,
		&workExperience,
		&certifications,
		&languages,
		&awards,
		&p.ProfileSource,
		&resumeFilename,
		&resumeKey,
		&rawText,
		&confidence,
		&lastExtracted,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return StudentProfile{}, err
	}

	p.Email = email.String
	p.Phone = phone.String
	p.Goals = goals.String
	p.ResumeFilename = resumeFilename.String
	p.ResumeStorageKey = resumeKey.String
	p.RawResumeText = rawText.String
	if gpa.Valid {
		v := gpa.Float64
		p.GPA = &v
	}
	if confidence.Valid {
		v := confidence.Float64
		p.ExtractionConfidence = &v
	}
	if lastExtracted.Valid {
		t := lastExtracted.Time
		p.LastExtractedAt = &t
	}

	for _, col := range []struct {
		data []byte
		dest any
	}{
		{activities, &p.Activities},
		{achievements, &p.Achievements},
		{skills, &p.Skills},
		{education, &p.Education},
		{workExperience, &p.WorkExperience},
		{certifications, &p.Certifications},
		{languages, &p.Languages},
		{awards, &p.Awards},
	} {
		if len(col.data) == 0 {
			continue
		}
		if err := json.Unmarshal(col.data, col.dest); err != nil {
			return StudentProfile{}, fmt.Errorf("unmarshal profile column: %w", err)
		}
	}
	return p, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

var _ Repo = (*PGRepo)(nil)

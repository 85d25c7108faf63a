package personas

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

const personaColumns = `id, scholarship_id, persona_name, tone, weights, rationale, version, created_at`

// GetByScholarship returns the cached persona for a scholarship.
func (r *PGRepo) GetByScholarship(ctx context.Context, scholarshipID int64) (Persona, error) {
	const query = `
SELECT ` + personaColumns + `
FROM personas
WHERE scholarship_id = $1`

	return r.queryOne(ctx, query, scholarshipID)
}

// GetByID returns a persona by id.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (Persona, error) {
	const query = `
SELECT ` + personaColumns + `
FROM personas
WHERE id = $1`

	return r.queryOne(ctx, query, id)
}

// Create inserts a persona. The unique constraint on scholarship_id makes
// concurrent first analyses converge on a single row: on conflict the insert
// is skipped and the existing row returned.
func (r *PGRepo) Create(ctx context.Context, p Persona) (Persona, bool, error) {
	const query = `
INSERT INTO personas (scholarship_id, persona_name, tone, weights, rationale, version, created_at)
VALUES ($1, $2, $3, $4, $5, $6, now())
ON CONFLICT (scholarship_id) DO NOTHING
RETURNING ` + personaColumns

	weights, err := json.Marshal(p.Weights)
	if err != nil {
		return Persona{}, false, fmt.Errorf("marshal weights: %w", err)
	}
	version := p.Version
	if version <= 0 {
		version = 1
	}

	row := r.DB.QueryRowContext(ctx, query, p.ScholarshipID, p.Name, nullString(p.Tone), weights, nullString(p.Rationale), version)
	created, err := scanPersona(row)
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return Persona{}, false, err
	}

	existing, err := r.GetByScholarship(ctx, p.ScholarshipID)
	if err != nil {
		return Persona{}, false, err
	}
	return existing, false, nil
}

func (r *PGRepo) queryOne(ctx context.Context, query string, arg any) (Persona, error) {
	row := r.DB.QueryRowContext(ctx, query, arg)
	p, err := scanPersona(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Persona{}, ErrNotFound
		}
		return Persona{}, err
	}
	return p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPersona(row rowScanner) (Persona, error) {
	var p Persona
	var tone, rationale sql.NullString
	var weightsRaw []byte
	err := row.Scan(
		&p.ID,
		&p.ScholarshipID,
		&p.Name,
		&tone,
		&weightsRaw,
		&rationale,
		&p.Version,
		&p.CreatedAt,
	)
	if err != nil {
		return Persona{}, err
	}
	if tone.Valid {
		p.Tone = tone.String
	}
	if rationale.Valid {
		p.Rationale = rationale.String
	}
	if len(weightsRaw) > 0 {
		if err := json.Unmarshal(weightsRaw, &p.Weights); err != nil {
			return Persona{}, fmt.Errorf("unmarshal weights: %w", err)
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

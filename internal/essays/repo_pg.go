package essays

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

// GetByID returns an essay by id.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (Essay, error) {
	const query = `
SELECT id, student_profile_id, persona_id, essay_type, paragraphs, tone_used, overall_alignment, summary, created_at
FROM essays
WHERE id = $1`

	var e Essay
	var paragraphs []byte
	var toneUsed, summary sql.NullString
	var overall sql.NullFloat64

	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&e.ID,
		&e.StudentProfileID,
		&e.PersonaID,
		&e.EssayType,
		&paragraphs,
		&toneUsed,
		&overall,
		&summary,
		&e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Essay{}, ErrNotFound
		}
		return Essay{}, err
	}

	if err := json.Unmarshal(paragraphs, &e.Paragraphs); err != nil {
		return Essay{}, fmt.Errorf("unmarshal paragraphs: %w", err)
	}
	e.ToneUsed = toneUsed.String
	e.OverallAlignment = overall.Float64
	e.Summary = summary.String
	return e, nil
}

// Create inserts an essay and returns its id.
func (r *PGRepo) Create(ctx context.Context, e Essay) (int64, error) {
	const query = `
INSERT INTO essays (student_profile_id, persona_id, essay_type, paragraphs, tone_used, overall_alignment, summary, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now())
RETURNING id`

	paragraphs, err := json.Marshal(e.Paragraphs)
	if err != nil {
		return 0, fmt.Errorf("marshal paragraphs: %w", err)
	}

	var id int64
	err = r.DB.QueryRowContext(
		ctx,
		query,
		e.StudentProfileID,
		e.PersonaID,
		e.EssayType,
		paragraphs,
		e.ToneUsed,
		e.OverallAlignment,
		e.Summary,
	).Scan(&id)
	return id, err
}

var _ Repo = (*PGRepo)(nil)

package evaluations

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts an evaluation and returns its id.
func (r *PGRepo) Create(ctx context.Context, e Evaluation) (int64, error) {
	const query = `
INSERT INTO evaluations (persona_id, adaptive_essay_id, baseline_essay_id, trait_alignment, baseline_alignment,
	alignment_gain, tone_consistency_score, summary, recommendation, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
RETURNING id`

	traitAlignment, err := json.Marshal(e.TraitAlignment)
	if err != nil {
		return 0, fmt.Errorf("marshal trait alignment: %w", err)
	}
	baselineAlignment, err := json.Marshal(e.BaselineAlignment)
	if err != nil {
		return 0, fmt.Errorf("marshal baseline alignment: %w", err)
	}

	var adaptiveID, baselineID sql.NullInt64
	if e.AdaptiveEssayID != nil {
		adaptiveID = sql.NullInt64{Int64: *e.AdaptiveEssayID, Valid: true}
	}
	if e.BaselineEssayID != nil {
		baselineID = sql.NullInt64{Int64: *e.BaselineEssayID, Valid: true}
	}

	var id int64
	err = r.DB.QueryRowContext(
		ctx,
		query,
		e.PersonaID,
		adaptiveID,
		baselineID,
		traitAlignment,
		baselineAlignment,
		e.AlignmentGain,
		e.ToneConsistencyScore,
		e.Summary,
		e.Recommendation,
	).Scan(&id)
	return id, err
}

var _ Repo = (*PGRepo)(nil)

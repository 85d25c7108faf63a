package apilog

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new call log row.
func (r *PGRepo) Create(ctx context.Context, entry Log) error {
	const query = `
INSERT INTO api_logs (prompt_kind, status, model, latency_ms, input_tokens, output_tokens, error_message, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	var errMsg sql.NullString
	if entry.ErrorMessage != "" {
		errMsg = sql.NullString{String: entry.ErrorMessage, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		entry.PromptKind,
		entry.Status,
		entry.Model,
		entry.LatencyMS,
		entry.InputTokens,
		entry.OutputTokens,
		errMsg,
		entry.CreatedAt,
	)
	return err
}

// ListRecent returns the most recent call logs, newest first.
func (r *PGRepo) ListRecent(ctx context.Context, limit int) ([]Log, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	const query = `
SELECT id, prompt_kind, status, model, latency_ms, input_tokens, output_tokens, error_message, created_at
FROM api_logs
ORDER BY created_at DESC
LIMIT $1`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Log
	for rows.Next() {
		var entry Log
		var errMsg sql.NullString
		if err := rows.Scan(
			&entry.ID,
			&entry.PromptKind,
			&entry.Status,
			&entry.Model,
			&entry.LatencyMS,
			&entry.InputTokens,
			&entry.OutputTokens,
			&errMsg,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		if errMsg.Valid {
			entry.ErrorMessage = errMsg.String
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)

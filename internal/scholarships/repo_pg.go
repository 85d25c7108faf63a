package scholarships

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const scholarshipColumns = `id, name, organization, description, criteria, amount, deadline, url, created_at, updated_at`

// GetByID returns a scholarship by id.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (Scholarship, error) {
	const query = `
SELECT ` + scholarshipColumns + `
FROM scholarships
WHERE id = $1`

	row := r.DB.QueryRowContext(ctx, query, id)
	s, err := scanScholarship(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Scholarship{}, ErrNotFound
		}
		return Scholarship{}, err
	}
	return s, nil
}

// List returns all scholarships, newest first.
func (r *PGRepo) List(ctx context.Context) ([]Scholarship, error) {
	const query = `
SELECT ` + scholarshipColumns + `
FROM scholarships
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Scholarship
	for rows.Next() {
		s, err := scanScholarship(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Create inserts a scholarship and returns its id.
func (r *PGRepo) Create(ctx context.Context, s Scholarship) (int64, error) {
	const query = `
INSERT INTO scholarships (name, organization, description, criteria, amount, deadline, url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
RETURNING id`

	var deadline sql.NullTime
	if s.Deadline != nil {
		deadline = sql.NullTime{Time: *s.Deadline, Valid: true}
	}

	var id int64
	err := r.DB.QueryRowContext(
		ctx,
		query,
		s.Name,
		nullString(s.Organization),
		s.Description,
		nullString(s.Criteria),
		s.Amount,
		deadline,
		nullString(s.URL),
	).Scan(&id)
	return id, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScholarship(row rowScanner) (Scholarship, error) {
	var s Scholarship
	var organization, criteria, url sql.NullString
	var amount sql.NullFloat64
	var deadline sql.NullTime
	err := row.Scan(
		&s.ID,
		&s.Name,
		&organization,
		&s.Description,
		&criteria,
		&amount,
		&deadline,
		&url,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return Scholarship{}, err
	}
	if organization.Valid {
		s.Organization = organization.String
	}
	if criteria.Valid {
		s.Criteria = criteria.String
	}
	if amount.Valid {
		s.Amount = amount.Float64
	}
	if deadline.Valid {
		t := deadline.Time
		s.Deadline = &t
	}
	if url.Valid {
		s.URL = url.String
	}
	return s, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

var _ Repo = (*PGRepo)(nil)

package personas

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func personaRows(t *testing.T, p Persona) *sqlmock.Rows {
	t.Helper()
	return sqlmock.NewRows([]string{
		"id", "scholarship_id", "persona_name", "tone", "weights", "rationale", "version", "created_at",
	}).AddRow(p.ID, p.ScholarshipID, p.Name, p.Tone, []byte(`{"Academics":0.5,"Leadership":0.5}`), p.Rationale, p.Version, time.Now().UTC())
}

func TestPGRepoCreateInsertsNewPersona(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	p := Persona{
		ScholarshipID: 7,
		Name:          "The Builder",
		Tone:          "Determined",
		Weights:       Weights{"Academics": 0.5, "Leadership": 0.5},
		Rationale:     "r",
	}

	mock.ExpectQuery("INSERT INTO personas").
		WithArgs(p.ScholarshipID, p.Name, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), 1).
		WillReturnRows(personaRows(t, Persona{ID: 3, ScholarshipID: 7, Name: p.Name, Tone: p.Tone, Rationale: p.Rationale, Version: 1}))

	created, inserted, err := repo.Create(context.Background(), p)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !inserted {
		t.Fatal("inserted = false")
	}
	if created.ID != 3 || created.Weights["Academics"] != 0.5 {
		t.Fatalf("unexpected persona: %+v", created)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoCreateReturnsExistingOnConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	p := Persona{ScholarshipID: 7, Name: "The Builder", Weights: Weights{"Academics": 1}}

	// ON CONFLICT DO NOTHING yields no row; the repo falls back to the
	// existing persona for the scholarship.
	mock.ExpectQuery("INSERT INTO personas").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "scholarship_id", "persona_name", "tone", "weights", "rationale", "version", "created_at",
		}))
	mock.ExpectQuery("SELECT (.+) FROM personas").
		WithArgs(int64(7)).
		WillReturnRows(personaRows(t, Persona{ID: 1, ScholarshipID: 7, Name: "Existing", Version: 1}))

	existing, inserted, err := repo.Create(context.Background(), p)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if inserted {
		t.Fatal("inserted = true on conflict")
	}
	if existing.ID != 1 || existing.Name != "Existing" {
		t.Fatalf("unexpected persona: %+v", existing)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByScholarshipNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT (.+) FROM personas").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "scholarship_id", "persona_name", "tone", "weights", "rationale", "version", "created_at",
		}))

	if _, err := repo.GetByScholarship(context.Background(), 42); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

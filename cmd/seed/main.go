package main

// Seed demo scholarships and student profiles into the database:
//   go run ./cmd/seed

import (
	"context"
	"log"
	"os"

	"scholarlens-backend/internal/profiles"
	"scholarlens-backend/internal/scholarships"
	"scholarlens-backend/internal/shared/config"
	"scholarlens-backend/internal/shared/storage/db"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		log.Printf("failed to connect database: %v", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		log.Printf("failed to run migrations: %v", err)
		os.Exit(1)
	}

	scholarshipRepo := &scholarships.PGRepo{DB: sqlDB}
	existing, err := scholarshipRepo.List(ctx)
	if err != nil {
		log.Printf("failed to list scholarships: %v", err)
		os.Exit(1)
	}
	if len(existing) > 0 {
		log.Printf("database already has %d scholarships, skipping seed", len(existing))
		return
	}

	for _, s := range scholarships.DemoScholarships() {
		s.ID = 0
		id, err := scholarshipRepo.Create(ctx, s)
		if err != nil {
			log.Printf("failed to seed scholarship %q: %v", s.Name, err)
			os.Exit(1)
		}
		log.Printf("seeded scholarship %d: %s", id, s.Name)
	}

	profileRepo := &profiles.PGRepo{DB: sqlDB}
	for _, p := range profiles.DemoProfiles() {
		created, err := profileRepo.Create(ctx, p)
		if err != nil {
			log.Printf("failed to seed profile %q: %v", p.Name, err)
			os.Exit(1)
		}
		log.Printf("seeded student profile %d: %s", created.ID, created.Name)
	}
}

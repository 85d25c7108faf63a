package scholarships

// DemoScholarships are the fixtures loaded in database-less mode so every
// workflow can be exercised without seeding.
func DemoScholarships() []Scholarship {
	return []Scholarship{
		{
			ID:           1,
			Name:         "Future Innovators STEM Scholarship",
			Organization: "TechForward Foundation",
			Description: "Awarded to students who demonstrate exceptional creativity and " +
				"initiative in science, technology, engineering, or mathematics. We look " +
				"for founders of clubs, builders of projects, and leaders who bring new " +
				"ideas to their communities.",
			Criteria: "Minimum 3.5 GPA, demonstrated STEM project work, leadership experience",
			Amount:   10000,
		},
		{
			ID:           2,
			Name:         "Community Impact Award",
			Organization: "Horizon Civic Trust",
			Description: "Supports students with a sustained record of volunteer service and " +
				"community organizing. Academic excellence matters less here than the " +
				"depth and durability of the applicant's local impact.",
			Criteria: "100+ volunteer hours, two community references",
			Amount:   5000,
		},
		{
			ID:           3,
			Name:         "First-Generation Achievers Grant",
			Organization: "Pathway Education Fund",
			Description: "For first-generation college students who balance strong academics " +
				"with financial need. Preference for applicants who articulate clear " +
				"educational and career goals despite economic hardship.",
			Criteria: "First-generation college student, demonstrated financial need",
			Amount:   7500,
		},
	}
}

// SeedDemo loads the demo fixtures.
func (r *MemoryRepo) SeedDemo() {
	r.Seed(DemoScholarships()...)
}

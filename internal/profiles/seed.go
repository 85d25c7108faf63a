package profiles

func float64Ptr(v float64) *float64 { return &v }

// DemoProfiles are the fixtures loaded in database-less mode.
func DemoProfiles() []StudentProfile {
	return []StudentProfile{
		{
			Name:       "Maya Chen",
			Email:      "maya.chen@example.edu",
			GPA:        float64Ptr(3.85),
			Activities: []string{"Robotics club president", "Math tutoring", "Hackathon organizer"},
			Achievements: []string{
				"Founded school robotics team, grew to 40 members",
				"Organized regional STEM workshop for 200 middle schoolers",
			},
			Goals:         "Study computer engineering and build assistive technology for people with motor impairments.",
			Skills:        []string{"Python", "Leadership", "Public Speaking"},
			ProfileSource: SourceManual,
		},
		{
			Name:       "Jordan Avila",
			Email:      "jordan.avila@example.edu",
			GPA:        float64Ptr(3.40),
			Activities: []string{"Food bank volunteer", "Student council", "Youth soccer coach"},
			Achievements: []string{
				"Coordinated weekly meal service reaching 150 families",
				"Raised $8,000 for neighborhood community center",
			},
			Goals:         "Become a public health advocate focused on food security in underserved neighborhoods.",
			Skills:        []string{"Communication", "Teamwork", "Problem Solving"},
			ProfileSource: SourceManual,
		},
	}
}

// SeedDemo loads the demo fixtures.
func (r *MemoryRepo) SeedDemo() {
	for _, p := range DemoProfiles() {
		r.Seed(p)
	}
}

package personas

import "time"

// Traits is the fixed trait set every weight distribution ranges over.
var Traits = []string{
	"Academics",
	"Leadership",
	"Community",
	"Innovation",
	"FinancialNeed",
	"Research",
}

// Weights maps each trait to a non-negative weight. Normalized weights sum
// to 1.0 within tolerance.
type Weights map[string]float64

// Persona is a scholarship's inferred value system, cached one per
// scholarship.
type Persona struct {
	ID            int64
	ScholarshipID int64
	Name          string
	Tone          string
	Weights       Weights
	Rationale     string
	Version       int
	CreatedAt     time.Time
}

// Generic returns the fixed persona used when a baseline essay is generated
// without any scholarship-specific analysis.
func Generic() Persona {
	return Persona{
		Name: "Generic Scholar",
		Tone: "Professional and Academic",
		Weights: Weights{
			"Academics":     0.40,
			"Leadership":    0.20,
			"Community":     0.20,
			"Innovation":    0.10,
			"FinancialNeed": 0.05,
			"Research":      0.05,
		},
	}
}

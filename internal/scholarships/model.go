package scholarships

import "time"

// Scholarship is the substrate the persona workflow analyzes. Rows are
// treated as immutable by the workflows.
type Scholarship struct {
	ID           int64
	Name         string
	Organization string
	Description  string
	Criteria     string
	Amount       float64
	Deadline     *time.Time
	URL          string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

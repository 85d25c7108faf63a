package scholarships

import "errors"

// ErrNotFound is returned when a scholarship id does not resolve.
var ErrNotFound = errors.New("scholarship not found")

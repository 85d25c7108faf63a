package personas

import "errors"

// ErrNotFound is returned when no persona row exists for a scholarship.
var ErrNotFound = errors.New("persona not found")

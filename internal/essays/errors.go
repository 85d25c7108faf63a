package essays

import "errors"

// ErrNotFound indicates the requested essay does not exist.
var ErrNotFound = errors.New("essay not found")

// ErrUnknownType indicates an essay type outside the accepted tags.
var ErrUnknownType = errors.New("unknown essay type")

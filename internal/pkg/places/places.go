package places

import (
	"errors"
)

var (
	// ErrNotFound is returned when an explicitly referenced place id does not exist.
	ErrNotFound = errors.New("place not found")
	// ErrCityMismatch is returned when a resolved place belongs to a different
	// city than the one it was requested for.
	ErrCityMismatch = errors.New("place city does not match submission city")
	// ErrEmptyName is returned when the auto-resolve path is invoked without a name.
	ErrEmptyName = errors.New("place name is empty")
)

// Creation is an explicit request to create (or idempotently reuse) a place
// with a given canonical name.
type Creation struct {
	CanonicalName string
	Area          string
}

// Selection describes how a place should be resolved. Exactly one strategy
// applies, checked in order: explicit id, creation request, auto-resolve by
// name. Name doubles as the fallback canonical name when a creation request
// omits one.
type Selection struct {
	PlaceID *uint
	Create  *Creation
	Name    string
}

package seed

import (
	"fmt"

	"github.com/google/uuid"
)

// IDSource generates row identifiers.
type IDSource interface {
	NewID() string
}

// UUIDSource generates random version 4 UUIDs.
type UUIDSource struct{}

// NewID returns a new random UUID string.
func (UUIDSource) NewID() string {
	return uuid.New().String()
}

// SequentialSource generates deterministic UUID-shaped identifiers, for
// reproducible output in tests and dry runs.
type SequentialSource struct {
	next uint64
}

// NewID returns the next identifier in sequence.
func (s *SequentialSource) NewID() string {
	s.next++
	return fmt.Sprintf("00000000-0000-4000-8000-%012d", s.next)
}

package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// UUID allocates random RFC 4122 identifiers.
type UUID struct{}

// NewUUID creates a UUID allocator.
func NewUUID() *UUID {
	return &UUID{}
}

// NewID returns a fresh UUID string.
func (g *UUID) NewID() string {
	return uuid.NewString()
}

// Sequence allocates monotonically increasing identifiers with a prefix ("apt-1", "apt-2", ...).
// Unique within one process only.
type Sequence struct {
	prefix string
	next   atomic.Int64
}

// NewSequence creates a Sequence allocator.
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// NewID returns the next identifier in the sequence.
func (g *Sequence) NewID() string {
	return fmt.Sprintf("%s-%d", g.prefix, g.next.Add(1))
}

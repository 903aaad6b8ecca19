package hos

import (
	"fmt"

	"github.com/google/uuid"
)

// IDSource hands out violation identifiers. Identifiers must be unique
// within one report run; the engine asks for one per violation in append
// order, so a deterministic source yields reproducible reports.
type IDSource interface {
	NextID() string
}

type uuidSource struct{}

func (uuidSource) NextID() string { return uuid.NewString() }

// NewUUIDSource returns the production identifier source, random UUIDs.
func NewUUIDSource() IDSource {
	return uuidSource{}
}

// SequenceSource yields prefix-0001 style identifiers for deterministic
// tests and diffs. Not safe for concurrent use.
type SequenceSource struct {
	prefix string
	next   int
}

// NewSequenceSource starts a sequence at 1 with the given prefix.
func NewSequenceSource(prefix string) *SequenceSource {
	if prefix == "" {
		prefix = "v"
	}
	return &SequenceSource{prefix: prefix}
}

func (s *SequenceSource) NextID() string {
	s.next++
	return fmt.Sprintf("%s-%04d", s.prefix, s.next)
}

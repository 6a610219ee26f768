package testutil

import (
	"fmt"
	"sync"
)

// SequenceIDGenerator returns predetermined run ids in order, then falls back
// to "run-<n>" so tests can create any number of archive rows.
//
// Thread-safety: SequenceIDGenerator is safe for concurrent use via internal mutex.
type SequenceIDGenerator struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewSequenceIDGenerator creates a generator that returns ids in order.
//
// Example:
//
//	gen := NewSequenceIDGenerator("run-a", "run-b")
//	gen.Generate() // "run-a"
//	gen.Generate() // "run-b"
//	gen.Generate() // "run-3"
func NewSequenceIDGenerator(ids ...string) *SequenceIDGenerator {
	return &SequenceIDGenerator{ids: ids}
}

// Generate returns the next id.
func (g *SequenceIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.idx++
	if g.idx <= len(g.ids) {
		return g.ids[g.idx-1]
	}
	return fmt.Sprintf("run-%d", g.idx)
}

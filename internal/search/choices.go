// Package search implements the recursive, trie-walking backtracking
// solver: the heart of the system.
package search

import (
	"math/bits"
	"sort"

	"github.com/crossplay/backend/internal/xrand"
	"github.com/crossplay/backend/internal/xtrie"
)

// Heuristic selects how candidates at a cell are ordered before the
// branching cap is applied.
type Heuristic int

const (
	// HeuristicFrequency orders candidates by descending leaf-count
	// product, the default and generally the strongest pruning order.
	HeuristicFrequency Heuristic = iota
	// HeuristicRandom shuffles candidates with the RNG.
	HeuristicRandom
	// HeuristicNone leaves candidates in symbol-ascending order.
	HeuristicNone
)

// Choice is one (horizontal edge, vertical edge) candidate pair for a
// single cell.
type Choice struct {
	Hor, Ver     *xtrie.Edge
	leavesHi, leavesLo uint64 // populated only under HeuristicFrequency
	lensSum      int
}

// Buffer is the growable stack-shaped buffer of candidates shared
// across every recursion frame. Each frame appends onto the top,
// recurses through its slice, then truncates back to its own
// high-water mark on exit so no element is ever shared across sibling
// frames. Capacity only ever grows (monotonic high-water mark), mirroring
// the reference's realloc-on-demand choice array.
type Buffer struct {
	items []Choice
}

// NewBuffer returns an empty choice buffer.
func NewBuffer() *Buffer { return &Buffer{} }

// Len returns the current top-of-stack height.
func (b *Buffer) Len() int { return len(b.items) }

// Truncate resets the top-of-stack to n, reusing the underlying array.
func (b *Buffer) Truncate(n int) { b.items = b.items[:n] }

// Push appends a new candidate, computing the heuristic key eagerly
// only when h is HeuristicFrequency (the random and none orderings
// don't need it).
func (b *Buffer) Push(hor, ver *xtrie.Edge, h Heuristic) {
	c := Choice{Hor: hor, Ver: ver}
	if h == HeuristicFrequency {
		lo, hi := bits.Mul64(uint64(hor.RemainingLeaves), uint64(ver.RemainingLeaves))
		c.leavesHi, c.leavesLo = hi, lo
		c.lensSum = hor.LenMin + hor.LenMax + ver.LenMin + ver.LenMax
	}
	b.items = append(b.items, c)
}

// Slice returns the live candidates from lo (inclusive) to the current
// top of stack.
func (b *Buffer) Slice(lo int) []Choice { return b.items[lo:] }

// Order sorts or shuffles items in place according to h.
// HeuristicNone leaves enumeration (symbol-ascending) order untouched.
func Order(items []Choice, h Heuristic, rng *xrand.Source) {
	switch h {
	case HeuristicFrequency:
		sort.Slice(items, func(i, j int) bool { return less(items[j], items[i]) })
	case HeuristicRandom:
		for i := range items {
			j := rng.Uniform(len(items)-i) + i
			items[i], items[j] = items[j], items[i]
		}
	}
}

// less implements the frequency heuristic's total order: descending
// leaf-count product (compared as an overflow-safe 128-bit hi/lo pair),
// then descending (len_min+len_max) sum, then descending symbol.
func less(a, b Choice) bool {
	if a.leavesHi != b.leavesHi {
		return a.leavesHi < b.leavesHi
	}
	if a.leavesLo != b.leavesLo {
		return a.leavesLo < b.leavesLo
	}
	if a.lensSum != b.lensSum {
		return a.lensSum < b.lensSum
	}
	return a.Hor.Symbol < b.Hor.Symbol
}

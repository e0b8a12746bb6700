// Package xtrie implements the shared dictionary trie: an immutable-shape
// rooted tree over the uppercase alphabet plus a distinguished End symbol,
// with precomputed per-edge statistics used to prune the search.
package xtrie

import "sort"

// Symbol is a single trie transition label: either an uppercase letter
// ('A'..'Z') or the distinguished End terminator. End is given the zero
// value so it sorts before every letter, making "does this node have an
// End edge" an O(1) check on Edges[0].
type Symbol byte

// End represents "word boundary / black square" along an axis.
const End Symbol = 0

// Node is a trie node: an ordered sequence of edges, sorted ascending by
// symbol. All End edges in the trie share the single root node.
type Node struct {
	Edges []Edge
}

// Edge is a labelled transition in the dictionary trie — equivalently one
// letter position in some word, or the End transition that closes it.
type Edge struct {
	Symbol Symbol
	Child  *Node

	// RemainingLeaves is the number of distinct dictionary words still
	// usable through this edge; decremented when a word is committed
	// along an axis, incremented again on backtrack.
	RemainingLeaves int
	// LenMin, LenMax bound the length of words still reachable through
	// this edge. Both are 0 iff this is an End edge.
	LenMin int
	LenMax int
}

// Find does a binary search for symbol among node's sorted edges.
func (n *Node) Find(symbol Symbol) (*Edge, bool) {
	edges := n.Edges
	i := sort.Search(len(edges), func(i int) bool { return edges[i].Symbol >= symbol })
	if i < len(edges) && edges[i].Symbol == symbol {
		return &edges[i], true
	}
	return nil, false
}

// HasEnd reports whether node has an End edge. Because End sorts first,
// this is a constant-time check.
func (n *Node) HasEnd() bool {
	return len(n.Edges) > 0 && n.Edges[0].Symbol == End
}

// insert finds or creates the child edge for symbol at node, growing
// Edges unsorted (sorting happens once, after the whole dictionary has
// been loaded).
func (n *Node) insert(symbol Symbol, sharedRoot *Node) *Edge {
	for i := range n.Edges {
		if n.Edges[i].Symbol == symbol {
			return &n.Edges[i]
		}
	}
	var child *Node
	if symbol == End {
		child = sharedRoot
	} else {
		child = &Node{}
	}
	n.Edges = append(n.Edges, Edge{Symbol: symbol, Child: child})
	return &n.Edges[len(n.Edges)-1]
}

// Trie is the dictionary representation shared by both axes of the
// search. Root is owned once at the top level; every End edge anywhere
// in the trie borrows it rather than owning a copy (see DESIGN.md,
// "shared trie root with cycle back from End").
type Trie struct {
	Root *Node
	// Border is a synthetic top-level edge into Root, aggregated over
	// Root's edges by the same bottom-up pass as any other edge, except
	// that it adds no letter of its own: unlike other End-labelled edges
	// its LenMin/LenMax are not 0. Border.LenMax is the
	// maximum word length in the whole dictionary — used verbatim as
	// the "letter_root.len_max" quantity in the reserved-future-black
	// bookkeeping (see internal/search). Border is also the trie-side
	// half of every board border cell's hor/ver edge reference, so that
	// the first interior cell of each row/column reads from the root.
	Border Edge
}

// sortAndStat performs the single bottom-up pass described in §4.1: for
// every non-End edge, aggregate RemainingLeaves/LenMin/LenMax from its
// child's edges (which must already be aggregated), then sort the
// node's edges by symbol. End edges are leaves and keep whatever
// RemainingLeaves they were inserted with.
func sortAndStat(e *Edge) {
	if e.Symbol == End {
		return
	}
	node := e.Child
	for i := range node.Edges {
		sortAndStat(&node.Edges[i])
	}
	sort.Slice(node.Edges, func(i, j int) bool { return node.Edges[i].Symbol < node.Edges[j].Symbol })

	leaves, lenMin, lenMax := 0, -1, 0
	for i := range node.Edges {
		child := &node.Edges[i]
		leaves += child.RemainingLeaves
		if lenMin == -1 || child.LenMin < lenMin {
			lenMin = child.LenMin
		}
		if child.LenMax > lenMax {
			lenMax = child.LenMax
		}
	}
	e.RemainingLeaves = leaves
	e.LenMin = lenMin + 1
	e.LenMax = lenMax + 1
}

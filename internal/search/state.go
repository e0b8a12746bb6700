package search

import (
	"github.com/crossplay/backend/internal/xgrid"
	"github.com/crossplay/backend/internal/xrand"
	"github.com/crossplay/backend/internal/xtrie"
)

// Options is the bitmask of structural constraints a run may enable,
// mirroring the CLI's "options" stdin parameter.
type Options int

const (
	SymBlacks        Options = 1 << iota // 180° rotational symmetry of black squares
	ConnectedWhites                      // non-black region must stay 4-connected
	LinearBlacks                         // monotone black density across the sweep
)

func (o Options) has(flag Options) bool { return o&flag != 0 }

// Config holds the fixed parameters of one solve: everything parsed
// from the CLI's 8 stdin fields. The dictionary trie is passed to New
// separately.
type Config struct {
	Rows, Cols int
	BlacksMin  int
	BlacksMax  int // the configured ceiling; State.BlacksMax is the copy that tightens during search
	Heuristic  Heuristic
	ChoicesMax int // initial branching cap; raised by the outer driver
	Options    Options
	Seed       uint32
}

// State owns every mutable piece of a single solve: counters, the
// board, the shared trie, the choice buffer and the BFS scratch queue.
// It is threaded through the recursive search instead of living in
// file-scope globals, eliminating the aliasing the reference has
// between neighbouring cell pointers and the board array (see
// DESIGN.md, "process-wide mutable state").
type State struct {
	Cfg     Config
	Trie    *xtrie.Trie
	Board   *xgrid.Board
	RNG     *xrand.Source
	Choices *Buffer
	Queue   *xgrid.Queue

	// BlacksMax is the live, shrinking ceiling used by branch-and-bound:
	// it starts at Cfg.BlacksMax and is tightened to BlacksNow-1 every
	// time a solution is accepted (see SPEC_FULL.md §5 point 4).
	BlacksMax int

	BlacksNow          int // count of cells currently committed to Black
	BlacksForcedFuture int // lower bound on blacks still required, from committed runs' remaining lengths
	BlacksSymExcess    int // under symmetry, blacks whose twin hasn't been reached yet
	WhitesNow          int // count of non-black cells currently committed (only tracked under ConnectedWhites)
	UnknownCells       int // cells neither committed nor implied-by-symmetry yet

	// BlacksRatio is Cfg.BlacksMax/(Rows*Cols), precomputed once and
	// compared against the running black density under LinearBlacks.
	BlacksRatio float64

	Symmetric bool // 90°-dedup prefix flag (square boards only), save/restored per frame
	Overflow  bool // set when any frame's candidate count exceeded ChoicesMax this iteration

	BlacksInCol []int // per-column reserved-future-black count

	Reporter Reporter

	// wildcard stands in for the cross-axis word on a grid dimension of
	// size 1. A run that can only ever be one cell long is not a real
	// crossword entry (there is no "down" word in a single-row grid),
	// so that axis is given a permissive placeholder edge instead of
	// being matched against the dictionary trie: see checkLetter and
	// DESIGN.md, "degenerate single-row/single-column axis".
	wildcardNode xtrie.Node
	wildcardEnd  xtrie.Edge
	wildcard     xtrie.Edge
}

// wildcardLeaves is large enough that the nested nil-op decrement/
// increment pairs a degenerate axis performs across a full sweep (at
// most Cols, or Rows, deep) never drives it to zero.
const wildcardLeaves = 1 << 30

// New builds a fresh solver state for one outer-driver iteration. The
// board, trie, choice buffer and scratch queue are allocated once and
// reused across iterations (between iterations Reset rewinds the
// counters, sets the new ChoicesMax and clears Overflow, and Run reseeds
// the RNG with the same Cfg.Seed).
func New(cfg Config, trie *xtrie.Trie, reporter Reporter) *State {
	board := xgrid.NewBoard(cfg.Rows, cfg.Cols, &trie.Border)
	s := &State{
		Cfg:          cfg,
		Trie:         trie,
		Board:        board,
		RNG:          xrand.NewSource(cfg.Seed),
		Choices:      NewBuffer(),
		Queue:        xgrid.NewQueue(board),
		BlacksMax:    cfg.BlacksMax,
		UnknownCells: cfg.Rows * cfg.Cols,
		BlacksRatio:  float64(cfg.BlacksMax) / float64(cfg.Rows*cfg.Cols),
		Symmetric:    cfg.Rows == cfg.Cols,
		BlacksInCol:  make([]int, cfg.Cols),
		Reporter:     reporter,
	}
	s.wildcardEnd = xtrie.Edge{Symbol: xtrie.End, Child: trie.Root, RemainingLeaves: wildcardLeaves}
	s.wildcardNode = xtrie.Node{Edges: []xtrie.Edge{s.wildcardEnd}}
	// Symbol is set to a non-End sentinel (1 is never a letter, the
	// alphabet parsed by xtrie.ReadDictionary is 'A'..'Z') so pushIfAllowed's
	// End check never misreads the wildcard as a black candidate. LenMax
	// is set far past any real grid dimension so tryLetter's forced-
	// future-black bookkeeping (keyed off Ver.LenMax) never mistakes the
	// degenerate axis for a run that needs more rows than the grid has.
	s.wildcard = xtrie.Edge{Symbol: xtrie.Symbol(1), Child: &s.wildcardNode, RemainingLeaves: wildcardLeaves, LenMax: 1 << 30}
	return s
}

// Reset rewinds a State's counters to start a fresh outer-driver
// iteration at a wider ChoicesMax. It does not touch the board: every
// commit the engine makes during a solve is undone on backtrack along
// the very same recursive call, so by the time Solve returns the board
// is already back to Unknown everywhere, and each cell's first-visit
// Reporter trace is deliberately left sticky across iterations rather
// than replayed (see internal/search engine.go).
func (s *State) Reset(choicesMax int) {
	s.Cfg.ChoicesMax = choicesMax
	s.BlacksMax = s.Cfg.BlacksMax
	s.BlacksNow = 0
	s.BlacksForcedFuture = 0
	s.BlacksSymExcess = 0
	s.WhitesNow = 0
	s.UnknownCells = s.Cfg.Rows * s.Cfg.Cols
	s.Symmetric = s.Cfg.Rows == s.Cfg.Cols
	s.Overflow = false
	for i := range s.BlacksInCol {
		s.BlacksInCol[i] = 0
	}
	s.Choices.Truncate(0)
}

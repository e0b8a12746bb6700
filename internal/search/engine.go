package search

import (
	"errors"
	"fmt"

	"github.com/crossplay/backend/internal/xgrid"
	"github.com/crossplay/backend/internal/xtrie"
)

// ErrAsymmetricAccept is wrapped by accept() when a grid is accepted
// under SymBlacks but its black squares turn out not to be 180°
// symmetric — an engine bug, never an expected outcome of a correct
// search, surfaced instead of silently reporting a bad solution.
var ErrAsymmetricAccept = errors.New("accepted grid is not 180-symmetric under SymBlacks")

// Engine is the recursive solver over cells — the heart of the system.
// It mutates State's counters and the board in place along a single
// active search path and reverses every mutation on backtrack.
type Engine struct {
	st *State
}

// NewEngine wraps state for a single solve.
func NewEngine(st *State) *Engine {
	return &Engine{st: st}
}

// Solve runs one full sweep from the top-left interior cell. It
// returns true once no further improvement on the black-square count
// is possible (BlacksMin leaves no room under the tightened BlacksMax),
// i.e. the search is fully done and should not be retried even at a
// wider branching cap.
func (e *Engine) Solve() (bool, error) {
	return e.solve(0, 0)
}

// solve is called once per cell of the row-major sweep: interior cells
// get full candidate enumeration, a row's end-of-row cell only checks
// the horizontal End continuation, a column's end-of-column cell only
// checks the vertical one, and the final corner accepts the grid.
func (e *Engine) solve(row, col int) (bool, error) {
	st := e.st
	cell := st.Board.At(row, col)
	final := row == st.Cfg.Rows && col == st.Cfg.Cols
	if !cell.Visited || final {
		cell.Visited = true
		st.Reporter.Trace(row, col, st.BlacksNow, st.BlacksForcedFuture, st.BlacksSymExcess, st.Board.Snapshot())
	}

	switch {
	case row < st.Cfg.Rows && col < st.Cfg.Cols:
		return e.solveInterior(row, col)
	case row < st.Cfg.Rows: // col == Cols: end of this row
		nodeHor := st.Board.At(row, col-1).HorEdge.Child
		return e.solveFinal(nodeHor, row+1, 0)
	case col < st.Cfg.Cols: // row == Rows: end of this column
		nodeVer := st.Board.At(row-1, col).VerEdge.Child
		return e.solveFinal(nodeVer, row, col+1)
	default: // row == Rows && col == Cols: the final corner
		return e.accept()
	}
}

// solveFinal requires that node has a usable End edge (the run ending
// here is complete) before continuing the sweep at (nextRow, nextCol).
// The shared root's own End edge is never decremented: it is reused by
// every zero-length run on the board, and its RemainingLeaves is seeded
// with enough slack (xtrie.Build) that it never needs tracking.
func (e *Engine) solveFinal(node *xtrie.Node, nextRow, nextCol int) (bool, error) {
	end, ok := node.Find(xtrie.End)
	if !ok || end.RemainingLeaves <= 0 {
		return false, nil
	}
	consumesLeaf := node != e.st.Trie.Root
	if consumesLeaf {
		end.RemainingLeaves--
	}
	done, err := e.solve(nextRow, nextCol)
	if consumesLeaf {
		end.RemainingLeaves++
	}
	return done, err
}

// accept is reached at the bottom-right corner once every row and
// column End requirement has been satisfied: the current grid is a
// complete solution. Branch-and-bound policy: tighten BlacksMax to
// BlacksNow-1, report the grid, and keep searching for something with
// strictly fewer blacks. Stop only once BlacksMin leaves no more room.
//
// Under SymBlacks the commit/revert bookkeeping in tryLetter/tryBlack
// is relied on to keep every black square's twin black too, rather
// than re-deriving it here; accept() only spot-checks that invariant
// against the board itself before reporting, since a violation would
// mean a bad grid is about to be handed to the caller as a solution.
func (e *Engine) accept() (bool, error) {
	st := e.st
	if st.Cfg.Options.has(SymBlacks) && !st.Board.Symmetric180() {
		return false, fmt.Errorf("%w", ErrAsymmetricAccept)
	}
	st.BlacksMax = st.BlacksNow - 1
	st.Reporter.Accepted()
	return st.Cfg.BlacksMin > st.BlacksMax, nil
}

// solveInterior is the full per-cell candidate enumeration, ordering,
// branching-cap enforcement, and the commit/recurse/revert cycle for
// both letter and black candidates.
func (e *Engine) solveInterior(row, col int) (bool, error) {
	st := e.st
	board := st.Board
	cell := board.At(row, col)

	nodeHor := board.At(row, col-1).HorEdge.Child
	nodeVer := board.At(row-1, col).VerEdge.Child

	symRow, symCol := board.Sym180(row, col)
	symIdx := board.Index(symRow, symCol)
	curIdx := board.Index(row, col)

	horMin, horMax, verMin, verMax := e.windows(row, col, symRow, symCol)

	sym := st.Cfg.Options.has(SymBlacks)
	if sym {
		switch {
		case symIdx > curIdx:
			st.UnknownCells -= 2
		case symIdx == curIdx:
			st.UnknownCells--
		}
	}

	lo := st.Choices.Len()
	e.enumerate(nodeHor, nodeVer, cell, horMax, horMin, verMax, verMin, row, col)
	items := st.Choices.Slice(lo)
	Order(items, st.Cfg.Heuristic, st.RNG)
	if len(items) > st.Cfg.ChoicesMax {
		items = items[:st.Cfg.ChoicesMax]
		st.Overflow = true
	}

	symBak := st.Symmetric
	blacksInColBak := st.BlacksInCol[col]
	connected := st.Cfg.Options.has(ConnectedWhites)
	rWhiteKnown, rWhite := !connected, true

	done := false
	var err error
	for i := range items {
		choice := items[i]
		if symBak && row > col {
			tr, tc := board.Transpose(row, col)
			st.Symmetric = choice.Hor.Symbol == board.At(tr, tc).Symbol
		}

		if choice.Hor.Symbol != xtrie.End {
			done, err = e.tryLetter(row, col, symRow, symCol, symIdx, curIdx, choice, &rWhiteKnown, &rWhite)
		} else {
			done, err = e.tryBlack(row, col, symRow, symCol, symIdx, curIdx, nodeHor, nodeVer, choice)
		}
		if err != nil {
			st.BlacksInCol[col] = blacksInColBak
			st.Symmetric = symBak
			st.Choices.Truncate(lo)
			return false, err
		}
		if done {
			break
		}
	}

	st.BlacksInCol[col] = blacksInColBak
	st.Symmetric = symBak
	st.Choices.Truncate(lo)

	if sym {
		switch {
		case symIdx > curIdx:
			st.UnknownCells += 2
		case symIdx == curIdx:
			st.UnknownCells++
		}
	}
	return done, nil
}

// windows computes the allowed-length window (horMin,horMax)/(verMin,
// verMax) for a cell. Under SymBlacks the window is derived from how
// far the 180°-twin's already-decided run already extends; otherwise
// it is the plain remaining-rows/remaining-cols distance to the
// border, tightened to an exact match once BlacksNow has reached the
// BlacksMax ceiling (forced-future blacks are not counted here).
func (e *Engine) windows(row, col, symRow, symCol int) (horMin, horMax, verMin, verMax int) {
	st := e.st
	board := st.Board
	if st.Cfg.Options.has(SymBlacks) {
		verMin, verMax = scanWindow(board, symRow, symCol, true)
		horMin, horMax = scanWindow(board, symRow, symCol, false)
		return
	}
	verMax = st.Cfg.Rows - row
	horMax = st.Cfg.Cols - col
	if st.BlacksNow < st.BlacksMax {
		verMin, horMin = 0, 0
	} else {
		verMin, horMin = verMax, horMax
	}
	return
}

// scanWindow walks back from the 180°-twin of the current cell along
// one axis: min is the distance to the first cell that is not already
// a committed (or reserved) white, max is the distance to the first
// black cell or the border.
func scanWindow(b *xgrid.Board, symRow, symCol int, vertical bool) (min, max int) {
	step := func(r, c int) (int, int) {
		if vertical {
			return r - 1, c
		}
		return r, c - 1
	}
	atBorder := func(r, c int) bool {
		if vertical {
			return r < -1
		}
		return c < -1
	}

	r, c := symRow, symCol
	for {
		k := b.KindAt(r, c)
		if k == xgrid.Unknown || k == xgrid.Black {
			break
		}
		nr, nc := step(r, c)
		if atBorder(nr, nc) {
			break
		}
		r, c = nr, nc
	}
	if vertical {
		min = symRow - r
	} else {
		min = symCol - c
	}
	for b.KindAt(r, c) != xgrid.Black {
		nr, nc := step(r, c)
		if atBorder(nr, nc) {
			break
		}
		r, c = nr, nc
	}
	if vertical {
		max = symRow - r
	} else {
		max = symCol - c
	}
	return
}

// checkLetter applies the remaining-leaves and remaining-length
// pruning: an edge is usable only if it still has a leaf to spare —
// two, if the horizontal and vertical walk happen to share the same
// node, since then one leaf can't serve both axes — and its reachable
// word lengths still fit the window.
//
// skipLen is set only on a 1x1 board, where both axes are degenerate
// at once and the fast path below can't hand either one off to
// st.wildcard: there the matched edge is asked to be simultaneously a
// whole word (length 1) on both axes, which no real dictionary edge
// ever reports, so the length check is skipped entirely rather than
// widened. It must never be set for an ordinary board merely because
// black placement has pinned a window to one cell; that is a real
// one-letter run and still needs a real dictionary match.
func checkLetter(nodeHor, nodeVer *xtrie.Node, e *xtrie.Edge, whitesMax, whitesMin int, skipLen bool) bool {
	leavesOK := (nodeHor != nodeVer && e.RemainingLeaves > 0) || e.RemainingLeaves > 1
	if !leavesOK {
		return false
	}
	if skipLen {
		return true
	}
	return e.LenMin <= whitesMax && e.LenMax >= whitesMin
}

// enumerate walks nodeHor and nodeVer's sorted edge lists in tandem,
// matching by symbol, and pushes every admissible (hor, ver) pair onto
// the choice buffer. nodeHor == nodeVer (both axes reading from the
// same node, e.g. the very first interior cell after two border
// blacks) takes a single-pass fast path.
//
// On a grid with Rows == 1 (or Cols == 1), nodeVer (resp. nodeHor) is
// the trie root at every single cell of the sweep, not just the first:
// there is no second row (resp. column) to carry an accumulated
// vertical (resp. horizontal) prefix forward. Matching the other
// axis's edge against the root's own children would wrongly demand
// that every letter of the real word also be some word's first
// letter, so that axis is driven off st.wildcard instead — see
// DESIGN.md, "degenerate single-row/single-column axis".
func (e *Engine) enumerate(nodeHor, nodeVer *xtrie.Node, cell *xgrid.Cell, horMax, horMin, verMax, verMin int, row, col int) {
	st := e.st
	board := st.Board
	verDegenerate := st.Cfg.Rows == 1
	horDegenerate := st.Cfg.Cols == 1

	if verDegenerate && !horDegenerate {
		// The wildcard never shares a leaf pool with nodeHor, so the
		// leaf check only ever needs one spare, not two: pass the
		// wildcard node itself as the "other axis" to guarantee
		// checkLetter sees it as distinct from nodeHor. A black-square
		// candidate (edge.Symbol == End) is matched against nodeVer's
		// own End edge instead of the wildcard: nodeVer is the border's
		// child here (the trie root, on every column of a one-row
		// board), which genuinely carries an End edge of its own, and
		// pushIfAllowed/tryBlack both key off the vertical edge's
		// Symbol to tell a black choice from a letter one.
		rootEnd, _ := nodeVer.Find(xtrie.End)
		for i := range nodeHor.Edges {
			edge := &nodeHor.Edges[i]
			if edge.Symbol == xtrie.End {
				if !checkLetter(nodeHor, nodeVer, edge, horMax, horMin, false) {
					continue
				}
				e.pushIfAllowed(cell, edge, rootEnd)
				continue
			}
			if !checkLetter(nodeHor, &st.wildcardNode, edge, horMax, horMin, false) {
				continue
			}
			e.pushIfAllowed(cell, edge, &st.wildcard)
		}
		return
	}
	if horDegenerate && !verDegenerate {
		rootEnd, _ := nodeHor.Find(xtrie.End)
		for i := range nodeVer.Edges {
			edge := &nodeVer.Edges[i]
			if edge.Symbol == xtrie.End {
				if !checkLetter(nodeHor, nodeVer, edge, verMax, verMin, false) {
					continue
				}
				e.pushIfAllowed(cell, rootEnd, edge)
				continue
			}
			if !checkLetter(&st.wildcardNode, nodeVer, edge, verMax, verMin, false) {
				continue
			}
			e.pushIfAllowed(cell, &st.wildcard, edge)
		}
		return
	}

	if nodeHor == nodeVer {
		// On a 1x1 board both axes are degenerate simultaneously: the
		// single matched edge can't be routed through the wildcard on
		// either side, so the length check is dropped for both calls
		// instead (see checkLetter). Every larger board takes the
		// normal length-checked path here, degenerate or not, since at
		// most one axis can still be size 1 when the other is > 1.
		skipLen := verDegenerate && horDegenerate
		for i := range nodeHor.Edges {
			edge := &nodeHor.Edges[i]
			if !checkLetter(nodeHor, nodeVer, edge, horMax, horMin, skipLen) {
				continue
			}
			if !checkLetter(nodeHor, nodeVer, edge, verMax, verMin, skipLen) {
				continue
			}
			e.pushIfAllowed(cell, edge, edge)
		}
		return
	}

	skipBelowDiagonal := st.Symmetric && row > col
	var symSymbol xtrie.Symbol
	if skipBelowDiagonal {
		tr, tc := board.Transpose(row, col)
		symSymbol = board.At(tr, tc).Symbol
	}

	j := 0
	for i := range nodeHor.Edges {
		horEdge := &nodeHor.Edges[i]
		if skipBelowDiagonal && horEdge.Symbol < symSymbol {
			continue
		}
		if !checkLetter(nodeHor, nodeVer, horEdge, horMax, horMin, false) {
			continue
		}
		for j < len(nodeVer.Edges) && nodeVer.Edges[j].Symbol < horEdge.Symbol {
			j++
		}
		if j >= len(nodeVer.Edges) || nodeVer.Edges[j].Symbol != horEdge.Symbol {
			continue
		}
		verEdge := &nodeVer.Edges[j]
		if !checkLetter(nodeHor, nodeVer, verEdge, verMax, verMin, false) {
			continue
		}
		e.pushIfAllowed(cell, horEdge, verEdge)
		j++
	}
}

// pushIfAllowed preserves a cell already forced by its 180°-twin: a
// ReservedWhite cell may only take a letter candidate, a Black one may
// only take the End candidate; an Unknown cell accepts either.
func (e *Engine) pushIfAllowed(cell *xgrid.Cell, horEdge, verEdge *xtrie.Edge) {
	if verEdge.Symbol != xtrie.End {
		if cell.Kind == xgrid.Unknown || cell.Kind == xgrid.ReservedWhite {
			e.st.Choices.Push(horEdge, verEdge, e.st.Cfg.Heuristic)
		}
		return
	}
	if cell.Kind == xgrid.Unknown || cell.Kind == xgrid.Black {
		e.st.Choices.Push(horEdge, verEdge, e.st.Cfg.Heuristic)
	}
}

// tryLetter commits one letter candidate, checks feasibility and
// (lazily, once per cell) white-connectivity, recurses, and reverts.
// rWhiteKnown/rWhite cache the connectivity verdict across every
// letter candidate tried at this same cell: which letter was chosen
// never changes whether the white region stays connected, only that
// this cell and (under symmetry) its twin turned white.
func (e *Engine) tryLetter(row, col, symRow, symCol, symIdx, curIdx int, choice Choice, rWhiteKnown, rWhite *bool) (bool, error) {
	st := e.st
	board := st.Board
	cell := board.At(row, col)
	twin := board.At(symRow, symCol)
	sym := st.Cfg.Options.has(SymBlacks)
	twinAhead := sym && symIdx > curIdx

	newBlacksInCol := 0
	if row+choice.Ver.LenMax < st.Cfg.Rows {
		letterRootLenMax := st.Trie.Border.LenMax
		newBlacksInCol = 1 + (st.Cfg.Rows-row-choice.Ver.LenMax-1)/(letterRootLenMax+1)
	}
	delta := newBlacksInCol - st.BlacksInCol[col]
	st.BlacksInCol[col] = newBlacksInCol
	st.BlacksForcedFuture += delta

	feasible := st.BlacksNow+st.BlacksForcedFuture <= st.BlacksMax &&
		(!sym || st.BlacksForcedFuture <= st.BlacksSymExcess+st.UnknownCells)

	done := false
	var err error
	if feasible {
		whitesDelta := 1
		if twinAhead {
			whitesDelta = 2
		}
		if st.Cfg.Options.has(ConnectedWhites) {
			st.WhitesNow += whitesDelta
			if !*rWhiteKnown {
				*rWhite = e.whitesConnected(row, col, symRow, symCol, symIdx, curIdx, st.WhitesNow, false)
				*rWhiteKnown = true
			}
		}

		if *rWhite {
			choice.Hor.RemainingLeaves--
			choice.Ver.RemainingLeaves--
			cell.Kind = xgrid.Letter
			cell.Symbol = choice.Hor.Symbol
			cell.HorEdge = choice.Hor
			cell.VerEdge = choice.Ver
			if twinAhead {
				twin.Kind = xgrid.ReservedWhite
			}

			done, err = e.solve(row, col+1)

			if twinAhead {
				twin.Kind = xgrid.Unknown
			}
			if sym && symIdx < curIdx {
				cell.Kind = xgrid.ReservedWhite
			} else {
				cell.Kind = xgrid.Unknown
			}
			choice.Ver.RemainingLeaves++
			choice.Hor.RemainingLeaves++
		}

		if st.Cfg.Options.has(ConnectedWhites) {
			st.WhitesNow -= whitesDelta
		}
	}

	st.BlacksForcedFuture -= delta
	st.BlacksInCol[col] -= delta
	return done, err
}

// tryBlack commits the End/End candidate (a black square), checks
// feasibility (including linear-density and white-connectivity gates),
// recurses, and reverts.
func (e *Engine) tryBlack(row, col, symRow, symCol, symIdx, curIdx int, nodeHor, nodeVer *xtrie.Node, choice Choice) (bool, error) {
	st := e.st
	board := st.Board
	cell := board.At(row, col)
	twin := board.At(symRow, symCol)
	sym := st.Cfg.Options.has(SymBlacks)
	twinAhead := sym && symIdx > curIdx
	twinBehind := sym && symIdx < curIdx

	st.BlacksNow++
	letterRootLenMax := st.Trie.Border.LenMax
	newBlacksInCol := (st.Cfg.Rows - row - 1) / (letterRootLenMax + 1)
	delta := newBlacksInCol - st.BlacksInCol[col]
	st.BlacksInCol[col] = newBlacksInCol
	st.BlacksForcedFuture += delta
	if twinAhead {
		st.BlacksSymExcess++
	} else if twinBehind {
		st.BlacksSymExcess--
	}

	feasible := st.BlacksNow+st.BlacksForcedFuture <= st.BlacksMax &&
		(!sym || (st.BlacksNow+st.BlacksSymExcess <= st.BlacksMax && st.BlacksForcedFuture <= st.BlacksSymExcess+st.UnknownCells)) &&
		(!st.Cfg.Options.has(LinearBlacks) || (row == 0 && col == 0) ||
			float64(st.BlacksNow)/float64(row*st.Cfg.Cols+col) <= st.BlacksRatio) &&
		(!st.Cfg.Options.has(ConnectedWhites) || e.whitesConnected(row, col, symRow, symCol, symIdx, curIdx, st.WhitesNow, true))

	done := false
	var err error
	if feasible {
		if nodeHor != st.Trie.Root {
			choice.Hor.RemainingLeaves--
		}
		if nodeVer != st.Trie.Root {
			choice.Ver.RemainingLeaves--
		}
		cell.HorEdge = choice.Hor
		cell.VerEdge = choice.Ver
		if !sym || symIdx >= curIdx {
			cell.Kind = xgrid.Black
		}
		if twinAhead {
			twin.Kind = xgrid.Black
		}

		done, err = e.solve(row, col+1)

		if twinAhead {
			twin.Kind = xgrid.Unknown
		}
		if !sym || symIdx >= curIdx {
			cell.Kind = xgrid.Unknown
		}
		if nodeVer != st.Trie.Root {
			choice.Ver.RemainingLeaves++
		}
		if nodeHor != st.Trie.Root {
			choice.Hor.RemainingLeaves++
		}
	}

	if twinAhead {
		st.BlacksSymExcess--
	} else if twinBehind {
		st.BlacksSymExcess++
	}
	st.BlacksForcedFuture -= delta
	st.BlacksInCol[col] -= delta
	st.BlacksNow--
	return done, err
}

// whitesConnected is the lazy connectivity check: it tentatively
// paints the cell (and, under symmetry with an as-yet-unvisited twin,
// the twin too) with the kind it would take on commit, runs a BFS for
// target reachable committed-white cells, then reverts the paint
// regardless of the result. blackening selects the paint/origin used
// for a black commit (paint Black, search from elsewhere on the board)
// versus a letter commit (paint ReservedWhite, search from this cell).
//
// Two cheap early-outs run before the BFS. First, a counter-only
// dominance check: while blacksNow <= blacksSymExcess+2, the unexplored
// mirrored half of the board still subsumes whatever asymmetry exists
// so far, so connectedness cannot yet be violated. Second, when the
// twin already resolved this pair earlier in the recursion (symIdx <
// curIdx), that ancestor frame already verified connectivity for the
// whole pair, so no BFS is needed here either.
func (e *Engine) whitesConnected(row, col, symRow, symCol, symIdx, curIdx, target int, blackening bool) bool {
	st := e.st
	board := st.Board
	sym := st.Cfg.Options.has(SymBlacks)
	if sym && st.BlacksNow <= st.BlacksSymExcess+2 {
		return true
	}
	if sym && symIdx < curIdx {
		return true
	}

	cell := board.At(row, col)
	twin := board.At(symRow, symCol)
	paintKind := xgrid.ReservedWhite
	if blackening {
		paintKind = xgrid.Black
	}

	origCell := cell.Kind
	cell.Kind = paintKind
	twinAhead := sym && symIdx > curIdx
	var origTwin xgrid.Kind
	if twinAhead {
		origTwin = twin.Kind
		twin.Kind = paintKind
	}

	var result bool
	if blackening {
		sr, sc, found := board.FirstNonBlack()
		if !found {
			result = true
		} else {
			result = st.Queue.Connected(board, board.Index(sr, sc), target)
		}
	} else {
		result = st.Queue.Connected(board, board.Index(row, col), target)
	}

	if twinAhead {
		twin.Kind = origTwin
	}
	cell.Kind = origCell
	return result
}

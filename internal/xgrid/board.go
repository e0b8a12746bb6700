// Package xgrid implements the bordered cell board the search sweeps
// over: an (R+2)x(C+2) row-major array with a one-cell-thick black
// border on every side, so boundary reads never need special-casing.
package xgrid

import "github.com/crossplay/backend/internal/xtrie"

// Kind is the display state of a cell.
type Kind byte

const (
	// Unknown means not yet decided.
	Unknown Kind = iota
	// Black is a committed black square (including every border cell).
	Black
	// ReservedWhite means this cell's 180°-rotational twin has already
	// committed to a letter, so this cell must become a letter too.
	ReservedWhite
	// Letter means this cell holds a committed dictionary letter.
	Letter
)

// Cell is one square of the bordered board.
type Cell struct {
	Row, Col int
	HorEdge  *xtrie.Edge // trie edge chosen so far along this row
	VerEdge  *xtrie.Edge // trie edge chosen so far along this column
	Kind     Kind
	Symbol   xtrie.Symbol // valid when Kind == Letter
	Visited  bool         // first-reached flag, used only for progress reporting
}

// Board is the row-major bordered cell array. Rows and Cols are the
// interior board dimensions; Stride is Cols+2. Interior cells use
// 0-based logical coordinates; the border occupies logical row/col -1
// and Rows/Cols respectively.
type Board struct {
	Rows, Cols, Stride int
	Cells              []Cell
}

// NewBoard allocates the bordered board and wires the top border row's
// VerEdge and the left border column's HorEdge to border (an edge into
// the trie root) so the first
// interior cell of every row/column reads from the trie root, exactly
// as a black-bordered sentinel row/column would.
func NewBoard(rows, cols int, border *xtrie.Edge) *Board {
	stride := cols + 2
	b := &Board{Rows: rows, Cols: cols, Stride: stride, Cells: make([]Cell, (rows+2)*stride)}

	for idx := range b.Cells {
		b.Cells[idx].Kind = Black
	}
	// top border row: VerEdge -> root, so row 0's VerEdge.Child reads root
	for c := 0; c < cols; c++ {
		b.at(-1, c).VerEdge = border
	}
	// left border column: HorEdge -> root, so col 0's HorEdge.Child reads root
	for r := 0; r < rows; r++ {
		b.at(r, -1).HorEdge = border
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := b.at(r, c)
			cell.Row, cell.Col = r, c
			cell.Kind = Unknown
		}
	}
	return b
}

// Index returns the flat index of the cell at logical (row, col), which
// may range over the border (row/col == -1 or Rows/Cols).
func (b *Board) Index(row, col int) int {
	return (row+1)*b.Stride + (col + 1)
}

func (b *Board) at(row, col int) *Cell {
	return &b.Cells[b.Index(row, col)]
}

// At returns the cell at logical (row, col), including border cells.
func (b *Board) At(row, col int) *Cell {
	return b.at(row, col)
}

// KindAt is a bounds-safe Kind read: out-of-range coordinates read as
// Black, matching the border's own Kind.
func (b *Board) KindAt(row, col int) Kind {
	if row < -1 || row > b.Rows || col < -1 || col > b.Cols {
		return Black
	}
	return b.at(row, col).Kind
}

// FirstNonBlack scans the interior in row-major order for the first
// non-black cell. Used as the BFS origin when checking connectivity
// around a cell that is itself about to become black.
func (b *Board) FirstNonBlack() (row, col int, ok bool) {
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if b.at(r, c).Kind != Black {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Snapshot renders the interior board for reporting, one row per
// string, with a single space between cells: a Letter cell shows its
// letter and every other cell (Black, Unknown, ReservedWhite) shows '#'.
func (b *Board) Snapshot() []string {
	rows := make([]string, b.Rows)
	for r := 0; r < b.Rows; r++ {
		buf := make([]byte, 0, b.Cols*2-1)
		for c := 0; c < b.Cols; c++ {
			if c > 0 {
				buf = append(buf, ' ')
			}
			cell := b.at(r, c)
			switch cell.Kind {
			case Letter:
				buf = append(buf, byte(cell.Symbol))
			default:
				buf = append(buf, '#')
			}
		}
		rows[r] = string(buf)
	}
	return rows
}

package xgrid

import (
	"testing"

	"github.com/crossplay/backend/internal/xtrie"
)

func newTestBoard(rows, cols int) *Board {
	border := &xtrie.Edge{Symbol: xtrie.End}
	return NewBoard(rows, cols, border)
}

func TestNewBoard_BorderIsBlack(t *testing.T) {
	b := newTestBoard(3, 3)
	for _, rc := range [][2]int{{-1, 0}, {3, 0}, {0, -1}, {0, 3}} {
		if got := b.KindAt(rc[0], rc[1]); got != Black {
			t.Errorf("border cell (%d,%d) kind = %v, want Black", rc[0], rc[1], got)
		}
	}
}

func TestNewBoard_InteriorStartsUnknown(t *testing.T) {
	b := newTestBoard(3, 3)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if got := b.At(r, c).Kind; got != Unknown {
				t.Errorf("interior cell (%d,%d) kind = %v, want Unknown", r, c, got)
			}
		}
	}
}

func TestKindAt_OutOfRangeReadsBlack(t *testing.T) {
	b := newTestBoard(2, 2)
	if got := b.KindAt(-5, -5); got != Black {
		t.Errorf("far out-of-range read = %v, want Black", got)
	}
}

func TestSym180(t *testing.T) {
	b := newTestBoard(3, 5)
	cases := []struct{ row, col, wantRow, wantCol int }{
		{0, 0, 2, 4},
		{2, 4, 0, 0},
		{1, 2, 1, 2}, // center of odd x odd is its own twin on that axis only if both odd; here rows odd cols odd too (3,5) -> (1,2) is exact center
	}
	for _, c := range cases {
		gr, gc := b.Sym180(c.row, c.col)
		if gr != c.wantRow || gc != c.wantCol {
			t.Errorf("Sym180(%d,%d) = (%d,%d), want (%d,%d)", c.row, c.col, gr, gc, c.wantRow, c.wantCol)
		}
	}
}

func TestTranspose(t *testing.T) {
	b := newTestBoard(4, 4)
	r, c := b.Transpose(1, 3)
	if r != 3 || c != 1 {
		t.Errorf("Transpose(1,3) = (%d,%d), want (3,1)", r, c)
	}
}

func TestSymmetric180(t *testing.T) {
	b := newTestBoard(3, 3)
	if !b.Symmetric180() {
		t.Error("an all-Unknown board should vacuously satisfy Symmetric180")
	}

	b.At(0, 0).Kind = Black
	if b.Symmetric180() {
		t.Error("a lone black square with no twin should not be symmetric")
	}
	b.At(2, 2).Kind = Black
	if !b.Symmetric180() {
		t.Error("black squares at mutual twins should be symmetric")
	}
}

func TestFirstNonBlack(t *testing.T) {
	b := newTestBoard(2, 2)
	b.At(0, 0).Kind = Black
	b.At(0, 1).Kind = Black
	row, col, ok := b.FirstNonBlack()
	if !ok || row != 1 || col != 0 {
		t.Errorf("FirstNonBlack = (%d,%d,%v), want (1,0,true)", row, col, ok)
	}
}

func TestFirstNonBlack_AllBlack(t *testing.T) {
	b := newTestBoard(1, 1)
	b.At(0, 0).Kind = Black
	if _, _, ok := b.FirstNonBlack(); ok {
		t.Error("expected ok=false when every interior cell is black")
	}
}

func TestSnapshot(t *testing.T) {
	b := newTestBoard(1, 3)
	b.At(0, 0).Kind = Letter
	b.At(0, 0).Symbol = 'C'
	b.At(0, 1).Kind = Letter
	b.At(0, 1).Symbol = 'A'
	b.At(0, 2).Kind = Letter
	b.At(0, 2).Symbol = 'T'

	rows := b.Snapshot()
	if len(rows) != 1 || rows[0] != "C A T" {
		t.Errorf("Snapshot = %v, want [\"C A T\"]", rows)
	}
}

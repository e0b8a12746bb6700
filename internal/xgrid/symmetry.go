package xgrid

// Sym180 returns the logical coordinates of the 180°-rotational twin of
// (row, col) over the full Rows x Cols interior: for a grid of size
// RxC, (row, col) mirrors to (R-1-row, C-1-col). The search consults
// this every time it commits a cell, to keep the black pattern
// rotationally invariant under SymBlacks.
func (b *Board) Sym180(row, col int) (int, int) {
	return b.Rows - 1 - row, b.Cols - 1 - col
}

// Transpose returns the coordinates of (row, col) reflected across the
// main diagonal. Used only by the 90° dedup prune on square boards,
// where a candidate below the diagonal is skipped because its
// transpose was already considered above it.
func (b *Board) Transpose(row, col int) (int, int) {
	return col, row
}

// Symmetric180 reports whether every committed black square has a
// black twin under Sym180. Only interior cells are compared, and any
// non-black kind (Unknown included) counts as not black; it is
// called from the search engine's accept() to spot-check a just-found
// solution under SymBlacks, not for use mid-search (where ReservedWhite
// cells stand in for a twin not yet reached).
func (b *Board) Symmetric180() bool {
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			sr, sc := b.Sym180(r, c)
			if (b.at(r, c).Kind == Black) != (b.at(sr, sc).Kind == Black) {
				return false
			}
		}
	}
	return true
}

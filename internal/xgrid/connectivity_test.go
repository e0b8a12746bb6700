package xgrid

import "testing"

// fillLetters commits every interior cell of b to a letter, so each one
// counts as a white cell for Connected.
func fillLetters(b *Board) {
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			b.At(r, c).Kind = Letter
		}
	}
}

func TestQueue_Connected_EmptyGrid(t *testing.T) {
	b := newTestBoard(3, 3)
	fillLetters(b)
	q := NewQueue(b)
	start := b.Index(0, 0)
	if !q.Connected(b, start, 9) {
		t.Error("an all-white 3x3 grid should be fully connected")
	}
}

func TestQueue_Connected_HorizontalWall(t *testing.T) {
	b := newTestBoard(5, 5)
	fillLetters(b)
	for c := 0; c < 5; c++ {
		b.At(2, c).Kind = Black
	}
	start := b.Index(0, 0)
	// 10 non-black cells lie above the wall (rows 0-1); the 10 below
	// (rows 3-4) are unreachable from there.
	if q := NewQueue(b); q.Connected(b, start, 20) {
		t.Error("a horizontal wall should disconnect the grid")
	}
	if q := NewQueue(b); !q.Connected(b, start, 10) {
		t.Error("the region above the wall should itself be connected and sized 10")
	}
}

func TestQueue_Connected_StartIsBlack(t *testing.T) {
	b := newTestBoard(2, 2)
	b.At(0, 0).Kind = Black
	q := NewQueue(b)
	if q.Connected(b, b.Index(0, 0), 0) != true {
		t.Error("starting on a black cell with target 0 should report connected")
	}
	if q.Connected(b, b.Index(0, 0), 3) {
		t.Error("starting on a black cell can never reach a positive target")
	}
}

func TestQueue_ReusedAcrossCalls(t *testing.T) {
	b := newTestBoard(3, 3)
	fillLetters(b)
	q := NewQueue(b)
	start := b.Index(0, 0)
	if !q.Connected(b, start, 9) {
		t.Fatal("first call should see a fully connected grid")
	}
	b.At(1, 1).Kind = Black
	if !q.Connected(b, start, 8) {
		t.Error("second call on the same queue should reflect the updated board")
	}
}

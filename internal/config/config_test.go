package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/crossplay/backend/internal/search"
)

func TestRead_Valid(t *testing.T) {
	in := strings.NewReader("5 5 0 6 0 40 3 1")
	p, err := Read(in)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if p.Rows != 5 || p.Cols != 5 || p.BlacksMax != 6 || p.ChoicesMax != 40 {
		t.Errorf("parsed = %+v, want rows=5 cols=5 blacksMax=6 choicesMax=40", p)
	}
	if !p.HasSeed || p.Seed != 1 {
		t.Errorf("HasSeed/Seed = %v/%d, want true/1", p.HasSeed, p.Seed)
	}
}

func TestRead_SeedOptional(t *testing.T) {
	in := strings.NewReader("3 3 0 0 0 10 0")
	p, err := Read(in)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if p.HasSeed {
		t.Error("expected HasSeed=false when the eighth field is absent")
	}
}

func TestRead_TooFewFields(t *testing.T) {
	in := strings.NewReader("3 3 0")
	_, err := Read(in)
	if !errors.Is(err, ErrBadParams) {
		t.Fatalf("err = %v, want wrapping ErrBadParams", err)
	}
}

func TestRead_NonNumericField(t *testing.T) {
	in := strings.NewReader("3 x 0 0 0 10 0")
	_, err := Read(in)
	if !errors.Is(err, ErrBadParams) {
		t.Fatalf("err = %v, want wrapping ErrBadParams", err)
	}
}

func TestRead_ColsLessThanRowsRejected(t *testing.T) {
	in := strings.NewReader("5 3 0 0 0 10 0")
	_, err := Read(in)
	if !errors.Is(err, ErrBadParams) {
		t.Fatalf("err = %v, want wrapping ErrBadParams for cols < rows", err)
	}
}

func TestRead_BlacksMaxLessThanBlacksMinRejected(t *testing.T) {
	in := strings.NewReader("5 5 4 2 0 10 0")
	_, err := Read(in)
	if !errors.Is(err, ErrBadParams) {
		t.Fatalf("err = %v, want wrapping ErrBadParams for blacks_max < blacks_min", err)
	}
}

func TestRead_BlacksMaxExceedsCellCountRejected(t *testing.T) {
	in := strings.NewReader("2 2 0 5 0 10 0")
	_, err := Read(in)
	if !errors.Is(err, ErrBadParams) {
		t.Fatalf("err = %v, want wrapping ErrBadParams for blacks_max > rows*cols", err)
	}
}

func TestRead_CellsMaxExceeded(t *testing.T) {
	in := strings.NewReader("300 300 0 0 0 10 0")
	_, err := Read(in)
	if !errors.Is(err, ErrBadParams) {
		t.Fatalf("err = %v, want wrapping ErrBadParams for rows*cols > cellsMax", err)
	}
}

func TestToSearchConfig_HeuristicResolution(t *testing.T) {
	cases := []struct {
		field int
		want  search.Heuristic
	}{
		{0, search.HeuristicFrequency},
		{1, search.HeuristicRandom},
		{2, search.HeuristicNone},
	}
	for _, c := range cases {
		p := Params{Rows: 1, Cols: 1, ChoicesMax: 1, Heuristic: c.field, HasSeed: true, Seed: 1}
		got := p.ToSearchConfig().Heuristic
		if got != c.want {
			t.Errorf("heuristic field %d -> %v, want %v", c.field, got, c.want)
		}
	}
}

func TestToSearchConfig_SeedPassthroughWhenPresent(t *testing.T) {
	p := Params{Rows: 1, Cols: 1, ChoicesMax: 1, HasSeed: true, Seed: 42}
	cfg := p.ToSearchConfig()
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42 (explicit seed must not be overwritten)", cfg.Seed)
	}
}

func TestToSearchConfig_SeedDerivedFromClockWhenAbsent(t *testing.T) {
	p := Params{Rows: 1, Cols: 1, ChoicesMax: 1, HasSeed: false}
	cfg := p.ToSearchConfig()
	if cfg.Seed == 0 {
		t.Error("expected a non-zero derived seed when the eighth field is absent")
	}
}

func TestToSearchConfig_OptionsAndBoundsCarryThrough(t *testing.T) {
	p := Params{
		Rows: 4, Cols: 4, BlacksMin: 1, BlacksMax: 3,
		ChoicesMax: 20, Options: int(search.SymBlacks | search.ConnectedWhites),
		HasSeed: true, Seed: 7,
	}
	cfg := p.ToSearchConfig()
	if cfg.Rows != 4 || cfg.Cols != 4 || cfg.BlacksMin != 1 || cfg.BlacksMax != 3 || cfg.ChoicesMax != 20 {
		t.Errorf("cfg = %+v, bounds did not carry through unchanged", cfg)
	}
	want := search.SymBlacks | search.ConnectedWhites
	if cfg.Options&want != want {
		t.Errorf("cfg.Options = %v, want both SymBlacks and ConnectedWhites set", cfg.Options)
	}
}

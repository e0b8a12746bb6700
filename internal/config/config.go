// Package config parses and validates the eight whitespace-separated
// stdin parameters the solver reads before it touches the dictionary
// file, mirroring the inline scanf/bounds checks the original C main
// performs by hand.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/crossplay/backend/internal/search"
)

// cellsMax is CELLS_MAX = 2^(4*word_size_in_bytes): the ceiling that
// keeps the overflow-safe hi/lo multiplication in the frequency
// heuristic exact for an int-sized word (4 bytes -> 2^16).
const cellsMax = 1 << (4 * 4)

// ErrBadParams is the sentinel wrapped by every stdin parsing/validation
// failure, so callers can distinguish configuration errors from search
// or I/O errors without string matching.
var ErrBadParams = errors.New("invalid grid settings")

// Params is the parsed and validated set of stdin parameters, struct
// tags checked with a package-level validator.New() instance.
type Params struct {
	Rows       int `validate:"gte=1"`
	Cols       int `validate:"gtefield=Rows"`
	BlacksMin  int `validate:"gte=0"`
	BlacksMax  int `validate:"gtefield=BlacksMin"`
	Heuristic  int
	ChoicesMax int `validate:"gte=1"`
	Options    int `validate:"gte=0"`
	Seed       uint32
	HasSeed    bool
}

var validate = validator.New()

// Read parses the eight stdin fields (the eighth, the RNG seed, is
// optional) and validates them. On any parse or validation failure it
// returns an error wrapping ErrBadParams.
func Read(r io.Reader) (Params, error) {
	var p Params
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	fields := []*int{&p.Rows, &p.Cols, &p.BlacksMin, &p.BlacksMax, &p.Heuristic, &p.ChoicesMax, &p.Options}
	for i, dst := range fields {
		v, err := scanInt(sc)
		if err != nil {
			return Params{}, fmt.Errorf("%w: field %d: %v", ErrBadParams, i+1, err)
		}
		*dst = v
	}
	if seed, err := scanInt(sc); err == nil {
		p.Seed = uint32(seed)
		p.HasSeed = true
	}

	if err := validate.Struct(p); err != nil {
		return Params{}, fmt.Errorf("%w: %v", ErrBadParams, err)
	}
	if p.Rows*p.Cols > cellsMax {
		return Params{}, fmt.Errorf("%w: rows*cols %d exceeds %d", ErrBadParams, p.Rows*p.Cols, cellsMax)
	}
	if p.BlacksMax > p.Rows*p.Cols {
		return Params{}, fmt.Errorf("%w: blacks_max %d exceeds cell count %d", ErrBadParams, p.BlacksMax, p.Rows*p.Cols)
	}
	return p, nil
}

func scanInt(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	var v int
	_, err := fmt.Sscanf(sc.Text(), "%d", &v)
	return v, err
}

// ToSearchConfig translates the parsed parameters into a search.Config,
// resolving heuristic and options the way spec §6 lays them out
// (heuristic is its own field, not an options bit) and deriving the RNG
// seed from wall-clock time when the optional eighth field is absent.
func (p Params) ToSearchConfig() search.Config {
	heuristic := search.HeuristicNone
	switch {
	case p.Heuristic == 0:
		heuristic = search.HeuristicFrequency
	case p.Heuristic == 1:
		heuristic = search.HeuristicRandom
	}

	seed := p.Seed
	if !p.HasSeed {
		seed = uint32(time.Now().Unix())
	}

	return search.Config{
		Rows:       p.Rows,
		Cols:       p.Cols,
		BlacksMin:  p.BlacksMin,
		BlacksMax:  p.BlacksMax,
		Heuristic:  heuristic,
		ChoicesMax: p.ChoicesMax,
		Options:    search.Options(p.Options),
		Seed:       seed,
	}
}

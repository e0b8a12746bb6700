package xtrie

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrBadAlphabet is returned when a dictionary line contains a character
// that is neither a letter nor a line break ('\n' or '\r').
var ErrBadAlphabet = errors.New("dictionary contains a character outside the accepted alphabet")

// ErrUnterminatedWord is returned when the dictionary file ends mid-word
// (no trailing newline after the final word).
var ErrUnterminatedWord = errors.New("unexpected end of dictionary: final word is unterminated")

// ErrWordTooLong is returned when a word is longer than the number of
// columns, which makes it impossible to place along either axis.
var ErrWordTooLong = errors.New("dictionary word longer than the column count")

// rootEndSeedSlack is the additive slack used to size the root End edge's
// RemainingLeaves so it is never exhausted during a single search. See
// SPEC_FULL.md §5 point 3 and §6: the bound 2*blacksMax+rows+cols is the
// one spec.md itself proposes as sufficient.
func rootEndSeedSlack(blacksMax, rows, cols int) int {
	return 2*blacksMax + rows + cols
}

// Build constructs the dictionary trie from a word list (duplicates are
// absorbed). blacksMax, rows and cols parameterize the root End edge
// seed and the maximum acceptable word length. Build fails if a word is
// longer than cols.
func Build(words []string, rows, cols, blacksMax int) (*Trie, error) {
	root := &Node{}
	for _, w := range words {
		if len(w) > cols {
			return nil, fmt.Errorf("%w: %q (%d > %d)", ErrWordTooLong, w, len(w), cols)
		}
		node := root
		for i := 0; i < len(w); i++ {
			edge := node.insert(Symbol(w[i]), root)
			node = edge.Child
		}
		end := node.insert(End, root)
		if end.RemainingLeaves == 0 {
			end.RemainingLeaves = 1
		}
	}

	if blacksMax > 0 {
		if _, ok := root.Find(End); !ok {
			end := root.insert(End, root)
			end.RemainingLeaves = rootEndSeedSlack(blacksMax, rows, cols)
		}
	}

	// sortAndStat treats every End-labelled edge as a leaf, so the pass is
	// run through a letter-labelled stand-in for Border; the extra letter
	// that stand-in counts is taken back off its lengths.
	agg := Edge{Symbol: 'A', Child: root}
	sortAndStat(&agg)
	t := &Trie{Root: root}
	t.Border = Edge{Symbol: End, Child: root, RemainingLeaves: agg.RemainingLeaves, LenMin: agg.LenMin - 1, LenMax: agg.LenMax - 1}
	return t, nil
}

// ReadDictionary reads a plain-text, one-word-per-line dictionary. Lower
// case letters are upper-cased. A line whose length is rows or cols is
// accepted unconditionally; lengths strictly between rows and cols are
// accepted only when blacksMax > 0 (a word of intermediate length can
// only ever fill a run bounded by black squares). Any other character
// aborts the read with the offending line number. A final unterminated
// word (no trailing newline) is an error.
func ReadDictionary(r io.Reader, rows, cols, blacksMax int) ([]string, error) {
	br := bufio.NewReader(r)
	var words []string
	var cur strings.Builder
	line := 1

	flush := func() error {
		if cur.Len() == 0 {
			return nil
		}
		w := cur.String()
		cur.Reset()
		n := len(w)
		if (blacksMax > 0 && n <= cols) || n == rows || n == cols {
			words = append(words, w)
		}
		return nil
	}

	for {
		c, _, err := br.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		upper := toUpperASCII(c)
		switch {
		case upper >= 'A' && upper <= 'Z':
			cur.WriteRune(upper)
		case c == '\n':
			if err := flush(); err != nil {
				return nil, err
			}
			line++
		case c == '\r':
			// tolerate CRLF line endings without treating \r as data
		default:
			return nil, fmt.Errorf("%w: invalid character %q in dictionary on line %d", ErrBadAlphabet, c, line)
		}
	}
	if cur.Len() > 0 {
		return nil, fmt.Errorf("%w (line %d)", ErrUnterminatedWord, line)
	}
	return words, nil
}

func toUpperASCII(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

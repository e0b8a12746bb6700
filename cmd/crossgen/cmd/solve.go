package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/crossplay/backend/internal/config"
	"github.com/crossplay/backend/internal/search"
	"github.com/crossplay/backend/internal/xio"
	"github.com/crossplay/backend/internal/xtrie"
)

// runSolve is the root command's RunE: it reads the eight stdin
// parameters, loads and builds the dictionary trie, then drives the
// outer iterative-deepening search, printing CHOICES/CELL/BLACK
// SQUARES/SOLUTION FOUND records to stdout as it goes.
func runSolve(cmd *cobra.Command, args []string) error {
	dictPath := args[0]

	params, err := config.Read(os.Stdin)
	if err != nil {
		return err
	}
	if seedFlag >= 0 {
		params.Seed = uint32(seedFlag)
		params.HasSeed = true
	}
	cfg := params.ToSearchConfig()

	if verbosity > 0 {
		log.Printf("grid %dx%d, blacks [%d,%d], choices_max=%d, options=%d",
			cfg.Rows, cfg.Cols, cfg.BlacksMin, cfg.BlacksMax, cfg.ChoicesMax, cfg.Options)
	}

	f, err := os.Open(dictPath)
	if err != nil {
		return fmt.Errorf("could not open the dictionary: %w", err)
	}
	defer f.Close()

	words, err := xtrie.ReadDictionary(f, cfg.Rows, cfg.Cols, cfg.BlacksMax)
	if err != nil {
		return err
	}
	if verbosity > 0 {
		log.Printf("loaded %d dictionary word(s)", len(words))
	}

	trie, err := xtrie.Build(words, cfg.Rows, cfg.Cols, cfg.BlacksMax)
	if err != nil {
		return err
	}

	xio.NewRunID()

	reporter := xio.StdoutReporter(os.Stdout)
	st := search.New(cfg, trie, reporter)
	return search.Run(st)
}

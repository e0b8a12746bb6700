package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	verbosity  int
	seedFlag   int64
)

// rootCmd is the whole CLI: crossgen takes exactly one positional
// argument, the dictionary path, and reads its grid parameters from
// stdin. There is no subcommand tree; a single-purpose solver doesn't
// need one.
var rootCmd = &cobra.Command{
	Use:   "crossgen <dictionary>",
	Short: "Constraint-satisfying crossword grid generator",
	Long: `crossgen fills a grid from a dictionary file using constraint propagation,
branch-and-bound minimization of black squares, and iterative deepening
over the per-cell branching factor.

Grid parameters (rows, cols, blacks_min, blacks_max, heuristic,
choices_max, options, and an optional RNG seed) are read as
whitespace-separated fields from standard input.`,
	Version: version,
	Args:    cobra.ExactArgs(1),
	RunE:    runSolve,
}

// Execute runs the root command. Called once by main.main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(loadEnv)
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0, "verbosity level (0=errors only, 1=info, 2=debug)")
	rootCmd.PersistentFlags().Int64Var(&seedFlag, "seed", -1, "override the RNG seed (defaults to CROSSGEN_SEED, then the stdin field, then wall-clock time)")
}

// loadEnv loads a .env file if present, falling through to the process
// environment otherwise, the way cmd/server does it. CROSSGEN_VERBOSITY
// defaults verbosity when the flag was left at zero, so a deployment
// can set it once in the environment instead of on every invocation.
func loadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}
	if verbosity == 0 {
		if v := os.Getenv("CROSSGEN_VERBOSITY"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				verbosity = n
			}
		}
	}
	if seedFlag < 0 {
		if s := os.Getenv("CROSSGEN_SEED"); s != "" {
			if n, err := strconv.ParseInt(s, 10, 64); err == nil {
				seedFlag = n
			}
		}
	}
	if verbosity > 0 {
		fmt.Fprintf(os.Stderr, "verbosity level: %d\n", verbosity)
	}
}

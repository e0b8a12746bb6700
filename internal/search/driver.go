package search

// Run drives repeated solves of st, widening the per-cell branching cap
// by one after every iteration that overflowed it without the search
// being done (grids may already have been accepted in that iteration),
// until either a run completes without overflowing or
// the branch-and-bound ceiling rules out any further improvement.
//
// Each iteration reseeds the RNG from Cfg.Seed so HeuristicRandom runs
// are reproducible across widened-cap retries, matching a fresh
// top-of-sweep search rather than resuming mid-tree.
func Run(st *State) error {
	choicesMax := st.Cfg.ChoicesMax
	for {
		st.Reset(choicesMax)
		st.RNG.Seed(st.Cfg.Seed)
		st.Reporter.Choices(choicesMax)

		engine := NewEngine(st)
		done, err := engine.Solve()
		if err != nil {
			return err
		}
		if done || !st.Overflow {
			break
		}
		choicesMax++
	}
	return nil
}

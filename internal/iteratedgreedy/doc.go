// Package iteratedgreedy implements the metaheuristic outer loop: repeated
// cycles of partial deconstruction and greedy reconstruction, accepting any
// result at least as good as the best seen so far and otherwise rolling
// back. Two deconstruction strategies compete for selection via an adaptive
// bandit that tracks an exponentially decayed reward score per strategy.
//
// Run owns no goroutines; it loops synchronously until ctx is done, checking
// cancellation once per iteration (deconstruction and reconstruction are
// themselves not interruptible mid-pass, matching the original solver's
// once-per-iteration SIGTERM check).
package iteratedgreedy

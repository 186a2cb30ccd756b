package domgraph

import "fmt"

// Debug gates the internal assertions in this package's mutation helpers
// (reached from internal/reduce through MarkRemoved and DeleteSlot),
// mirroring the original solver's assertions compiled out under NDEBUG. Tests leave it at its default of
// true; a production build that wants the original's release-mode
// behavior can set domgraph.Debug = false before calling into the solver.
var Debug = true

// assertf panics with a formatted message if cond is false and Debug is
// enabled. An invariant violation is a bug, not a recoverable condition —
// per spec, it is fatal.
func assertf(cond bool, format string, args ...interface{}) {
	if Debug && !cond {
		panic(fmt.Sprintf(format, args...))
	}
}

package reduce

import (
	"time"

	"github.com/katalvlaran/domset/internal/domgraph"
)

// Budgets bounds how long each reduction phase is allowed to keep running.
// Both are measured from the moment Reduce is called.
type Budgets struct {
	// Total bounds the simple rules, Rule 1 and Rule 2; once it elapses,
	// all three are skipped for the remainder of the run. The redundancy
	// sweep keeps running until 1.1 × Total.
	Total time.Duration
	// Rule2 bounds Rule 2 specifically. Typically set shorter than Total,
	// since Rule 2's pairwise scan is quadratic in the worst case.
	Rule2 time.Duration
}

// clockCheckInterval is how many sweep steps pass between wall-clock
// samples. Calling time.Now() every iteration would dominate the cost of
// cheap steps; every 256 iterations matches the original solver's coarse
// sampling and keeps the overhead negligible relative to typical graph
// sizes.
const clockCheckInterval = 256

// Reduce repeatedly sweeps g's active vertices, applying the redundancy
// rule, Rule 1, and Rule 2 until a full pass makes no further progress (or
// the relevant budget runs out). It mutates g in place: reduced vertices are
// moved into g.Fixed or dropped entirely, and g.Active shrinks to the
// surviving kernel.
//
// Reduce owns no goroutines and performs no I/O; it runs to completion (or
// budget exhaustion) synchronously.
func Reduce(g *domgraph.Graph, b Budgets) {
	start := time.Now()
	deadlineTotal := start.Add(b.Total)
	deadlineRule2 := start.Add(b.Rule2)
	deadlineRedundant := start.Add(time.Duration(float64(b.Total) * 1.1))

	timeRemainingTotal := true
	timeRemainingRule2 := true
	timeRemainingRedundant := true
	iterations := 0

	anotherLoop := true
	for anotherLoop {
		anotherLoop = false
		idx := 0
		for idx < g.Active.Len() {
			v := g.Active.Slice()[idx]

			if iterations%clockCheckInterval == 0 {
				now := time.Now()
				timeRemainingTotal = now.Before(deadlineTotal)
				timeRemainingRule2 = now.Before(deadlineRule2)
				timeRemainingRedundant = now.Before(deadlineRedundant)
			}
			iterations++

			if v.Removed {
				domgraph.DeleteSlot(g, idx)
				continue
			}
			if !timeRemainingRedundant {
				idx++
				continue
			}
			if v.DominatedBy > 0 && isRedundant(v) {
				domgraph.MarkRemoved(g, v)
				anotherLoop = true
				idx++
				continue
			}
			if !timeRemainingTotal {
				idx++
				continue
			}
			if rule1ReduceVertex(g, v) {
				anotherLoop = true
				idx++
				continue
			}

			if timeRemainingRule2 {
				i := 0
				for !v.Removed && i < v.Degree() {
					u1 := v.Neighbors[i]
					i++
					if rule2ReduceVertices(g, v, u1) {
						anotherLoop = true
						i--
						continue
					}
					for j := i; !v.Removed && j < v.Degree(); j++ {
						u2 := v.Neighbors[j]
						if !u1.Removed && !u2.Removed && rule2ReduceVertices(g, u1, u2) {
							anotherLoop = true
							i = 0
							break
						}
					}
				}
			}

			idx++
		}
	}
}

package iteratedgreedy

import (
	"context"

	"github.com/katalvlaran/domset/internal/domgraph"
	"github.com/katalvlaran/domset/internal/greedy"
	"github.com/katalvlaran/domset/internal/rng"
)

// snapshot holds a dense, positional copy of every active vertex's
// selection state, indexed by position in g.Active (stable for the
// duration of Run: no vertex is added to or deleted from the active graph
// once the metaheuristic starts).
type snapshot struct {
	inDS        []bool
	dominatedBy []uint32
}

func newSnapshot(n int) *snapshot {
	return &snapshot{inDS: make([]bool, n), dominatedBy: make([]uint32, n)}
}

func (s *snapshot) save(active []*domgraph.Vertex) {
	for i, v := range active {
		s.inDS[i] = v.InDS
		s.dominatedBy[i] = v.DominatedBy
	}
}

func (s *snapshot) restore(active []*domgraph.Vertex) {
	for i, v := range active {
		v.InDS = s.inDS[i]
		v.DominatedBy = s.dominatedBy[i]
	}
}

// Run executes the iterated-greedy metaheuristic against g's already
// reduced active kernel until ctx is canceled, then returns the size of the
// best dominating set found. Run sets the vertices' votes itself (via
// greedy.InitVotes) before the first construction. Every vertex's
// InDS must be false on entry; on return, g's live InDS/DominatedBy state
// is exactly the best solution found (never a worse in-flight attempt),
// so the caller can read g.Solution() immediately afterward.
//
// Options start from DefaultOptions and are applied in order, following
// the usual functional-options convention.
//
// Complexity per iteration: O((V + E) log V), dominated by the greedy
// reconstruction pass; deconstruction itself is linear (random) or bounded
// by opts.LocalDeconstructionCap (local).
func Run(ctx context.Context, g *domgraph.Graph, opt ...Option) int {
	opts := DefaultOptions()
	for _, o := range opt {
		o(&opts)
	}

	greedy.InitVotes(g)

	r := rng.NewSource(opts.Seed)
	marker := &queuedMarkerCounter{}
	b := newBandit(opts.MinStrategyProbability)

	active := g.Active.Slice()
	best := newSnapshot(len(active))

	currentSize := greedy.Construct(g)
	best.save(active)
	savedSize := currentSize

	for {
		select {
		case <-ctx.Done():
			return savedSize
		default:
		}

		usedLocal := r.Chance(b.probabilityLocal())
		if usedLocal {
			currentSize = localDeconstruction(g, opts.LocalDeconstructionCap, currentSize, r, marker)
		} else {
			currentSize = randomDeconstruction(g, opts.RandomRemovalProbability, currentSize, r)
		}
		currentSize = greedy.Construct(g)

		var reward float64
		if currentSize < savedSize {
			reward = opts.RewardImprovement
		} else if currentSize == savedSize {
			reward = opts.RewardEqual
		}
		b.reward(usedLocal, opts.ScoreDecay, reward)

		if currentSize <= savedSize {
			best.save(active)
			savedSize = currentSize
		} else {
			best.restore(active)
			currentSize = savedSize
		}
	}
}

// Package config loads the solver's tunable parameters from a TOML file,
// layering them over the built-in defaults used by internal/reduce and
// internal/iteratedgreedy.
package config

import (
	"time"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/domset/internal/iteratedgreedy"
	"github.com/katalvlaran/domset/internal/reduce"
)

// Tunables mirrors the metaheuristic and reduction knobs a user may want to
// adjust without recompiling, expressed in TOML-friendly primitive types
// (durations as seconds, not time.Duration, since TOML has no duration
// type).
type Tunables struct {
	Reduce struct {
		TotalBudgetSeconds float64 `toml:"total_budget_seconds"`
		Rule2BudgetSeconds float64 `toml:"rule2_budget_seconds"`
	} `toml:"reduce"`

	IteratedGreedy struct {
		LocalDeconstructionCap   int     `toml:"local_deconstruction_cap"`
		RandomRemovalProbability float64 `toml:"random_removal_probability"`
		MinStrategyProbability   float64 `toml:"min_strategy_probability"`
	} `toml:"iterated_greedy"`
}

// Default returns Tunables holding 13s total / 7.5s Rule 2 reduction budgets
// (internal/reduce has no defaults of its own) and the iterated-greedy
// values of iteratedgreedy.DefaultOptions.
func Default() Tunables {
	var t Tunables
	t.Reduce.TotalBudgetSeconds = 13.0
	t.Reduce.Rule2BudgetSeconds = 7.5
	ig := iteratedgreedy.DefaultOptions()
	t.IteratedGreedy.LocalDeconstructionCap = ig.LocalDeconstructionCap
	t.IteratedGreedy.RandomRemovalProbability = ig.RandomRemovalProbability
	t.IteratedGreedy.MinStrategyProbability = ig.MinStrategyProbability
	return t
}

// Load decodes path as TOML into Tunables, starting from Default() so any
// field the file omits keeps its built-in value.
func Load(path string) (Tunables, error) {
	t := Default()
	_, err := toml.DecodeFile(path, &t)
	return t, err
}

// ReduceBudgets converts the reduction section into reduce.Budgets.
func (t Tunables) ReduceBudgets() reduce.Budgets {
	return reduce.Budgets{
		Total: time.Duration(t.Reduce.TotalBudgetSeconds * float64(time.Second)),
		Rule2: time.Duration(t.Reduce.Rule2BudgetSeconds * float64(time.Second)),
	}
}

// IteratedGreedyOptions converts the metaheuristic section into a slice of
// iteratedgreedy.Option ready to pass to iteratedgreedy.Run, seeded
// separately by the caller since a seed is a run-time value, not a
// config-file value.
func (t Tunables) IteratedGreedyOptions(seed uint64) []iteratedgreedy.Option {
	return []iteratedgreedy.Option{
		iteratedgreedy.WithSeed(seed),
		iteratedgreedy.WithLocalDeconstructionCap(t.IteratedGreedy.LocalDeconstructionCap),
		iteratedgreedy.WithRandomRemovalProbability(t.IteratedGreedy.RandomRemovalProbability),
		iteratedgreedy.WithMinStrategyProbability(t.IteratedGreedy.MinStrategyProbability),
	}
}

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/domset/internal/config"
	"github.com/katalvlaran/domset/internal/dimacs"
	"github.com/katalvlaran/domset/internal/domgraph"
	"github.com/katalvlaran/domset/internal/iteratedgreedy"
	"github.com/katalvlaran/domset/internal/reduce"
)

// solveOpts holds the solve command's flags.
type solveOpts struct {
	in           string
	out          string
	configPath   string
	totalBudget  float64
	rule2Budget  float64
	seed         uint64
	seedWasSet   bool
	debugAsserts bool
}

func newSolveCmd() *cobra.Command {
	o := &solveOpts{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute a heuristic dominating set for a graph",
		Long: "Reads a DIMACS-style \"p ds N M\" instance, applies data-reduction " +
			"kernelization within --total-budget, then runs the iterated-greedy " +
			"metaheuristic until the context is canceled (Ctrl-C or SIGTERM).",
		RunE: func(cmd *cobra.Command, args []string) error {
			o.seedWasSet = cmd.Flags().Changed("seed")
			return runSolve(cmd.Context(), loggerFromContext(cmd.Context()), o)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&o.in, "in", "", "input file (default: stdin)")
	flags.StringVar(&o.out, "out", "", "output file (default: stdout)")
	flags.StringVar(&o.configPath, "config", "", "TOML tunables file (default: built-in defaults)")
	flags.Float64Var(&o.totalBudget, "total-budget", 0, "override reduce.total_budget_seconds")
	flags.Float64Var(&o.rule2Budget, "rule2-budget", 0, "override reduce.rule2_budget_seconds")
	flags.Uint64Var(&o.seed, "seed", 0, "metaheuristic RNG seed (default: derived from wall-clock time)")
	flags.BoolVar(&o.debugAsserts, "debug-asserts", true, "enable internal invariant assertions (disable for a release-mode speedup)")

	return cmd
}

func runSolve(ctx context.Context, logger *log.Logger, o *solveOpts) error {
	domgraph.Debug = o.debugAsserts

	tunables := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return fmt.Errorf("cli: loading config: %w", err)
		}
		tunables = loaded
	}
	if o.totalBudget > 0 {
		tunables.Reduce.TotalBudgetSeconds = o.totalBudget
	}
	if o.rule2Budget > 0 {
		tunables.Reduce.Rule2BudgetSeconds = o.rule2Budget
	}

	in, err := openInput(o.in)
	if err != nil {
		return err
	}
	defer in.Close()

	g, err := dimacs.Read(in)
	if err != nil {
		return fmt.Errorf("cli: reading instance: %w", err)
	}
	logger.Infof("parsed instance: n=%d m=%d", g.N, g.M)

	reduce.Reduce(g, tunables.ReduceBudgets())
	logger.Infof("reduced kernel: n=%d m=%d fixed=%d", g.N, g.M, len(g.Fixed))

	if g.N <= 3 {
		if g.N != 0 {
			// The time budget may have run out one rule short of fully
			// collapsing a tiny remainder; a brief final pass finishes it.
			reduce.Reduce(g, reduce.Budgets{Total: time.Second, Rule2: time.Second})
		}
	} else {
		seed := o.seed
		if !o.seedWasSet {
			seed = currentTimeSeed()
		}
		opts := tunables.IteratedGreedyOptions(seed)
		logger.Debugf("starting iterated greedy: seed=%d local_cap=%d", seed, tunables.IteratedGreedy.LocalDeconstructionCap)
		size := iteratedgreedy.Run(ctx, g, opts...)
		logger.Infof("finished: ds_size=%d total=%d", size, size+len(g.Fixed))
	}

	out, closeOut, err := openOutput(o.out)
	if err != nil {
		return err
	}
	defer closeOut()

	if err := dimacs.Write(out, g); err != nil {
		return fmt.Errorf("cli: writing solution: %w", err)
	}
	return nil
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cli: opening input: %w", err)
	}
	return f, nil
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cli: opening output: %w", err)
	}
	return f, f.Close, nil
}

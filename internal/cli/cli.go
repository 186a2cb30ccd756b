// Package cli implements the domset command-line interface: a single
// "solve" command that reads a dominating-set instance, reduces it within a
// time budget, constructs and repeatedly improves a solution until canceled,
// and writes the result. Verbose logging is handled with
// charmbracelet/log and attached to the command's context, matching the
// pattern used throughout this project's ambient tooling.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type ctxKey int

const loggerKey ctxKey = 0

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           level,
	})
}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// Execute builds the root command tree and runs it against ctx, reading
// arguments from os.Args.
func Execute(ctx context.Context) error {
	return execute(ctx, nil)
}

// execute builds the root command tree and runs it against ctx. When args
// is non-nil it overrides cobra's default of reading os.Args, letting tests
// drive the CLI without touching the process's real argument list.
func execute(ctx context.Context, args []string) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "domset",
		Short:        "Heuristic minimum dominating set solver",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newSolveCmd())
	if args != nil {
		root.SetArgs(args)
	}

	return root.ExecuteContext(ctx)
}

// currentTimeSeed derives a non-deterministic seed from wall-clock time,
// matching the original solver's time(NULL)-seeded RNG. Exposed as a var so
// tests can override it with a fixed value.
var currentTimeSeed = func() uint64 {
	return uint64(time.Now().UnixNano())
}

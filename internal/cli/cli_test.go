package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExecuteSolveEndToEnd(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.gr")
	out := filepath.Join(dir, "out.sol")
	require.NoError(t, os.WriteFile(in, []byte("p ds 5 4\n1 2\n2 3\n3 4\n4 5\n"), 0o644))

	restore := currentTimeSeed
	currentTimeSeed = func() uint64 { return 1 }
	defer func() { currentTimeSeed = restore }()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := execute(ctx, []string{"solve", "--in", in, "--out", out})
	require.NoError(t, err)

	contents, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(contents)), "\n")
	require.NotEmpty(t, lines)
}

func TestExecuteSolveRejectsMalformedInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bad.gr")
	require.NoError(t, os.WriteFile(in, []byte("not dimacs\n"), 0o644))

	err := execute(context.Background(), []string{"solve", "--in", in})
	require.Error(t, err)
}

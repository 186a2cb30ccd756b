package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/domset/internal/iteratedgreedy"
)

func TestDefaultMatchesPackageDefaults(t *testing.T) {
	d := Default()
	require.Equal(t, 13.0, d.Reduce.TotalBudgetSeconds)
	require.Equal(t, 7.5, d.Reduce.Rule2BudgetSeconds)
	require.Equal(t, 40, d.IteratedGreedy.LocalDeconstructionCap)
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tunables.toml")
	contents := "[reduce]\ntotal_budget_seconds = 5.0\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	tu, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 5.0, tu.Reduce.TotalBudgetSeconds)
	require.Equal(t, 7.5, tu.Reduce.Rule2BudgetSeconds) // untouched default
}

func TestReduceBudgetsConvertsSeconds(t *testing.T) {
	tu := Default()
	b := tu.ReduceBudgets()
	require.Equal(t, float64(13), b.Total.Seconds())
	require.Equal(t, float64(7.5), b.Rule2.Seconds())
}

func TestIteratedGreedyOptionsCarriesSeed(t *testing.T) {
	tu := Default()
	applied := iteratedgreedy.DefaultOptions()
	for _, opt := range tu.IteratedGreedyOptions(42) {
		opt(&applied)
	}
	require.Equal(t, uint64(42), applied.Seed)
	require.Equal(t, 40, applied.LocalDeconstructionCap)
}

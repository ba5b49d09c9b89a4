package rideconfig_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deride-go/rideshare/rideconfig"
)

func TestLoad_AppliesDefaultsWithoutFileOrEnv(t *testing.T) {
	clearEnv(t)

	cfg, err := rideconfig.Load()
	require.NoError(t, err)
	require.Equal(t, int64(200), cfg.CorridorRadius)
	require.Equal(t, rideconfig.TieBreakDeterministic, cfg.TieBreakMode)
	require.False(t, cfg.RNGSeedSet)
	require.False(t, cfg.SolverTimeLimitSSet)
}

func TestLoad_ReadsEnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("CORRIDOR_RADIUS", "75")
	t.Setenv("RNG_SEED", "42")
	t.Setenv("SOLVER_TIME_LIMIT_S", "12.5")
	t.Setenv("TIE_BREAK_MODE", "random")

	cfg, err := rideconfig.Load()
	require.NoError(t, err)
	require.Equal(t, int64(75), cfg.CorridorRadius)
	require.True(t, cfg.RNGSeedSet)
	require.Equal(t, int64(42), cfg.RNGSeed)
	require.True(t, cfg.SolverTimeLimitSSet)
	require.InDelta(t, 12.5, cfg.SolverTimeLimitS, 0.0001)
	require.Equal(t, rideconfig.TieBreakRandom, cfg.TieBreakMode)
}

func TestLoad_RejectsUnknownTieBreakMode(t *testing.T) {
	clearEnv(t)
	t.Setenv("TIE_BREAK_MODE", "chaotic")

	_, err := rideconfig.Load()
	require.Error(t, err)
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"CORRIDOR_RADIUS", "RNG_SEED", "SOLVER_TIME_LIMIT_S", "TIE_BREAK_MODE"} {
		require.NoError(t, os.Unsetenv(k))
	}
}

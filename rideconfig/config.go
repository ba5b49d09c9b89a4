package rideconfig

import (
	"fmt"

	"github.com/spf13/viper"
)

// TieBreakMode values recognized in the tie_break_mode option.
const (
	TieBreakDeterministic = "deterministic"
	TieBreakRandom        = "random"
)

const (
	keyCorridorRadius     = "CORRIDOR_RADIUS"
	keyRNGSeed            = "RNG_SEED"
	keySolverTimeLimitS   = "SOLVER_TIME_LIMIT_S"
	keyTieBreakMode       = "TIE_BREAK_MODE"
	defaultCorridorRadius = 200
)

// Config holds the module's recognized run-time options (spec.md §6).
type Config struct {
	// CorridorRadius bounds how far (in graph edge-weight units) a node may
	// sit from a driver's committed path and still count as "on route" for
	// threshold-0 deride eligibility. Default 200.
	CorridorRadius int64 `mapstructure:"CORRIDOR_RADIUS"`

	// RNGSeed seeds the tie-break sources cmd/rideshare builds (each variant
	// adds its own index). RNGSeedSet is false when the option was never
	// supplied; RNGSeed is then 0 and is still used as the seed.
	RNGSeed    int64
	RNGSeedSet bool

	// SolverTimeLimitS bounds the ILP branch-and-bound search per spec.md
	// §5's BudgetExceeded behavior. SolverTimeLimitSSet is false when the
	// option was never supplied, in which case the solver runs to
	// completion with no deadline.
	SolverTimeLimitS    float64
	SolverTimeLimitSSet bool

	// TieBreakMode is one of TieBreakDeterministic or TieBreakRandom.
	// Default TieBreakDeterministic.
	TieBreakMode string `mapstructure:"TIE_BREAK_MODE"`
}

// Load resolves Config from, in order of increasing precedence: built-in
// defaults, an optional .env-style config file in the current directory,
// then environment variables. A missing config file is tolerated — it is
// an optional override layer, not a requirement.
//
// Grounded on config.Load in shivamshaw23-Hintro/config/config.go: the same
// SetConfigName/SetConfigType/AddConfigPath/AutomaticEnv/SetDefault/
// ReadInConfig/Get* sequence, adapted to this module's four options instead
// of server/postgres/redis settings.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault(keyCorridorRadius, defaultCorridorRadius)
	v.SetDefault(keyTieBreakMode, TieBreakDeterministic)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("rideconfig: reading config file: %w", err)
		}
	}

	cfg := &Config{
		CorridorRadius: v.GetInt64(keyCorridorRadius),
		TieBreakMode:   v.GetString(keyTieBreakMode),
	}

	if v.IsSet(keyRNGSeed) {
		cfg.RNGSeed = v.GetInt64(keyRNGSeed)
		cfg.RNGSeedSet = true
	}
	if v.IsSet(keySolverTimeLimitS) {
		cfg.SolverTimeLimitS = v.GetFloat64(keySolverTimeLimitS)
		cfg.SolverTimeLimitSSet = true
	}

	if cfg.TieBreakMode != TieBreakDeterministic && cfg.TieBreakMode != TieBreakRandom {
		return nil, fmt.Errorf("rideconfig: %s must be %q or %q, got %q",
			keyTieBreakMode, TieBreakDeterministic, TieBreakRandom, cfg.TieBreakMode)
	}
	if cfg.CorridorRadius < 0 {
		return nil, fmt.Errorf("rideconfig: %s must be non-negative, got %d", keyCorridorRadius, cfg.CorridorRadius)
	}

	return cfg, nil
}

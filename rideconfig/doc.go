// Package rideconfig resolves the module's recognized configuration
// options (spec.md §6): corridor_radius, rng_seed, solver_time_limit_s and
// tie_break_mode, from an optional config file, environment variables and
// defaults, in that order of increasing precedence (viper's own
// precedence, unchanged).
//
// Grounded on config.Load in shivamshaw23-Hintro/config/config.go, the only
// Viper consumer anywhere in the retrieved example pack: SetDefault calls
// followed by a best-effort ReadInConfig and a typed Get* pass into a
// plain struct.
package rideconfig

// Package tiebreak provides the single injectable, seeded randomness source
// every assigner (deride, deridefair) draws its tie-breaks from. The core
// algorithms never reach into an ambient global RNG (spec.md §9) — they
// receive a *Source explicitly and call Pick, which returns the first
// candidate in deterministic mode and a uniform draw in random mode.
//
// Modeled on katalvlaran-lvlath/builder's builderConfig.rng *rand.Rand +
// functional-option pattern (WithSeed / WithRand), simplified to the two
// fields this domain actually needs: an RNG and a deterministic/random mode
// flag (spec.md §6's tie_break_mode option).
package tiebreak

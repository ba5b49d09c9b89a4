package tiebreak_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deride-go/rideshare/tiebreak"
)

func TestSource_DeterministicAlwaysPicksFirst(t *testing.T) {
	s := tiebreak.New(tiebreak.WithMode(tiebreak.Deterministic))
	for i := 0; i < 10; i++ {
		require.Equal(t, 0, s.Pick(5))
	}
}

func TestSource_RandomIsReproducibleWithSameSeed(t *testing.T) {
	a := tiebreak.New(tiebreak.WithSeed(42), tiebreak.WithMode(tiebreak.Random))
	b := tiebreak.New(tiebreak.WithSeed(42), tiebreak.WithMode(tiebreak.Random))

	for i := 0; i < 20; i++ {
		require.Equal(t, a.Pick(7), b.Pick(7))
	}
}

func TestSource_PickPanicsOnEmptySet(t *testing.T) {
	s := tiebreak.New()
	require.Panics(t, func() { s.Pick(0) })
}

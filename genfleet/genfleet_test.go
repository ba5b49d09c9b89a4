package genfleet_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deride-go/rideshare/genfleet"
	"github.com/deride-go/rideshare/graph"
)

func buildGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.Build([]graph.EdgeInput{
		{Source: "1", Destination: "2", Weight: 1},
		{Source: "2", Destination: "3", Weight: 1},
	})
	require.NoError(t, err)

	return g
}

func TestDrivers_GeneratesRequestedCount(t *testing.T) {
	g := buildGraph(t)
	drivers, err := genfleet.Drivers(g, 5, genfleet.WithSeed(7))
	require.NoError(t, err)
	require.Len(t, drivers, 5)
	for _, d := range drivers {
		require.True(t, g.HasNode(d.Source))
		require.True(t, g.HasNode(d.Destination))
		require.GreaterOrEqual(t, d.InitialSeats, 1)
		require.LessOrEqual(t, d.InitialSeats, 5)
	}
}

func TestDrivers_ReproducibleWithSameSeed(t *testing.T) {
	g := buildGraph(t)
	a, err := genfleet.Drivers(g, 10, genfleet.WithSeed(42))
	require.NoError(t, err)
	b, err := genfleet.Drivers(g, 10, genfleet.WithSeed(42))
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestRiders_GeneratesRequestedCount(t *testing.T) {
	g := buildGraph(t)
	riders, err := genfleet.Riders(g, 3, genfleet.WithSeed(1))
	require.NoError(t, err)
	require.Len(t, riders, 3)
}

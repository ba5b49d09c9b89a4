package pathoracle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deride-go/rideshare/graph"
	"github.com/deride-go/rideshare/pathoracle"
)

func TestOracle_MemoizesAndMatchesGraph(t *testing.T) {
	g, err := graph.Build([]graph.EdgeInput{
		{Source: "1", Destination: "2", Weight: 1},
		{Source: "2", Destination: "3", Weight: 1},
		{Source: "1", Destination: "3", Weight: 10},
	})
	require.NoError(t, err)

	o := pathoracle.New(g)

	d1, err := o.Spd("1", "3")
	require.NoError(t, err)
	require.EqualValues(t, 2, d1)

	// Second call must hit the cache and return the identical value.
	d2, err := o.Spd("1", "3")
	require.NoError(t, err)
	require.Equal(t, d1, d2)

	path, err := o.Spp("1", "3")
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2", "3"}, path)
}

func TestOracle_Unreachable(t *testing.T) {
	g, err := graph.Build([]graph.EdgeInput{{Source: "1", Destination: "2", Weight: 1}})
	require.NoError(t, err)

	o := pathoracle.New(g)
	d, err := o.Spd("2", "1")
	require.NoError(t, err)
	require.EqualValues(t, graph.Unreachable, d)

	path, err := o.Spp("2", "1")
	require.NoError(t, err)
	require.Empty(t, path)
}

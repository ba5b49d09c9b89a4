package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deride-go/rideshare/graph"
)

// buildTriangle constructs the triangle graph used in spec.md §8, scenario 1:
// nodes {1,2,3}, edges (1,2,1),(2,3,1),(1,3,10).
func buildTriangle(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.Build([]graph.EdgeInput{
		{Source: "1", Destination: "2", Weight: 1},
		{Source: "2", Destination: "3", Weight: 1},
		{Source: "1", Destination: "3", Weight: 10},
	})
	require.NoError(t, err)

	return g
}

func TestShortestPathDistance_PrefersTwoHopOverDirectEdge(t *testing.T) {
	g := buildTriangle(t)

	d, err := g.ShortestPathDistance("1", "3")
	require.NoError(t, err)
	require.EqualValues(t, 2, d)
}

func TestShortestPath_ReturnsNodeSequence(t *testing.T) {
	g := buildTriangle(t)

	path, err := g.ShortestPath("1", "3")
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2", "3"}, path)
}

func TestShortestPathDistance_Unreachable(t *testing.T) {
	g, err := graph.Build([]graph.EdgeInput{
		{Source: "1", Destination: "2", Weight: 1},
	})
	require.NoError(t, err)

	d, err := g.ShortestPathDistance("2", "1")
	require.NoError(t, err)
	require.EqualValues(t, graph.Unreachable, d)

	path, err := g.ShortestPath("2", "1")
	require.NoError(t, err)
	require.Empty(t, path)
}

func TestShortestPath_UnknownNode(t *testing.T) {
	g := buildTriangle(t)

	_, err := g.ShortestPathDistance("1", "99")
	require.ErrorIs(t, err, graph.ErrNodeNotFound)

	_, err = g.ShortestPathDistance("99", "1")
	require.ErrorIs(t, err, graph.ErrNodeNotFound)
}

func TestBuild_RejectsNegativeWeight(t *testing.T) {
	_, err := graph.Build([]graph.EdgeInput{{Source: "1", Destination: "2", Weight: -1}})
	require.ErrorIs(t, err, graph.ErrNegativeWeight)
}

func TestSingleSourceWithin_BoundsByCutoff(t *testing.T) {
	g := buildTriangle(t)

	within, err := g.SingleSourceWithin("1", 1)
	require.NoError(t, err)
	require.Equal(t, map[string]int64{"1": 0, "2": 1}, within)

	within, err = g.SingleSourceWithin("1", 2)
	require.NoError(t, err)
	require.Equal(t, map[string]int64{"1": 0, "2": 1, "3": 2}, within)
}

func TestShortestPath_TieBreakIsDeterministic(t *testing.T) {
	// Two equal-length paths from 1 to 4: via 2 and via 3. The lower
	// intermediate id (2) must win deterministically.
	g, err := graph.Build([]graph.EdgeInput{
		{Source: "1", Destination: "2", Weight: 1},
		{Source: "1", Destination: "3", Weight: 1},
		{Source: "2", Destination: "4", Weight: 1},
		{Source: "3", Destination: "4", Weight: 1},
	})
	require.NoError(t, err)

	path, err := g.ShortestPath("1", "4")
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2", "4"}, path)
}

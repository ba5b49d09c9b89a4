package ingest_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deride-go/rideshare/ingest"
)

func TestGraph_ParsesEdges(t *testing.T) {
	g, err := ingest.Graph(strings.NewReader("source,destination,weight\n1,2,3\n2,3,4\n"))
	require.NoError(t, err)
	require.True(t, g.HasNode("1"))
	dist, err := g.ShortestPathDistance("1", "3")
	require.NoError(t, err)
	require.Equal(t, int64(7), dist)
}

func TestGraph_RejectsMalformedWeight(t *testing.T) {
	_, err := ingest.Graph(strings.NewReader("source,destination,weight\n1,2,abc\n"))
	require.Error(t, err)
}

func TestDrivers_RejectsUnknownNode(t *testing.T) {
	g, err := ingest.Graph(strings.NewReader("source,destination,weight\n1,2,1\n"))
	require.NoError(t, err)

	_, err = ingest.Drivers(strings.NewReader("id,source,destination,seats,threshold\nd1,1,9,2,10\n"), g)
	require.Error(t, err)
}

func TestDrivers_ParsesValidRow(t *testing.T) {
	g, err := ingest.Graph(strings.NewReader("source,destination,weight\n1,2,1\n"))
	require.NoError(t, err)

	drivers, err := ingest.Drivers(strings.NewReader("id,source,destination,seats,threshold\nd1,1,2,2,10\n"), g)
	require.NoError(t, err)
	require.Len(t, drivers, 1)
	require.Equal(t, "d1", drivers[0].ID)
}

func TestRiders_ParsesValidRow(t *testing.T) {
	g, err := ingest.Graph(strings.NewReader("source,destination,weight\n1,2,1\n"))
	require.NoError(t, err)

	riders, err := ingest.Riders(strings.NewReader("id,source,destination\nr1,1,2\n"), g)
	require.NoError(t, err)
	require.Len(t, riders, 1)
	require.Equal(t, "r1", riders[0].ID)
}

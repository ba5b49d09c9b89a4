package reportio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deride-go/rideshare/reportio"
	"github.com/deride-go/rideshare/transport"
)

func TestWriteAssignmentCSV_WritesOneRowPerDriver(t *testing.T) {
	a := &transport.Assignment{
		Variant: "deride",
		Drivers: []transport.DriverAssignment{
			{
				Driver:         transport.Driver{ID: "d1", Source: "1", Destination: "5", InitialSeats: 2},
				Path:           []string{"1", "2", "5"},
				AcceptedRiders: []string{"r1"},
				RemainingSeats: 1,
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, reportio.WriteAssignmentCSV(&buf, a))

	out := buf.String()
	require.Equal(t, 2, strings.Count(out, "\n"))
	require.Contains(t, out, "d1")
	require.Contains(t, out, "1|2|5")
	require.Contains(t, out, "r1")
}

func TestWriteSummary_IncludesFairnessMetrics(t *testing.T) {
	m := transport.Metrics{Variant: "deride", TotalRiders: 2, TotalServed: 2, FairnessRatio: 1}

	var buf bytes.Buffer
	require.NoError(t, reportio.WriteSummary(&buf, m))
	require.Contains(t, buf.String(), "Fairness ratio")
}

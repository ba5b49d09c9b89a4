package deridefair_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deride-go/rideshare/deridefair"
	"github.com/deride-go/rideshare/eligibility"
	"github.com/deride-go/rideshare/graph"
	"github.com/deride-go/rideshare/pathoracle"
	"github.com/deride-go/rideshare/transport"
)

// buildLine constructs 1-2-3-4-5 as a straight line of unit-weight edges,
// plus a 3->6->4 spur whose node 6 is a genuine detour off the line
// (reaching it and rejoining the line costs far more than the direct 3->4
// edge), so the standard DP<=MP rule has something real to reject.
func buildLine(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.Build([]graph.EdgeInput{
		{Source: "1", Destination: "2", Weight: 1},
		{Source: "2", Destination: "3", Weight: 1},
		{Source: "3", Destination: "4", Weight: 1},
		{Source: "4", Destination: "5", Weight: 1},
		{Source: "3", Destination: "6", Weight: 1},
		{Source: "6", Destination: "4", Weight: 5},
	})
	require.NoError(t, err)

	return g
}

func TestAssign_ServesSingleEligibleRider(t *testing.T) {
	g := buildLine(t)
	oracle := pathoracle.New(g)

	d, err := transport.NewDriver("d1", "1", "5", 2, 50)
	require.NoError(t, err)
	r, err := transport.NewRider("r1", "2", "3")
	require.NoError(t, err)

	matrix, err := eligibility.Build(oracle, []transport.Driver{d}, []transport.Rider{r})
	require.NoError(t, err)

	out, err := deridefair.Assign(oracle, matrix)
	require.NoError(t, err)
	require.Equal(t, 1, out.TotalServed())
}

func TestAssign_RejectsRiderThatBreaksRouteConstraint(t *testing.T) {
	g := buildLine(t)
	oracle := pathoracle.New(g)

	// Zero threshold leaves no room for detour: MP_d == SP_d == 4. Rider
	// 3->6 is a genuine detour off the line: spd(1,3)=2, spd(3,6)=1,
	// spd(6,5)=6 (6->4 costs 5, plus 4->5), so DP=9 > MP=4.
	d, err := transport.NewDriver("d1", "1", "5", 2, 0)
	require.NoError(t, err)
	r, err := transport.NewRider("r1", "3", "6")
	require.NoError(t, err)

	matrix, err := eligibility.Build(oracle, []transport.Driver{d}, []transport.Rider{r})
	require.NoError(t, err)
	// Standard rule already rejects this pair at zero threshold, so the
	// matrix starts with no eligibility and the assigner serves nobody.
	require.False(t, matrix.ER[0][0])

	out, err := deridefair.Assign(oracle, matrix)
	require.NoError(t, err)
	require.Equal(t, 0, out.TotalServed())
}

func TestAssign_GroupsByLoadBeforeAssigningSecondRider(t *testing.T) {
	g := buildLine(t)
	oracle := pathoracle.New(g)

	d1, err := transport.NewDriver("d1", "1", "5", 2, 100)
	require.NoError(t, err)
	d2, err := transport.NewDriver("d2", "1", "5", 2, 100)
	require.NoError(t, err)
	r1, err := transport.NewRider("r1", "1", "2")
	require.NoError(t, err)
	r2, err := transport.NewRider("r2", "2", "3")
	require.NoError(t, err)

	matrix, err := eligibility.Build(oracle, []transport.Driver{d1, d2}, []transport.Rider{r1, r2})
	require.NoError(t, err)

	out, err := deridefair.Assign(oracle, matrix)
	require.NoError(t, err)
	require.Equal(t, 2, out.TotalServed())
	// Each driver should end up with exactly one rider: once one driver
	// takes r1, the load-group pass prefers the untouched driver for r2.
	require.Equal(t, 1, out.Drivers[0].Load())
	require.Equal(t, 1, out.Drivers[1].Load())
}

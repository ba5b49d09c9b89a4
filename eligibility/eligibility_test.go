package eligibility_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deride-go/rideshare/eligibility"
	"github.com/deride-go/rideshare/graph"
	"github.com/deride-go/rideshare/pathoracle"
	"github.com/deride-go/rideshare/transport"
)

// buildLine constructs 1-2-3-4-5 as a straight line of unit-weight edges,
// with a longer bypass 1->5 so corridor and standard rules can disagree, and
// a 3->6->4 spur whose 6 is a genuine detour off the line (reaching it and
// rejoining the line costs far more than the direct 3->4 edge).
func buildLine(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.Build([]graph.EdgeInput{
		{Source: "1", Destination: "2", Weight: 1},
		{Source: "2", Destination: "3", Weight: 1},
		{Source: "3", Destination: "4", Weight: 1},
		{Source: "4", Destination: "5", Weight: 1},
		{Source: "1", Destination: "5", Weight: 10},
		{Source: "3", Destination: "6", Weight: 1},
		{Source: "6", Destination: "4", Weight: 5},
	})
	require.NoError(t, err)

	return g
}

func TestBuild_StandardRuleAcceptsWithinThreshold(t *testing.T) {
	g := buildLine(t)
	oracle := pathoracle.New(g)

	d, err := transport.NewDriver("d1", "1", "5", 2, 50)
	require.NoError(t, err)
	r, err := transport.NewRider("r1", "2", "3")
	require.NoError(t, err)

	m, err := eligibility.Build(oracle, []transport.Driver{d}, []transport.Rider{r})
	require.NoError(t, err)
	require.True(t, m.ER[0][0])
	require.Equal(t, []int{1}, m.Offers)
}

func TestBuild_StandardRuleRejectsBeyondThreshold(t *testing.T) {
	g := buildLine(t)
	oracle := pathoracle.New(g)

	// Zero threshold: MP_d == SP_d == 4. Rider 3->6 is a genuine detour off
	// the line: spd(1,3)=2, spd(3,6)=1, spd(6,5)=6 (6->4 costs 5, plus 4->5),
	// so DP=9 > MP=4 and the rider is rejected.
	d, err := transport.NewDriver("d1", "1", "5", 2, 0)
	require.NoError(t, err)
	r, err := transport.NewRider("r1", "3", "6")
	require.NoError(t, err)

	m, err := eligibility.Build(oracle, []transport.Driver{d}, []transport.Rider{r})
	require.NoError(t, err)
	require.False(t, m.ER[0][0])
}

func TestBuildDeRide_CorridorRuleAdmitsNearbyRiderOffShortestPath(t *testing.T) {
	g := buildLine(t)
	oracle := pathoracle.New(g)

	// Zero threshold: BuildDeRide seeds ER from the corridor rule. Rider
	// 2->6 ends off the driver's shortest path (1-2-3-4-5) — 6 is a spur
	// off node 3 — but 6 resolves to anchor "3" within radius
	// 2, and "2" precedes "3" in path order, so the corridor rule admits it.
	// The standard rule would reject this same rider: spd(1,2)=1,
	// spd(2,6)=2, spd(6,5)=6, so DP=9 far exceeds MP=4. This is the
	// corridor rule's actual point — a near-but-off-path rider the standard
	// rule can't see.
	d, err := transport.NewDriver("d1", "1", "5", 2, 0)
	require.NoError(t, err)
	nearby, err := transport.NewRider("r1", "2", "6")
	require.NoError(t, err)

	m, err := eligibility.BuildDeRide(oracle, g, []transport.Driver{d}, []transport.Rider{nearby}, 2)
	require.NoError(t, err)
	require.True(t, m.ER[0][0])
}

func TestBuildDeRide_StandardRuleStillAppliesAboveZeroThreshold(t *testing.T) {
	g := buildLine(t)
	oracle := pathoracle.New(g)

	// Nonzero threshold: BuildDeRide falls back to the standard DP<=MP rule,
	// same as Build, so the spur rider from the rejection test above is
	// still rejected (DP=9 far exceeds even a generous MP).
	d, err := transport.NewDriver("d1", "1", "5", 2, 50)
	require.NoError(t, err)
	r, err := transport.NewRider("r1", "3", "6")
	require.NoError(t, err)

	m, err := eligibility.BuildDeRide(oracle, g, []transport.Driver{d}, []transport.Rider{r}, 2)
	require.NoError(t, err)
	require.False(t, m.ER[0][0])
}

func TestBuildCorridor_OnRouteRespectsPathOrder(t *testing.T) {
	g := buildLine(t)
	path := []string{"1", "2", "3", "4", "5"}

	c, err := eligibility.BuildCorridor(g, path, 0)
	require.NoError(t, err)

	require.True(t, c.OnRoute("2", "4"))
	require.False(t, c.OnRoute("4", "2"))
}

func TestBuildCorridor_OffRouteNodeNotOnRoute(t *testing.T) {
	g, err := graph.Build([]graph.EdgeInput{
		{Source: "1", Destination: "2", Weight: 1},
		{Source: "2", Destination: "3", Weight: 1},
		{Source: "2", Destination: "9", Weight: 1},
	})
	require.NoError(t, err)

	c, err := eligibility.BuildCorridor(g, []string{"1", "2", "3"}, 0)
	require.NoError(t, err)

	require.False(t, c.OnRoute("1", "9"))
}

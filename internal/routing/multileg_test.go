package routing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfinder.gobus.org/internal/models"
)

func TestResolveMultiLegTransferPair(t *testing.T) {
	graph := BuildAdjacency(snapshotFromTrips(tripT2(), tripT3()))

	results := ResolveMultiLeg(graph, "A", "C", 1, 5*time.Minute)
	require.Len(t, results, 1)

	itinerary := results[0]
	require.Len(t, itinerary.Legs, 2)
	assert.Equal(t, "T2", itinerary.Legs[0].Trip.ID)
	assert.Equal(t, "T3", itinerary.Legs[1].Trip.ID)
	assert.Equal(t, 1, itinerary.TransferCount)
	require.Len(t, itinerary.WaitTimes, 1)
	assert.Equal(t, 10*time.Minute, itinerary.WaitTimes[0])
	assert.Equal(t, 2*time.Hour, itinerary.TotalDuration)
}

func TestResolveMultiLegTransferBufferPrunes(t *testing.T) {
	graph := BuildAdjacency(snapshotFromTrips(tripT2(), tripT3()))

	// The only connection at B leaves 10 minutes after arrival.
	assert.Empty(t, ResolveMultiLeg(graph, "A", "C", 1, 15*time.Minute))
	assert.Len(t, ResolveMultiLeg(graph, "A", "C", 1, 10*time.Minute), 1,
		"a connection exactly on the buffer is feasible")
}

func TestResolveMultiLegZeroTransfersStillFindsDirect(t *testing.T) {
	graph := BuildAdjacency(snapshotFromTrips(tripT1(), tripT2(), tripT3()))

	results := ResolveMultiLeg(graph, "A", "C", 0, 5*time.Minute)
	require.Len(t, results, 1, "zero transfers permits a single direct leg only")
	assert.Equal(t, "T1", results[0].Legs[0].Trip.ID)
}

func TestResolveMultiLegRespectsTransferBound(t *testing.T) {
	// A chain needing two transfers: A->B, B->C, C->D.
	hop := func(id, from, to string, dep, arr *models.TimeOfDay) *models.Trip {
		return models.NewTrip(id, "Route "+id, []models.StopVisit{
			models.TestVisit(from, 0, nil, dep),
			models.TestVisit(to, 1, arr, nil),
		})
	}
	snapshot := snapshotFromTrips(
		hop("H1", "A", "B", models.TestTimePtr(8, 0), models.TestTimePtr(8, 30)),
		hop("H2", "B", "C", models.TestTimePtr(8, 40), models.TestTimePtr(9, 10)),
		hop("H3", "C", "D", models.TestTimePtr(9, 20), models.TestTimePtr(9, 50)),
	)
	graph := BuildAdjacency(snapshot)

	assert.Empty(t, ResolveMultiLeg(graph, "A", "D", 1, 5*time.Minute))

	results := ResolveMultiLeg(graph, "A", "D", 2, 5*time.Minute)
	require.Len(t, results, 1)
	assert.Len(t, results[0].Legs, 3)
	assert.Equal(t, 2, results[0].TransferCount)
}

func TestResolveMultiLegNeverRevisitsLocations(t *testing.T) {
	// tripT4 loops A->B->A; paths through it must not return to A mid-way.
	graph := BuildAdjacency(snapshotFromTrips(tripT4(), tripT3()))

	results := ResolveMultiLeg(graph, "A", "C", 2, 5*time.Minute)
	require.Len(t, results, 1)

	seen := map[string]bool{"A": true}
	for _, leg := range results[0].Legs {
		to := leg.AlightingLocationID()
		assert.False(t, seen[to], "location %s visited twice", to)
		seen[to] = true
	}
}

func TestResolveMultiLegLegsChainAtSharedLocations(t *testing.T) {
	graph := BuildAdjacency(snapshotFromTrips(tripT2(), tripT3()))

	results := ResolveMultiLeg(graph, "A", "C", 1, 5*time.Minute)
	require.Len(t, results, 1)

	legs := results[0].Legs
	for i := 1; i < len(legs); i++ {
		assert.Equal(t, legs[i-1].AlightingLocationID(), legs[i].BoardingLocationID())
	}
}

func TestResolveMultiLegDegenerateInputs(t *testing.T) {
	graph := BuildAdjacency(snapshotFromTrips(tripT2()))

	assert.Nil(t, ResolveMultiLeg(graph, "A", "B", -1, 5*time.Minute))
	assert.Nil(t, ResolveMultiLeg(graph, "A", "A", 2, 5*time.Minute))
}

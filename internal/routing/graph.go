package routing

import (
	"wayfinder.gobus.org/internal/models"
	"wayfinder.gobus.org/internal/schedule"
)

// Edge is one usable trip segment between two locations, annotated with the
// times a rider boarding and alighting it would see.
type Edge struct {
	Trip      *models.Trip
	BoardIdx  int
	AlightIdx int
	From      string
	To        string
	Departure models.TimeOfDay
	Arrival   models.TimeOfDay
	Kind      models.MatchKind
}

// Graph is a location-adjacency view of a snapshot: every edge a rider could
// ride, grouped by boarding location for O(1) fan-out during search. Graphs
// are derived per search from the immutable snapshot and never mutated after
// construction.
type Graph struct {
	edges     map[string][]Edge
	edgeCount int
}

// BuildAdjacency derives the connection graph from a snapshot. For every trip
// and every ordered visit pair (i, j) with i < j it emits a directed edge, so
// a transfer can board or alight at any stop of a trip, not just consecutive
// ones. Stop counts per trip are small, which keeps the stops² edge set cheap
// and spares the multi-leg search a second matching pass. Trips with
// regressing sequence numbers or missing times contribute no edges, the same
// isolation the matcher applies.
func BuildAdjacency(snapshot *schedule.Snapshot) *Graph {
	graph := &Graph{edges: make(map[string][]Edge)}

	for _, trip := range snapshot.Trips() {
		if !visitsOrdered(trip) {
			continue
		}

		visits := trip.Visits
		for i := 0; i < len(visits); i++ {
			departure := visits[i].BoardingTime()
			if departure == nil {
				continue
			}
			for j := i + 1; j < len(visits); j++ {
				// An edge back to the boarding location can never
				// be appended: its endpoint is already visited.
				if visits[j].LocationID == visits[i].LocationID {
					continue
				}
				arrival := visits[j].AlightingTime()
				if arrival == nil {
					continue
				}
				graph.add(Edge{
					Trip:      trip,
					BoardIdx:  i,
					AlightIdx: j,
					From:      visits[i].LocationID,
					To:        visits[j].LocationID,
					Departure: *departure,
					Arrival:   *arrival,
					Kind:      classifyMatch(i, j, len(visits)),
				})
			}
		}
	}

	return graph
}

func (g *Graph) add(edge Edge) {
	g.edges[edge.From] = append(g.edges[edge.From], edge)
	g.edgeCount++
}

// From returns the outgoing edges of a location. The returned slice is owned
// by the graph and must not be modified.
func (g *Graph) From(locationID string) []Edge {
	return g.edges[locationID]
}

// EdgeCount returns the total number of edges in the graph.
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

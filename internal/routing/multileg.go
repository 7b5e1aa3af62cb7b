package routing

import (
	"time"

	"wayfinder.gobus.org/internal/models"
)

// ResolveMultiLeg searches the connection graph for itineraries from origin
// to destination using at most maxTransfers transfers (maxTransfers+1 legs).
//
// The search is a bounded depth-first walk with feasibility pruning: a leg
// may be appended only if its alighting location has not been visited on the
// current path and, past the first leg, only if its departure leaves at
// least transferBuffer after the previous arrival. Reaching the destination
// emits the path immediately, so shorter itineraries are captured even while
// deeper ones remain explorable. The visited set grows on every recursive
// call and locations are finite, which guarantees termination.
//
// An empty result is a valid "no itinerary" outcome, not an error.
func ResolveMultiLeg(graph *Graph, originID, destinationID string, maxTransfers int, transferBuffer time.Duration) []models.Itinerary {
	if maxTransfers < 0 || originID == destinationID {
		return nil
	}

	search := &multiLegSearch{
		graph:          graph,
		destinationID:  destinationID,
		maxTransfers:   maxTransfers,
		transferBuffer: transferBuffer,
		visited:        map[string]bool{originID: true},
	}
	search.explore(originID, nil)

	return search.results
}

type multiLegSearch struct {
	graph          *Graph
	destinationID  string
	maxTransfers   int
	transferBuffer time.Duration

	visited map[string]bool
	path    []models.Leg
	results []models.Itinerary
}

// explore expands the frontier location. availableFrom is the arrival time of
// the path so far, nil before the first leg when no time constraint exists
// yet.
func (s *multiLegSearch) explore(locationID string, availableFrom *models.TimeOfDay) {
	for _, edge := range s.graph.From(locationID) {
		if s.visited[edge.To] {
			continue
		}
		if availableFrom != nil && edge.Departure < availableFrom.Add(s.transferBuffer) {
			continue
		}

		leg := models.Leg{
			Trip:      edge.Trip,
			BoardIdx:  edge.BoardIdx,
			AlightIdx: edge.AlightIdx,
			Kind:      edge.Kind,
		}

		if edge.To == s.destinationID {
			itinerary := make([]models.Leg, len(s.path)+1)
			copy(itinerary, s.path)
			itinerary[len(s.path)] = leg
			s.results = append(s.results, models.NewItinerary(itinerary))
			continue
		}

		// Only recurse while a further leg could still reach the
		// destination within the transfer bound.
		if len(s.path) < s.maxTransfers {
			s.path = append(s.path, leg)
			s.visited[edge.To] = true
			arrival := edge.Arrival

			s.explore(edge.To, &arrival)

			s.visited[edge.To] = false
			s.path = s.path[:len(s.path)-1]
		}
	}
}

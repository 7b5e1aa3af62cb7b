package routing

import (
	"wayfinder.gobus.org/internal/models"
)

// Match records how one trip covers an origin/destination pair: the boarding
// and alighting positions in the trip's visit slice and the informational
// match kind.
type Match struct {
	BoardIdx  int
	AlightIdx int
	Kind      models.MatchKind
}

// MatchTrip determines whether trip visits origin and destination in order
// and classifies the match. It returns nil when either location is absent,
// when the destination is not visited strictly after the origin, when the
// matched visits carry no usable times, or when the trip's sequence numbers
// are not strictly increasing (malformed schedule data is isolated to the
// trip that carries it, never raised as an error). One O(stops) scan, no
// side effects.
func MatchTrip(trip *models.Trip, originID, destinationID string) *Match {
	if originID == destinationID {
		return nil
	}
	if !visitsOrdered(trip) {
		return nil
	}

	boardIdx, alightIdx := -1, -1
	for i, visit := range trip.Visits {
		if boardIdx == -1 {
			if visit.LocationID == originID {
				boardIdx = i
			}
			continue
		}
		if visit.LocationID == destinationID {
			alightIdx = i
			break
		}
	}

	if boardIdx == -1 || alightIdx == -1 {
		return nil
	}
	if trip.Visits[boardIdx].BoardingTime() == nil || trip.Visits[alightIdx].AlightingTime() == nil {
		return nil
	}

	return &Match{
		BoardIdx:  boardIdx,
		AlightIdx: alightIdx,
		Kind:      classifyMatch(boardIdx, alightIdx, len(trip.Visits)),
	}
}

// classifyMatch labels a boarding/alighting index pair relative to the trip's
// endpoints. The label is carried for display only; feasibility logic never
// branches on it.
func classifyMatch(boardIdx, alightIdx, visitCount int) models.MatchKind {
	lastIdx := visitCount - 1
	switch {
	case boardIdx == 0 && alightIdx == lastIdx:
		return models.MatchDirect
	case alightIdx < lastIdx:
		return models.MatchContinuing
	default:
		return models.MatchVia
	}
}

// visitsOrdered reports whether the trip's sequence numbers are strictly
// increasing.
func visitsOrdered(trip *models.Trip) bool {
	for i := 1; i < len(trip.Visits); i++ {
		if trip.Visits[i].Sequence <= trip.Visits[i-1].Sequence {
			return false
		}
	}
	return true
}

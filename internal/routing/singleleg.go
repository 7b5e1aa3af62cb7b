package routing

import (
	"wayfinder.gobus.org/internal/models"
	"wayfinder.gobus.org/internal/schedule"
)

// ResolveSingleLeg scans every trip in the snapshot and returns one leg per
// trip that covers the origin/destination pair, whether as a direct run, a
// via segment or a segment of a longer trip. Order of the returned legs is
// unspecified; ranking happens in Finalize.
func ResolveSingleLeg(snapshot *schedule.Snapshot, originID, destinationID string) []models.Leg {
	var legs []models.Leg
	for _, trip := range snapshot.Trips() {
		match := MatchTrip(trip, originID, destinationID)
		if match == nil {
			continue
		}
		legs = append(legs, models.Leg{
			Trip:      trip,
			BoardIdx:  match.BoardIdx,
			AlightIdx: match.AlightIdx,
			Kind:      match.Kind,
		})
	}
	return legs
}

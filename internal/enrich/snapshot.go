package enrich

import (
	"context"

	"github.com/twpayne/go-polyline"

	"wayfinder.gobus.org/internal/models"
	"wayfinder.gobus.org/internal/schedule"
)

// SnapshotEnricher fills leg display fields from the snapshot's own
// reference data: trip labels, location names and, when every stop on a leg
// has coordinates, an encoded polyline of the leg's path. It never fails a
// search; a location without a name falls back to its ID.
type SnapshotEnricher struct{}

// NewSnapshotEnricher creates the default display enricher.
func NewSnapshotEnricher() *SnapshotEnricher {
	return &SnapshotEnricher{}
}

func (e *SnapshotEnricher) Enrich(_ context.Context, snapshot *schedule.Snapshot, itineraries []models.Itinerary, _ string) error {
	for i := range itineraries {
		for j := range itineraries[i].Legs {
			leg := &itineraries[i].Legs[j]
			if leg.Display == nil {
				leg.Display = &models.LegDisplay{}
			}
			leg.Display.TripLabel = leg.Trip.Label
			leg.Display.BoardingName = locationName(snapshot, leg.BoardingLocationID())
			leg.Display.AlightingName = locationName(snapshot, leg.AlightingLocationID())
			leg.Display.Geometry = legGeometry(snapshot, *leg)
		}
	}
	return nil
}

func locationName(snapshot *schedule.Snapshot, id string) string {
	if location, ok := snapshot.Location(id); ok && location.Name != "" {
		return location.Name
	}
	return id
}

// legGeometry encodes the coordinates of every visit from boarding through
// alighting. Any stop without coordinates leaves the leg without geometry.
func legGeometry(snapshot *schedule.Snapshot, leg models.Leg) string {
	coords := make([][]float64, 0, leg.AlightIdx-leg.BoardIdx+1)
	for _, visit := range leg.Trip.Visits[leg.BoardIdx : leg.AlightIdx+1] {
		location, ok := snapshot.Location(visit.LocationID)
		if !ok || !location.HasCoords() {
			return ""
		}
		coords = append(coords, []float64{*location.Lat, *location.Lon})
	}
	return string(polyline.EncodeCoords(coords))
}

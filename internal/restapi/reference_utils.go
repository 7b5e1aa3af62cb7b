package restapi

import (
	"wayfinder.gobus.org/internal/models"
	"wayfinder.gobus.org/internal/schedule"
)

// planReferences collects the locations and trips touched by the returned
// itineraries so clients can resolve identifiers without extra requests.
// Every visit between boarding and alighting is included, not only the
// endpoints.
func planReferences(snapshot *schedule.Snapshot, itineraries []models.Itinerary) models.ReferencesModel {
	references := models.NewEmptyReferences()

	seenLocations := make(map[string]bool)
	seenTrips := make(map[string]bool)

	for _, itinerary := range itineraries {
		for _, leg := range itinerary.Legs {
			if !seenTrips[leg.Trip.ID] {
				seenTrips[leg.Trip.ID] = true
				references.Trips = append(references.Trips, models.TripReference{
					ID:    leg.Trip.ID,
					Label: leg.Trip.Label,
				})
			}

			for _, visit := range leg.Trip.Visits[leg.BoardIdx : leg.AlightIdx+1] {
				if seenLocations[visit.LocationID] {
					continue
				}
				seenLocations[visit.LocationID] = true
				if location, ok := snapshot.Location(visit.LocationID); ok {
					references.Locations = append(references.Locations, *location)
				}
			}
		}
	}

	return references
}

// tripReferences collects the locations one trip visits.
func tripReferences(snapshot *schedule.Snapshot, trip *models.Trip) models.ReferencesModel {
	references := models.NewEmptyReferences()

	seen := make(map[string]bool)
	for _, visit := range trip.Visits {
		if seen[visit.LocationID] {
			continue
		}
		seen[visit.LocationID] = true
		if location, ok := snapshot.Location(visit.LocationID); ok {
			references.Locations = append(references.Locations, *location)
		}
	}

	return references
}

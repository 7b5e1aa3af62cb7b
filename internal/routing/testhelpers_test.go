package routing

import (
	"wayfinder.gobus.org/internal/models"
	"wayfinder.gobus.org/internal/schedule"
)

// snapshotFromTrips builds a snapshot whose location set is derived from the
// trips' visits.
func snapshotFromTrips(trips ...*models.Trip) *schedule.Snapshot {
	seen := make(map[string]bool)
	var locations []*models.Location
	for _, trip := range trips {
		for _, visit := range trip.Visits {
			if seen[visit.LocationID] {
				continue
			}
			seen[visit.LocationID] = true
			locations = append(locations, models.NewLocation(visit.LocationID, visit.LocationID+" Stop"))
		}
	}
	return schedule.NewSnapshot(locations, trips)
}

// tripT2 and tripT3 form the classic transfer pair: A to B arriving 09:00,
// B to C departing 09:10.
func tripT2() *models.Trip {
	return models.NewTrip("T2", "Route 2", []models.StopVisit{
		models.TestVisit("A", 0, nil, models.TestTimePtr(8, 0)),
		models.TestVisit("B", 1, models.TestTimePtr(9, 0), nil),
	})
}

func tripT3() *models.Trip {
	return models.NewTrip("T3", "Route 3", []models.StopVisit{
		models.TestVisit("B", 0, nil, models.TestTimePtr(9, 10)),
		models.TestVisit("C", 1, models.TestTimePtr(10, 0), nil),
	})
}

// tripT4 is a loop route returning to its origin.
func tripT4() *models.Trip {
	return models.NewTrip("T4", "Route 4", []models.StopVisit{
		models.TestVisit("A", 0, nil, models.TestTimePtr(8, 0)),
		models.TestVisit("B", 1, models.TestTimePtr(9, 0), models.TestTimePtr(9, 2)),
		models.TestVisit("A", 2, models.TestTimePtr(10, 0), nil),
	})
}

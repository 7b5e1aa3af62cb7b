package scheduledb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jamespfennell/gtfs"
)

// ImportGTFS parses a static GTFS zip and stores its stops, trips and stop
// times as locations, trips and stop visits. GTFS records both an arrival and
// a departure for every stop time; the first visit's arrival and the last
// visit's departure carry no information for itinerary searches and are
// stored as NULL.
func (c *Client) ImportGTFS(ctx context.Context, b []byte) error {
	defer c.trackImportRuntime(time.Now())

	staticData, err := gtfs.ParseStatic(b, gtfs.ParseStaticOptions{})
	if err != nil {
		return fmt.Errorf("error parsing GTFS data: %w", err)
	}

	if c.config.verbose {
		fmt.Printf("retrieved static data (warnings: %d)\n", len(staticData.Warnings))
	}

	var locations []Location
	for _, s := range staticData.Stops {
		location := Location{
			ID:   s.Id,
			Name: s.Name,
		}
		if s.Latitude != nil && s.Longitude != nil {
			location.Lat = sql.NullFloat64{Float64: *s.Latitude, Valid: true}
			location.Lon = sql.NullFloat64{Float64: *s.Longitude, Valid: true}
		}
		locations = append(locations, location)
	}
	if err := InsertLocations(c.DB, locations); err != nil {
		return fmt.Errorf("error storing locations: %w", err)
	}

	var trips []Trip
	var visits []StopVisit
	for _, t := range staticData.Trips {
		trips = append(trips, Trip{
			ID:    t.ID,
			Label: gtfsTripLabel(&t),
		})

		for i, st := range t.StopTimes {
			visit := StopVisit{
				TripID:     t.ID,
				LocationID: st.Stop.Id,
				Sequence:   st.StopSequence,
			}
			if i > 0 {
				visit.Arrival = sql.NullInt64{Int64: int64(st.ArrivalTime / time.Second), Valid: true}
			}
			if i < len(t.StopTimes)-1 {
				visit.Departure = sql.NullInt64{Int64: int64(st.DepartureTime / time.Second), Valid: true}
			}
			visits = append(visits, visit)
		}
	}
	if err := InsertTrips(c.DB, trips); err != nil {
		return fmt.Errorf("error storing trips: %w", err)
	}
	if err := InsertStopVisits(c.DB, visits); err != nil {
		return fmt.Errorf("error storing stop visits: %w", err)
	}

	return nil
}

// gtfsTripLabel picks the rider-facing label for a trip: the route's short
// name when available, then the trip's own short name, headsign, and finally
// the trip ID.
func gtfsTripLabel(t *gtfs.ScheduledTrip) string {
	if t.Route != nil && t.Route.ShortName != "" {
		return t.Route.ShortName
	}
	if t.ShortName != "" {
		return t.ShortName
	}
	if t.Headsign != "" {
		return t.Headsign
	}
	return t.ID
}

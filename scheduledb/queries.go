package scheduledb

import (
	"context"
	"database/sql"
)

// Queries bundles the read side of the schedule database.
type Queries struct {
	db *sql.DB
}

// New creates a Queries instance over the given database handle.
func New(db *sql.DB) *Queries {
	return &Queries{db: db}
}

// GetLocation returns the location with the given ID.
func (q *Queries) GetLocation(ctx context.Context, id string) (Location, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT location_id, name, lat, lon FROM locations WHERE location_id = ?`, id)

	var location Location
	err := row.Scan(&location.ID, &location.Name, &location.Lat, &location.Lon)
	return location, err
}

// ListLocations returns all locations ordered by ID.
func (q *Queries) ListLocations(ctx context.Context) ([]Location, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT location_id, name, lat, lon FROM locations ORDER BY location_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var locations []Location
	for rows.Next() {
		var location Location
		if err := rows.Scan(&location.ID, &location.Name, &location.Lat, &location.Lon); err != nil {
			return nil, err
		}
		locations = append(locations, location)
	}
	return locations, rows.Err()
}

// GetTrip returns the trip with the given ID.
func (q *Queries) GetTrip(ctx context.Context, id string) (Trip, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT trip_id, label FROM trips WHERE trip_id = ?`, id)

	var trip Trip
	err := row.Scan(&trip.ID, &trip.Label)
	return trip, err
}

// ListTrips returns all trips ordered by ID.
func (q *Queries) ListTrips(ctx context.Context) ([]Trip, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT trip_id, label FROM trips ORDER BY trip_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var trips []Trip
	for rows.Next() {
		var trip Trip
		if err := rows.Scan(&trip.ID, &trip.Label); err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}
	return trips, rows.Err()
}

// ListStopVisits returns every stop visit ordered by trip and sequence, the
// order a snapshot is assembled in.
func (q *Queries) ListStopVisits(ctx context.Context) ([]StopVisit, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT trip_id, location_id, sequence, arrival_time, departure_time
		FROM stop_visits ORDER BY trip_id, sequence`)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	return scanStopVisits(rows)
}

// ListStopVisitsForTrip returns the stop visits of one trip ordered by sequence.
func (q *Queries) ListStopVisitsForTrip(ctx context.Context, tripID string) ([]StopVisit, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT trip_id, location_id, sequence, arrival_time, departure_time
		FROM stop_visits WHERE trip_id = ? ORDER BY sequence`, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	return scanStopVisits(rows)
}

// GetTranslation returns the translated name for an entity in a locale.
func (q *Queries) GetTranslation(ctx context.Context, entityType, entityID, locale string) (string, error) {
	row := q.db.QueryRowContext(ctx, `
		SELECT name FROM translations
		WHERE entity_type = ? AND entity_id = ? AND locale = ?`,
		entityType, entityID, locale)

	var name string
	err := row.Scan(&name)
	return name, err
}

// ListTranslationLocales returns the distinct locales present in the
// translations table.
func (q *Queries) ListTranslationLocales(ctx context.Context) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT DISTINCT locale FROM translations ORDER BY locale`)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var locales []string
	for rows.Next() {
		var locale string
		if err := rows.Scan(&locale); err != nil {
			return nil, err
		}
		locales = append(locales, locale)
	}
	return locales, rows.Err()
}

func scanStopVisits(rows *sql.Rows) ([]StopVisit, error) {
	var visits []StopVisit
	for rows.Next() {
		var visit StopVisit
		err := rows.Scan(&visit.TripID, &visit.LocationID, &visit.Sequence, &visit.Arrival, &visit.Departure)
		if err != nil {
			return nil, err
		}
		visits = append(visits, visit)
	}
	return visits, rows.Err()
}

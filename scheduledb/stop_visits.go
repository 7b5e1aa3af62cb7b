package scheduledb

import (
	"database/sql"
	"fmt"
)

// StopVisit is one stop on a trip's ordered itinerary. Times are seconds
// after midnight; arrival is NULL for a trip's first stop and departure is
// NULL for its last.
type StopVisit struct {
	TripID     string        // trip_id
	LocationID string        // location_id
	Sequence   int           // sequence
	Arrival    sql.NullInt64 // arrival_time
	Departure  sql.NullInt64 // departure_time
}

// InsertStopVisits inserts multiple stop visits using a transaction for better performance
func InsertStopVisits(db *sql.DB, visits []StopVisit) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO stop_visits (
			trip_id, location_id, sequence, arrival_time, departure_time
		) VALUES (?, ?, ?, ?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, visit := range visits {
		_, err := stmt.Exec(visit.TripID, visit.LocationID, visit.Sequence, visit.Arrival, visit.Departure)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting stop visit: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

func createStopVisitsTable(tx *sql.Tx) {
	createTable(tx, "stop_visits", `
		CREATE TABLE IF NOT EXISTS stop_visits (
			trip_id TEXT NOT NULL,
			location_id TEXT NOT NULL,
			sequence INTEGER NOT NULL,
			arrival_time INTEGER,
			departure_time INTEGER,
			PRIMARY KEY (trip_id, sequence),
			FOREIGN KEY (trip_id) REFERENCES trips(trip_id),
			FOREIGN KEY (location_id) REFERENCES locations(location_id)
		);
	`)
}

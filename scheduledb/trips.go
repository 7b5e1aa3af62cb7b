package scheduledb

import (
	"database/sql"
	"fmt"
)

// Trip is one scheduled vehicle run.
type Trip struct {
	ID    string // trip_id
	Label string // label
}

// InsertTrips inserts multiple trips using a transaction for better performance
func InsertTrips(db *sql.DB, trips []Trip) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO trips (
			trip_id, label
		) VALUES (?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, trip := range trips {
		_, err := stmt.Exec(trip.ID, trip.Label)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting trip: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

func createTripsTable(tx *sql.Tx) {
	createTable(tx, "trips", `
		CREATE TABLE IF NOT EXISTS trips (
			trip_id TEXT PRIMARY KEY,
			label TEXT NOT NULL
		);
	`)
}

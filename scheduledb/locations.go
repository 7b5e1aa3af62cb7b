package scheduledb

import (
	"database/sql"
	"fmt"
)

// Location is a stop or station riders travel between.
type Location struct {
	ID   string          // location_id
	Name string          // name
	Lat  sql.NullFloat64 // lat
	Lon  sql.NullFloat64 // lon
}

// InsertLocations inserts multiple locations using a transaction for better performance
func InsertLocations(db *sql.DB, locations []Location) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO locations (
			location_id, name, lat, lon
		) VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, location := range locations {
		_, err := stmt.Exec(location.ID, location.Name, location.Lat, location.Lon)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting location: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

func createLocationsTable(tx *sql.Tx) {
	createTable(tx, "locations", `
		CREATE TABLE IF NOT EXISTS locations (
			location_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			lat REAL,
			lon REAL
		);
	`)
}

package scheduledb

import (
	"database/sql"
	"fmt"
	"log"

	"wayfinder.gobus.org/internal/appconf"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// InitDB creates a new SQLite database with the schedule tables.
func InitDB(config Config) (*sql.DB, error) {
	if config.Env == appconf.Test && config.DBPath != ":memory:" {
		log.Fatal("DB is being created in a file.", config.DBPath)
	}

	// Open database connection
	db, err := sql.Open("sqlite", config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Enable foreign keys
	_, err = db.Exec("PRAGMA foreign_keys = ON;")
	if err != nil {
		return nil, fmt.Errorf("error enabling foreign keys: %w", err)
	}

	// Create tables within a transaction
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}

	createTables(tx)

	// Create indexes for better performance
	_, err = tx.Exec(`
		CREATE INDEX IF NOT EXISTS idx_stop_visits_trip_id ON stop_visits(trip_id);
		CREATE INDEX IF NOT EXISTS idx_stop_visits_location_id ON stop_visits(location_id);
		CREATE INDEX IF NOT EXISTS idx_translations_entity ON translations(entity_type, entity_id, locale);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return nil, fmt.Errorf("error creating indexes: %w", err)
	}

	// Commit transaction
	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	return db, nil
}

func createTables(tx *sql.Tx) {
	createLocationsTable(tx)
	createTripsTable(tx)
	createStopVisitsTable(tx)
	createTranslationsTable(tx)
}

func createTable(tx *sql.Tx, name, ddl string) {
	if _, err := tx.Exec(ddl); err != nil {
		log.Fatalf("error creating %s table: %v", name, err)
	}
}

package scheduledb

import (
	"database/sql"
	"fmt"
)

// Entity types a translation can apply to.
const (
	EntityLocation = "location"
	EntityTrip     = "trip"
)

// Translation is a localized display name for a location or trip label.
type Translation struct {
	EntityType string // entity_type ("location" or "trip")
	EntityID   string // entity_id
	Locale     string // locale (BCP 47 tag, e.g. "de", "pt-BR")
	Name       string // name
}

// InsertTranslations inserts multiple translations using a transaction for better performance
func InsertTranslations(db *sql.DB, translations []Translation) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO translations (
			entity_type, entity_id, locale, name
		) VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, translation := range translations {
		_, err := stmt.Exec(translation.EntityType, translation.EntityID, translation.Locale, translation.Name)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting translation: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

func createTranslationsTable(tx *sql.Tx) {
	createTable(tx, "translations", `
		CREATE TABLE IF NOT EXISTS translations (
			entity_type TEXT NOT NULL,
			entity_id TEXT NOT NULL,
			locale TEXT NOT NULL,
			name TEXT NOT NULL,
			PRIMARY KEY (entity_type, entity_id, locale)
		);
	`)
}

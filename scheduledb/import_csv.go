package scheduledb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/spkg/bom"

	"wayfinder.gobus.org/internal/models"
)

// CSV row shapes for the plain schedule interchange format. Times use the
// "HH:MM" or "HH:MM:SS" clock form; empty cells mean NULL.
type locationCSV struct {
	ID   string   `csv:"location_id"`
	Name string   `csv:"name"`
	Lat  *float64 `csv:"lat"`
	Lon  *float64 `csv:"lon"`
}

type tripCSV struct {
	ID    string `csv:"trip_id"`
	Label string `csv:"label"`
}

type stopVisitCSV struct {
	TripID     string `csv:"trip_id"`
	LocationID string `csv:"location_id"`
	Sequence   int    `csv:"sequence"`
	Arrival    string `csv:"arrival_time"`
	Departure  string `csv:"departure_time"`
}

type translationCSV struct {
	EntityType string `csv:"entity_type"`
	EntityID   string `csv:"entity_id"`
	Locale     string `csv:"locale"`
	Name       string `csv:"name"`
}

// ImportCSVDir imports a directory of schedule CSV files: locations.csv,
// trips.csv and stop_visits.csv are required, translations.csv is optional.
func (c *Client) ImportCSVDir(ctx context.Context, dir string) error {
	defer c.trackImportRuntime(time.Now())

	var locationRows []*locationCSV
	if err := unmarshalCSVFile(filepath.Join(dir, "locations.csv"), &locationRows); err != nil {
		return fmt.Errorf("error reading locations.csv: %w", err)
	}

	var locations []Location
	for _, row := range locationRows {
		if row.ID == "" {
			return errors.New("locations.csv: empty location_id")
		}
		location := Location{ID: row.ID, Name: row.Name}
		if row.Lat != nil && row.Lon != nil {
			location.Lat = sql.NullFloat64{Float64: *row.Lat, Valid: true}
			location.Lon = sql.NullFloat64{Float64: *row.Lon, Valid: true}
		}
		locations = append(locations, location)
	}
	if err := InsertLocations(c.DB, locations); err != nil {
		return fmt.Errorf("error storing locations: %w", err)
	}

	var tripRows []*tripCSV
	if err := unmarshalCSVFile(filepath.Join(dir, "trips.csv"), &tripRows); err != nil {
		return fmt.Errorf("error reading trips.csv: %w", err)
	}

	var trips []Trip
	for _, row := range tripRows {
		if row.ID == "" {
			return errors.New("trips.csv: empty trip_id")
		}
		trips = append(trips, Trip{ID: row.ID, Label: row.Label})
	}
	if err := InsertTrips(c.DB, trips); err != nil {
		return fmt.Errorf("error storing trips: %w", err)
	}

	var visitRows []*stopVisitCSV
	if err := unmarshalCSVFile(filepath.Join(dir, "stop_visits.csv"), &visitRows); err != nil {
		return fmt.Errorf("error reading stop_visits.csv: %w", err)
	}

	var visits []StopVisit
	for _, row := range visitRows {
		visit := StopVisit{
			TripID:     row.TripID,
			LocationID: row.LocationID,
			Sequence:   row.Sequence,
		}

		var err error
		if visit.Arrival, err = parseClockCell(row.Arrival); err != nil {
			return fmt.Errorf("stop_visits.csv: trip %s sequence %d: %w", row.TripID, row.Sequence, err)
		}
		if visit.Departure, err = parseClockCell(row.Departure); err != nil {
			return fmt.Errorf("stop_visits.csv: trip %s sequence %d: %w", row.TripID, row.Sequence, err)
		}

		visits = append(visits, visit)
	}
	if err := InsertStopVisits(c.DB, visits); err != nil {
		return fmt.Errorf("error storing stop visits: %w", err)
	}

	var translationRows []*translationCSV
	err := unmarshalCSVFile(filepath.Join(dir, "translations.csv"), &translationRows)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error reading translations.csv: %w", err)
	}

	var translations []Translation
	for _, row := range translationRows {
		translations = append(translations, Translation{
			EntityType: row.EntityType,
			EntityID:   row.EntityID,
			Locale:     row.Locale,
			Name:       row.Name,
		})
	}
	if err := InsertTranslations(c.DB, translations); err != nil {
		return fmt.Errorf("error storing translations: %w", err)
	}

	return nil
}

// unmarshalCSVFile reads one CSV file into out, stripping a UTF-8 BOM if the
// exporting tool wrote one.
func unmarshalCSVFile(path string, out interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close() // nolint:errcheck

	return gocsv.Unmarshal(bom.NewReader(f), out)
}

// parseClockCell converts an "HH:MM[:SS]" cell into seconds after midnight,
// mapping the empty cell to NULL.
func parseClockCell(cell string) (sql.NullInt64, error) {
	if cell == "" {
		return sql.NullInt64{}, nil
	}

	t, err := models.ParseTimeOfDay(cell)
	if err != nil {
		return sql.NullInt64{}, err
	}
	return sql.NullInt64{Int64: int64(t), Valid: true}, nil
}

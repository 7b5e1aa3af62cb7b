package schedule

import (
	"strings"
	"time"

	"wayfinder.gobus.org/internal/appconf"
)

// Config describes where schedule data comes from and where the snapshot
// store lives.
type Config struct {
	// GTFSSource is the URL or local path of a static GTFS zip. Mutually
	// exclusive with CSVDir; leave both empty to serve whatever the store
	// already contains.
	GTFSSource string
	// CSVDir is a directory of schedule CSV files (locations.csv,
	// trips.csv, stop_visits.csv, optionally translations.csv).
	CSVDir string
	// DataPath is the SQLite database path, ":memory:" for ephemeral use.
	DataPath string
	// ReloadInterval is how often a remote GTFS source is re-downloaded.
	// Zero disables periodic reloads.
	ReloadInterval time.Duration

	Env     appconf.Environment
	Verbose bool
}

// remoteGTFSSource reports whether the GTFS source must be fetched over HTTP.
func (c Config) remoteGTFSSource() bool {
	return strings.HasPrefix(c.GTFSSource, "http://") || strings.HasPrefix(c.GTFSSource, "https://")
}

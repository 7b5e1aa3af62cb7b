package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"wayfinder.gobus.org/internal/logging"
	"wayfinder.gobus.org/internal/models"
	"wayfinder.gobus.org/scheduledb"
)

// Manager owns the schedule store and the current in-memory snapshot. The
// snapshot is swapped atomically on refresh; readers always see either the
// old or the new snapshot, never a partially built one.
type Manager struct {
	ScheduleDB *scheduledb.Client

	config       Config
	logger       *slog.Logger
	snapshot     atomic.Pointer[Snapshot]
	lastUpdated  atomic.Pointer[time.Time]
	shutdownChan chan struct{}
	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

// InitManager creates the schedule store, imports the configured source and
// loads the initial snapshot. For remote GTFS sources with a reload interval
// a background refresh goroutine is started.
func InitManager(config Config, logger *slog.Logger) (*Manager, error) {
	client, err := scheduledb.NewClient(scheduledb.NewConfig(config.DataPath, config.Env, config.Verbose))
	if err != nil {
		return nil, fmt.Errorf("error creating schedule store: %w", err)
	}

	manager := &Manager{
		ScheduleDB:   client,
		config:       config,
		logger:       logger,
		shutdownChan: make(chan struct{}),
	}

	ctx := context.Background()
	if err := manager.importSource(ctx); err != nil {
		_ = client.Close()
		return nil, err
	}

	snapshot, err := LoadSnapshot(ctx, client.Queries)
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("error loading schedule snapshot: %w", err)
	}
	manager.setSnapshot(snapshot)

	if config.ReloadInterval > 0 && config.remoteGTFSSource() {
		manager.wg.Add(1)
		go manager.reloadPeriodically()
	}

	return manager, nil
}

// Shutdown gracefully shuts down the manager and its background goroutines
func (manager *Manager) Shutdown() {
	manager.shutdownOnce.Do(func() {
		close(manager.shutdownChan)
		manager.wg.Wait()
		if manager.ScheduleDB != nil {
			_ = manager.ScheduleDB.Close()
		}
	})
}

// Snapshot returns the current immutable snapshot.
func (manager *Manager) Snapshot() *Snapshot {
	return manager.snapshot.Load()
}

// LastUpdated returns when the current snapshot was installed.
func (manager *Manager) LastUpdated() time.Time {
	if t := manager.lastUpdated.Load(); t != nil {
		return *t
	}
	return time.Time{}
}

func (manager *Manager) setSnapshot(snapshot *Snapshot) {
	now := time.Now()
	manager.snapshot.Store(snapshot)
	manager.lastUpdated.Store(&now)

	logging.LogOperation(manager.logger, "snapshot_installed",
		slog.Int("locations", snapshot.LocationCount()),
		slog.Int("trips", snapshot.TripCount()))
}

func (manager *Manager) importSource(ctx context.Context) error {
	switch {
	case manager.config.CSVDir != "":
		if err := manager.ScheduleDB.ImportCSVDir(ctx, manager.config.CSVDir); err != nil {
			return fmt.Errorf("error importing schedule CSVs: %w", err)
		}
	case manager.config.remoteGTFSSource():
		if err := manager.ScheduleDB.DownloadAndStoreGTFS(ctx, manager.config.GTFSSource); err != nil {
			return fmt.Errorf("error downloading GTFS source: %w", err)
		}
	case manager.config.GTFSSource != "":
		if err := manager.ScheduleDB.ImportGTFSFromFile(ctx, manager.config.GTFSSource); err != nil {
			return fmt.Errorf("error importing GTFS file: %w", err)
		}
	}
	return nil
}

// reloadPeriodically re-downloads a remote GTFS source and swaps in a fresh
// snapshot. Import failures keep the previous snapshot serving.
func (manager *Manager) reloadPeriodically() {
	defer manager.wg.Done()

	ticker := time.NewTicker(manager.config.ReloadInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			err := manager.reload(ctx)
			cancel()
			if err != nil {
				logging.LogError(manager.logger, "schedule reload failed", err,
					slog.String("source", manager.config.GTFSSource))
			}
		case <-manager.shutdownChan:
			logging.LogOperation(manager.logger, "schedule_reload_stopped")
			return
		}
	}
}

func (manager *Manager) reload(ctx context.Context) error {
	if err := manager.ScheduleDB.DownloadAndStoreGTFS(ctx, manager.config.GTFSSource); err != nil {
		return err
	}

	snapshot, err := LoadSnapshot(ctx, manager.ScheduleDB.Queries)
	if err != nil {
		return err
	}
	manager.setSnapshot(snapshot)

	return nil
}

// LoadSnapshot assembles an immutable snapshot from the schedule store.
func LoadSnapshot(ctx context.Context, queries *scheduledb.Queries) (*Snapshot, error) {
	dbLocations, err := queries.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing locations: %w", err)
	}

	locations := make([]*models.Location, 0, len(dbLocations))
	for _, dbLocation := range dbLocations {
		if dbLocation.Lat.Valid && dbLocation.Lon.Valid {
			locations = append(locations, models.NewLocationWithCoords(
				dbLocation.ID, dbLocation.Name, dbLocation.Lat.Float64, dbLocation.Lon.Float64))
		} else {
			locations = append(locations, models.NewLocation(dbLocation.ID, dbLocation.Name))
		}
	}

	dbTrips, err := queries.ListTrips(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing trips: %w", err)
	}

	dbVisits, err := queries.ListStopVisits(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing stop visits: %w", err)
	}

	visitsByTrip := make(map[string][]models.StopVisit, len(dbTrips))
	for _, dbVisit := range dbVisits {
		visit := models.StopVisit{
			LocationID: dbVisit.LocationID,
			Sequence:   dbVisit.Sequence,
		}
		if dbVisit.Arrival.Valid {
			arrival := models.TimeOfDay(dbVisit.Arrival.Int64)
			visit.Arrival = &arrival
		}
		if dbVisit.Departure.Valid {
			departure := models.TimeOfDay(dbVisit.Departure.Int64)
			visit.Departure = &departure
		}
		visitsByTrip[dbVisit.TripID] = append(visitsByTrip[dbVisit.TripID], visit)
	}

	trips := make([]*models.Trip, 0, len(dbTrips))
	for _, dbTrip := range dbTrips {
		trips = append(trips, models.NewTrip(dbTrip.ID, dbTrip.Label, visitsByTrip[dbTrip.ID]))
	}

	return NewSnapshot(locations, trips), nil
}

// PrintStatistics writes a short summary of the current snapshot.
func (manager *Manager) PrintStatistics() {
	snapshot := manager.Snapshot()
	fmt.Printf("Source: %s%s\n", manager.config.GTFSSource, manager.config.CSVDir)
	fmt.Printf("Last Updated: %s\n", manager.LastUpdated())
	fmt.Println("Locations Count: ", snapshot.LocationCount())
	fmt.Println("Trips Count: ", snapshot.TripCount())
}

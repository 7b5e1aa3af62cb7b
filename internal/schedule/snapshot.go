package schedule

import (
	"sort"

	"wayfinder.gobus.org/internal/models"
)

// Snapshot is an immutable, in-memory view of all trips valid for a search.
// A snapshot is constructed whole and never mutated afterwards, so any number
// of concurrent searches may read it without synchronization. Refreshing
// replaces the whole snapshot, never edits one in place.
type Snapshot struct {
	trips     []*models.Trip
	tripsByID map[string]*models.Trip
	locations map[string]*models.Location
}

// NewSnapshot builds a snapshot from reference data. The slices become owned
// by the snapshot; callers must not modify them afterwards.
func NewSnapshot(locations []*models.Location, trips []*models.Trip) *Snapshot {
	snapshot := &Snapshot{
		trips:     trips,
		tripsByID: make(map[string]*models.Trip, len(trips)),
		locations: make(map[string]*models.Location, len(locations)),
	}

	for _, trip := range trips {
		snapshot.tripsByID[trip.ID] = trip
	}
	for _, location := range locations {
		snapshot.locations[location.ID] = location
	}

	return snapshot
}

// Trips returns all trips in the snapshot. Callers must treat the slice as
// read-only.
func (s *Snapshot) Trips() []*models.Trip {
	return s.trips
}

// Trip returns the trip with the given ID.
func (s *Snapshot) Trip(id string) (*models.Trip, bool) {
	trip, ok := s.tripsByID[id]
	return trip, ok
}

// Location returns the location with the given ID.
func (s *Snapshot) Location(id string) (*models.Location, bool) {
	location, ok := s.locations[id]
	return location, ok
}

// HasLocation reports whether a location ID is known to the snapshot.
func (s *Snapshot) HasLocation(id string) bool {
	_, ok := s.locations[id]
	return ok
}

// Locations returns all locations ordered by ID.
func (s *Snapshot) Locations() []*models.Location {
	locations := make([]*models.Location, 0, len(s.locations))
	for _, location := range s.locations {
		locations = append(locations, location)
	}
	sort.Slice(locations, func(i, j int) bool {
		return locations[i].ID < locations[j].ID
	})
	return locations
}

// TripCount returns the number of trips in the snapshot.
func (s *Snapshot) TripCount() int {
	return len(s.trips)
}

// LocationCount returns the number of locations in the snapshot.
func (s *Snapshot) LocationCount() int {
	return len(s.locations)
}

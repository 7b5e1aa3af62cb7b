package models

import "encoding/json"

// MatchKind classifies how a trip covers an origin/destination pair. It is
// informational only: display code may branch on it, feasibility logic never
// does.
type MatchKind string

const (
	// MatchDirect means the rider boards at the trip's first stop and
	// alights at its last.
	MatchDirect MatchKind = "DIRECT"
	// MatchVia means both stops are interior stops of the trip.
	MatchVia MatchKind = "VIA"
	// MatchContinuing means the trip continues beyond the rider's
	// alighting stop.
	MatchContinuing MatchKind = "CONTINUING"
)

// LegDisplay carries best-effort presentation fields attached by the
// enrichment adapter after ranking. A nil LegDisplay is a valid, unenriched
// leg.
type LegDisplay struct {
	TripLabel     string `json:"tripLabel,omitempty"`
	BoardingName  string `json:"boardingName,omitempty"`
	AlightingName string `json:"alightingName,omitempty"`
	Geometry      string `json:"geometry,omitempty"`
}

// Leg is a usable sub-segment of a single trip between a boarding and an
// alighting stop visit, identified by their positions in the trip's visit
// slice. Legs are derived per search and never persisted.
type Leg struct {
	Trip      *Trip `json:"-"`
	BoardIdx  int   `json:"-"`
	AlightIdx int   `json:"-"`
	Kind      MatchKind
	Display   *LegDisplay
}

// MarshalJSON writes the rider-facing form of the leg: identifiers and times
// instead of visit indices.
func (l Leg) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		TripID              string      `json:"tripId"`
		TripLabel           string      `json:"tripLabel"`
		BoardingLocationID  string      `json:"boardingLocationId"`
		AlightingLocationID string      `json:"alightingLocationId"`
		DepartureTime       TimeOfDay   `json:"departureTime"`
		ArrivalTime         TimeOfDay   `json:"arrivalTime"`
		Kind                MatchKind   `json:"kind"`
		Display             *LegDisplay `json:"display,omitempty"`
	}{
		TripID:              l.Trip.ID,
		TripLabel:           l.Trip.Label,
		BoardingLocationID:  l.BoardingLocationID(),
		AlightingLocationID: l.AlightingLocationID(),
		DepartureTime:       l.Departure(),
		ArrivalTime:         l.Arrival(),
		Kind:                l.Kind,
		Display:             l.Display,
	})
}

// BoardingVisit returns the stop visit the rider boards at.
func (l Leg) BoardingVisit() StopVisit {
	return l.Trip.Visits[l.BoardIdx]
}

// AlightingVisit returns the stop visit the rider alights at.
func (l Leg) AlightingVisit() StopVisit {
	return l.Trip.Visits[l.AlightIdx]
}

// BoardingLocationID is the location the leg departs from.
func (l Leg) BoardingLocationID() string {
	return l.BoardingVisit().LocationID
}

// AlightingLocationID is the location the leg arrives at.
func (l Leg) AlightingLocationID() string {
	return l.AlightingVisit().LocationID
}

// Departure is the boarding time of the leg. Legs are only constructed from
// visits with a usable boarding time, so the value is always present.
func (l Leg) Departure() TimeOfDay {
	return *l.BoardingVisit().BoardingTime()
}

// Arrival is the alighting time of the leg.
func (l Leg) Arrival() TimeOfDay {
	return *l.AlightingVisit().AlightingTime()
}

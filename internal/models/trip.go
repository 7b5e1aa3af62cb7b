package models

// StopVisit is one stop on a trip's ordered itinerary. Arrival is nil for the
// first stop of a trip and Departure is nil for the last one. Sequence values
// must be strictly increasing within a trip; the matcher treats a trip whose
// sequence regresses as unmatched rather than failing the search.
type StopVisit struct {
	LocationID string     `json:"locationId"`
	Sequence   int        `json:"sequence"`
	Arrival    *TimeOfDay `json:"arrival,omitempty"`
	Departure  *TimeOfDay `json:"departure,omitempty"`
}

// BoardingTime is the time a rider boarding at this visit leaves the stop:
// the departure when present, otherwise the arrival.
func (sv StopVisit) BoardingTime() *TimeOfDay {
	if sv.Departure != nil {
		return sv.Departure
	}
	return sv.Arrival
}

// AlightingTime is the time a rider alighting at this visit reaches the stop:
// the arrival when present, otherwise the departure.
func (sv StopVisit) AlightingTime() *TimeOfDay {
	if sv.Arrival != nil {
		return sv.Arrival
	}
	return sv.Departure
}

// Trip is one scheduled vehicle run. Trips are immutable for the lifetime of
// the snapshot that owns them.
type Trip struct {
	ID     string      `json:"id"`
	Label  string      `json:"label"`
	Visits []StopVisit `json:"visits"`
}

// NewTrip creates a Trip from an already-ordered visit list.
func NewTrip(id, label string, visits []StopVisit) *Trip {
	return &Trip{
		ID:     id,
		Label:  label,
		Visits: visits,
	}
}

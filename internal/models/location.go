package models

// Location is a place a trip can serve. Locations are immutable reference
// data owned by the schedule snapshot; the routing engine never creates or
// mutates them.
type Location struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Lat  *float64 `json:"lat,omitempty"`
	Lon  *float64 `json:"lon,omitempty"`
}

// NewLocation creates a Location without coordinates.
func NewLocation(id, name string) *Location {
	return &Location{
		ID:   id,
		Name: name,
	}
}

// NewLocationWithCoords creates a Location with coordinates attached.
func NewLocationWithCoords(id, name string, lat, lon float64) *Location {
	return &Location{
		ID:   id,
		Name: name,
		Lat:  &lat,
		Lon:  &lon,
	}
}

// HasCoords reports whether both coordinates are present.
func (l *Location) HasCoords() bool {
	return l.Lat != nil && l.Lon != nil
}

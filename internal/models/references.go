package models

// ReferencesModel carries the related entities mentioned by a response entry
// or list, so clients can resolve identifiers without extra round trips.
type ReferencesModel struct {
	Locations []Location     `json:"locations"`
	Trips     []TripReference `json:"trips"`
}

// TripReference is the lightweight trip representation embedded in response
// references; it omits the visit list.
type TripReference struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// NewEmptyReferences creates a new empty References model with initialized empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Locations: []Location{},
		Trips:     []TripReference{},
	}
}

package models

// SearchRequest describes one itinerary search. MaxTransfers is nil when the
// caller did not supply a bound; the planner substitutes its configured
// default. A present-but-negative value is rejected as invalid rather than
// defaulted.
type SearchRequest struct {
	OriginID      string `json:"originLocationId"`
	DestinationID string `json:"destinationLocationId"`
	MaxTransfers  *int   `json:"maxTransfers,omitempty"`
	Locale        string `json:"locale,omitempty"`
}

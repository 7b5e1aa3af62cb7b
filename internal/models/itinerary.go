package models

import (
	"strconv"
	"strings"
	"time"
)

// Itinerary is a non-empty chain of legs where each leg alights at the
// location the next one boards from. Derived fields are computed once at
// construction; the canonical Key is the deduplication identity of the
// itinerary.
type Itinerary struct {
	Legs          []Leg           `json:"legs"`
	TransferCount int             `json:"transferCount"`
	TotalDuration time.Duration   `json:"totalDuration"`
	WaitTimes     []time.Duration `json:"waitTimes"`
	Key           string          `json:"-"`
}

// NewItinerary assembles an itinerary from legs, computing transfer count,
// total duration, per-transfer waits and the canonical key. The caller is
// responsible for the legs already being a valid chain.
func NewItinerary(legs []Leg) Itinerary {
	itinerary := Itinerary{
		Legs:          legs,
		TransferCount: len(legs) - 1,
		TotalDuration: legs[len(legs)-1].Arrival().Sub(legs[0].Departure()),
		WaitTimes:     make([]time.Duration, 0, len(legs)-1),
		Key:           canonicalKey(legs),
	}

	for i := 1; i < len(legs); i++ {
		itinerary.WaitTimes = append(itinerary.WaitTimes, legs[i].Departure().Sub(legs[i-1].Arrival()))
	}

	return itinerary
}

// OriginDeparture is the departure time of the first leg.
func (it Itinerary) OriginDeparture() TimeOfDay {
	return it.Legs[0].Departure()
}

// FinalArrival is the arrival time of the last leg.
func (it Itinerary) FinalArrival() TimeOfDay {
	return it.Legs[len(it.Legs)-1].Arrival()
}

// canonicalKey serializes the ordered (trip, boarding index, alighting index)
// tuples of the legs. Two itineraries with equal keys describe the same
// journey regardless of which resolver produced them.
func canonicalKey(legs []Leg) string {
	var b strings.Builder
	for i, leg := range legs {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(leg.Trip.ID)
		b.WriteByte('#')
		b.WriteString(strconv.Itoa(leg.BoardIdx))
		b.WriteByte('#')
		b.WriteString(strconv.Itoa(leg.AlightIdx))
	}
	return b.String()
}

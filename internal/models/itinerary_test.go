package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func twoLegJourney() []Leg {
	t2 := NewTrip("T2", "2", []StopVisit{
		TestVisit("A", 0, nil, TestTimePtr(8, 0)),
		TestVisit("B", 1, TestTimePtr(9, 0), nil),
	})
	t3 := NewTrip("T3", "3", []StopVisit{
		TestVisit("B", 0, nil, TestTimePtr(9, 10)),
		TestVisit("C", 1, TestTimePtr(10, 0), nil),
	})

	return []Leg{
		{Trip: t2, BoardIdx: 0, AlightIdx: 1, Kind: MatchDirect},
		{Trip: t3, BoardIdx: 0, AlightIdx: 1, Kind: MatchDirect},
	}
}

func TestNewItineraryDerivedFields(t *testing.T) {
	itinerary := NewItinerary(twoLegJourney())

	assert.Equal(t, 1, itinerary.TransferCount)
	assert.Equal(t, 2*time.Hour, itinerary.TotalDuration)
	assert.Equal(t, []time.Duration{10 * time.Minute}, itinerary.WaitTimes)
	assert.Equal(t, NewTimeOfDay(8, 0, 0), itinerary.OriginDeparture())
	assert.Equal(t, NewTimeOfDay(10, 0, 0), itinerary.FinalArrival())
}

func TestNewItinerarySingleLeg(t *testing.T) {
	legs := twoLegJourney()[:1]
	itinerary := NewItinerary(legs)

	assert.Equal(t, 0, itinerary.TransferCount)
	assert.Equal(t, time.Hour, itinerary.TotalDuration)
	assert.Empty(t, itinerary.WaitTimes)
}

func TestCanonicalKeyIdentifiesJourney(t *testing.T) {
	legs := twoLegJourney()

	first := NewItinerary(legs)
	second := NewItinerary(legs)
	assert.Equal(t, first.Key, second.Key, "same legs must produce the same key")

	shorter := NewItinerary(legs[:1])
	assert.NotEqual(t, first.Key, shorter.Key, "different leg chains must produce different keys")
	assert.Equal(t, "T2#0#1|T3#0#1", first.Key)
}

func TestStopVisitBoardingAndAlightingTimes(t *testing.T) {
	first := TestVisit("A", 0, nil, TestTimePtr(8, 0))
	assert.Equal(t, NewTimeOfDay(8, 0, 0), *first.BoardingTime())
	assert.Equal(t, NewTimeOfDay(8, 0, 0), *first.AlightingTime())

	last := TestVisit("B", 1, TestTimePtr(9, 0), nil)
	assert.Equal(t, NewTimeOfDay(9, 0, 0), *last.BoardingTime())
	assert.Equal(t, NewTimeOfDay(9, 0, 0), *last.AlightingTime())

	interior := TestVisit("C", 2, TestTimePtr(9, 30), TestTimePtr(9, 32))
	assert.Equal(t, NewTimeOfDay(9, 32, 0), *interior.BoardingTime())
	assert.Equal(t, NewTimeOfDay(9, 30, 0), *interior.AlightingTime())
}

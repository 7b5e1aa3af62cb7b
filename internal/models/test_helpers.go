package models

// TestTimePtr returns a pointer to a TimeOfDay built from hour and minute.
// It lives outside the _test files so that tests in other packages can build
// stop visits with the same shorthand.
func TestTimePtr(hour, minute int) *TimeOfDay {
	t := NewTimeOfDay(hour, minute, 0)
	return &t
}

// TestVisit builds a stop visit for tests. Pass nil for the arrival of a
// trip's first visit and for the departure of its last one.
func TestVisit(locationID string, sequence int, arrival, departure *TimeOfDay) StopVisit {
	return StopVisit{
		LocationID: locationID,
		Sequence:   sequence,
		Arrival:    arrival,
		Departure:  departure,
	}
}

package models

import "time"

// CurrentTimeData is the payload of the current-time endpoint.
type CurrentTimeData struct {
	Entry      CurrentTimeEntry `json:"entry"`
	References ReferencesModel  `json:"references"`
}

type CurrentTimeEntry struct {
	ReadableTime string `json:"readableTime"`
	Time         int64  `json:"time"`
}

// NewCurrentTimeData builds the current-time payload for the given instant.
func NewCurrentTimeData(t time.Time) CurrentTimeData {
	return CurrentTimeData{
		Entry: CurrentTimeEntry{
			ReadableTime: t.Format(time.RFC3339),
			Time:         t.UnixNano() / int64(time.Millisecond),
		},
		References: NewEmptyReferences(),
	}
}

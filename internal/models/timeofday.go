package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a clock time expressed as seconds after midnight. The routing
// engine reasons about times of day only; calendar dates and overnight trips
// are resolved upstream, before a snapshot is constructed.
type TimeOfDay int

// NewTimeOfDay builds a TimeOfDay from hour/minute/second components.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(hour*3600 + minute*60 + second)
}

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS" strings.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}

	var components [3]int
	for i, part := range parts {
		value, err := strconv.Atoi(part)
		if err != nil {
			return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
		}
		components[i] = value
	}

	if components[0] < 0 || components[1] < 0 || components[1] > 59 || components[2] < 0 || components[2] > 59 {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}

	return NewTimeOfDay(components[0], components[1], components[2]), nil
}

func (t TimeOfDay) Hour() int   { return int(t) / 3600 }
func (t TimeOfDay) Minute() int { return (int(t) % 3600) / 60 }
func (t TimeOfDay) Second() int { return int(t) % 60 }

// Sub returns the elapsed duration from o to t.
func (t TimeOfDay) Sub(o TimeOfDay) time.Duration {
	return time.Duration(int(t)-int(o)) * time.Second
}

// Add shifts the time of day by d, truncated to whole seconds.
func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	return t + TimeOfDay(d/time.Second)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// MarshalJSON encodes the time as its "HH:MM:SS" form.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

// UnmarshalJSON accepts the "HH:MM:SS" form produced by MarshalJSON.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("invalid time of day %s: %w", data, err)
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

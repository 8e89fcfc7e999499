package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const (
	// MinutesPerDay is the number of minutes in a calendar day.
	MinutesPerDay = 24 * 60

	layout = "15:04"
)

var (
	// ErrInvalidFormat is returned when a string is not a zero-padded "HH:MM" value.
	ErrInvalidFormat = errors.New("invalid time of day format, expected HH:MM")

	// ErrOutOfRange is returned when arithmetic leaves the [00:00, 23:59] range.
	ErrOutOfRange = errors.New("time of day out of range")
)

// TimeOfDay is a local wall-clock time without date or timezone,
// stored as minutes since midnight. It is formatted as "HH:MM" only at the boundary.
type TimeOfDay int

// NewTimeOfDay builds a TimeOfDay from hours and minutes.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %02d:%02d", ErrOutOfRange, hour, minute)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// MustTimeOfDay parses s and panics on error. Intended for constants and seed data.
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTimeOfDay parses a zero-padded 24h "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	parsed, err := time.Parse(layout, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return TimeOfDay(parsed.Hour()*60 + parsed.Minute()), nil
}

// FromTime extracts the wall-clock time of day from t.
func FromTime(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

// Minutes returns the number of minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return int(t)
}

// Hour returns the hour component.
func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

// Minute returns the minute component.
func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

// AddMinutes returns t shifted by m minutes. It never rolls over midnight.
func (t TimeOfDay) AddMinutes(m int) (TimeOfDay, error) {
	result := int(t) + m
	if result < 0 || result >= MinutesPerDay {
		return 0, fmt.Errorf("%w: %s %+d min", ErrOutOfRange, t, m)
	}
	return TimeOfDay(result), nil
}

// Sub returns t - other in minutes.
func (t TimeOfDay) Sub(other TimeOfDay) int {
	return int(t) - int(other)
}

// IsBefore reports whether t is strictly before other.
func (t TimeOfDay) IsBefore(other TimeOfDay) bool {
	return t < other
}

// IsAfter reports whether t is strictly after other.
func (t TimeOfDay) IsAfter(other TimeOfDay) bool {
	return t > other
}

// Valid reports whether t is inside a day.
func (t TimeOfDay) Valid() bool {
	return t >= 0 && int(t) < MinutesPerDay
}

// String formats t as zero-padded "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// MarshalJSON encodes t as "HH:MM".
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes t from "HH:MM".
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// UnmarshalText lets TimeOfDay be used directly in TOML configuration.
func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

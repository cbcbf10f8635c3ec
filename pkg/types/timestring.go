package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString represents a wall-clock time of day in "HH:MM" format.
// It is the canonical representation for slot start times and operating
// hours boundaries across the service.
type TimeString string

var (
	// ErrInvalidFormat возвращается при некорректном формате строки времени
	ErrInvalidFormat = errors.New("invalid time string format, expected HH:MM")

	// ErrOutOfRange возвращается, когда результат операции выходит за пределы суток
	ErrOutOfRange = errors.New("time is out of 24h range")
)

// NewTimeString creates a TimeString from the wall-clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// String returns the "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks the "HH:MM" format and value ranges.
func (t TimeString) Validate() error {
	if len(t) != 5 || t[2] != ':' {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	h, m, ok := t.parts()
	if !ok || h < 0 || h > 23 || m < 0 || m > 59 {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	return nil
}

// Hour returns the hour component (0-23). Result is undefined for
// invalid values, call Validate first.
func (t TimeString) Hour() int {
	h, _, _ := t.parts()
	return h
}

// Minute returns the minute component (0-59).
func (t TimeString) Minute() int {
	_, m, _ := t.parts()
	return m
}

// TotalMinutes returns minutes elapsed since midnight.
func (t TimeString) TotalMinutes() int {
	h, m, _ := t.parts()
	return h*60 + m
}

// IsBefore reports whether t is strictly earlier than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return t.TotalMinutes() < other.TotalMinutes()
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t.TotalMinutes() > other.TotalMinutes()
}

// Equal reports whether t and other denote the same minute.
func (t TimeString) Equal(other TimeString) bool {
	return t.TotalMinutes() == other.TotalMinutes()
}

// AddMinutes returns a new TimeString shifted forward by minutes.
// Fails with ErrOutOfRange when the result crosses midnight.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total := t.TotalMinutes() + minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %s + %dm", ErrOutOfRange, string(t), minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// MinutesSince returns the signed distance in minutes from other to t.
func (t TimeString) MinutesSince(other TimeString) int {
	return t.TotalMinutes() - other.TotalMinutes()
}

// OnDate combines the wall-clock value with a calendar date.
func (t TimeString) OnDate(date time.Time) time.Time {
	h, m, _ := t.parts()
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, date.Location())
}

// Scan implements sql.Scanner. Accepts "HH:MM" and "HH:MM:SS" (postgres TIME).
func (t *TimeString) Scan(value interface{}) error {
	if value == nil {
		*t = ""
		return nil
	}

	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidFormat, value)
	}

	// Postgres TIME приходит как "HH:MM:SS"
	if len(s) > 5 {
		s = s[:5]
	}

	ts, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = ts
	return nil
}

// Value implements driver.Valuer.
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

func (t TimeString) parts() (hour, minute int, ok bool) {
	var h, m int
	if _, err := fmt.Sscanf(string(t), "%02d:%02d", &h, &m); err != nil {
		return 0, 0, false
	}
	return h, m, true
}

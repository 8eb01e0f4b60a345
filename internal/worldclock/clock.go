// Package worldclock compares timezone offsets, projects a local meeting
// time into other timezones and formats live clocks.
package worldclock

import (
	"errors"
	"time"
)

var (
	ErrNonexistentTime  = errors.New("local time does not exist")
	ErrAmbiguousTime    = errors.New("local time is ambiguous")
	ErrInvalidHourStyle = errors.New("invalid hour format")
	ErrInvalidDate      = errors.New("invalid date or time")
)

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Locator resolves timezone identifiers. *tzdb.Database implements it.
type Locator interface {
	Load(id string) (*time.Location, error)
}

var _ Clock = SystemClock{}

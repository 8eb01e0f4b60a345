package worldclock

import (
	"fmt"
	"slices"
	"time"
)

// LocalDateTime is a wall-clock date and time with no timezone attached.
type LocalDateTime struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
}

// FromTime takes the wall clock of t in its own location.
func FromTime(t time.Time) LocalDateTime {
	return LocalDateTime{
		Year:   t.Year(),
		Month:  t.Month(),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

// In interprets the wall clock in loc the way time.Date does: times in a DST
// gap or overlap are normalized to some nearby valid instant.
func (l LocalDateTime) In(loc *time.Location) time.Time {
	return time.Date(l.Year, l.Month, l.Day, l.Hour, l.Minute, l.Second, 0, loc)
}

func (l LocalDateTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", l.Year, int(l.Month), l.Day, l.Hour, l.Minute, l.Second)
}

// Date returns the date part as 2006-01-02.
func (l LocalDateTime) Date() string {
	return fmt.Sprintf("%04d-%02d-%02d", l.Year, int(l.Month), l.Day)
}

// Clock returns the time part as 15:04.
func (l LocalDateTime) Clock() string {
	return fmt.Sprintf("%02d:%02d", l.Hour, l.Minute)
}

func (l LocalDateTime) matches(t time.Time) bool {
	return FromTime(t) == l
}

// Localize attaches loc to the wall clock strictly. It fails with
// ErrNonexistentTime when the wall clock is skipped by a forward DST shift
// and with ErrAmbiguousTime when a backward shift makes it happen twice.
func Localize(l LocalDateTime, loc *time.Location) (time.Time, error) {
	asUTC := l.In(time.UTC)

	// Any valid reading of the wall clock uses one of the offsets in effect
	// around it; transitions are never closer than a day apart in practice.
	var offsets []int
	for _, probe := range []time.Duration{-24 * time.Hour, 0, 24 * time.Hour} {
		_, offset := asUTC.Add(probe).In(loc).Zone()
		if !slices.Contains(offsets, offset) {
			offsets = append(offsets, offset)
		}
	}

	var found []time.Time
	for _, offset := range offsets {
		candidate := asUTC.Add(-time.Duration(offset) * time.Second).In(loc)
		if l.matches(candidate) && !slices.ContainsFunc(found, candidate.Equal) {
			found = append(found, candidate)
		}
	}

	switch len(found) {
	case 0:
		return time.Time{}, fmt.Errorf("%w: %s in %s", ErrNonexistentTime, l, loc)
	case 1:
		return found[0], nil
	default:
		return time.Time{}, fmt.Errorf("%w: %s in %s", ErrAmbiguousTime, l, loc)
	}
}

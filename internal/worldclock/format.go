package worldclock

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout   = "Mon Jan 02, 2006"
	Time24Layout = "15:04:05 MST"
	Time12Layout = "03:04:05 PM MST"
)

type HourStyle int

const (
	Hour12 HourStyle = iota
	Hour24
)

func (h HourStyle) String() string {
	switch h {
	case Hour24:
		return "24-hour"
	default:
		return "12-hour"
	}
}

func (h HourStyle) Is24() bool {
	return h == Hour24
}

func (h HourStyle) layout() string {
	if h == Hour24 {
		return Time24Layout
	}
	return Time12Layout
}

// ParseHourStyle accepts "12", "12h", "12-hour" and the 24-hour equivalents.
func ParseHourStyle(s string) (HourStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "12", "12h", "12-hour":
		return Hour12, nil
	case "24", "24h", "24-hour":
		return Hour24, nil
	default:
		return Hour12, fmt.Errorf("%w: %q", ErrInvalidHourStyle, s)
	}
}

// Lines is a clock face: the date on top, the time and zone abbreviation below.
type Lines struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

func (l Lines) String() string {
	return l.Date + "\n" + l.Time
}

func Format(t time.Time, style HourStyle) Lines {
	return Lines{
		Date: t.Format(DateLayout),
		Time: t.Format(style.layout()),
	}
}

// LiveClock formats the current time in zone id.
func LiveClock(db Locator, clock Clock, id string, style HourStyle) (Lines, error) {
	loc, err := db.Load(id)
	if err != nil {
		return Lines{}, err
	}
	return Format(clock.Now().In(loc), style), nil
}

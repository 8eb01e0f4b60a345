package worldclock

import (
	"fmt"
	"strings"
	"time"
)

const InputDateLayout = "2006-01-02"

var inputClockLayouts = []string{
	"15:04",
	"15:04:05",
	"03:04 PM",
	"3:04 PM",
	"3:04PM",
	"03:04:05 PM",
}

// ParseLocalDateTime reads a meeting date (2006-01-02) and time of day in
// 24-hour or 12-hour notation.
func ParseLocalDateTime(date, clock string) (LocalDateTime, error) {
	d, err := time.Parse(InputDateLayout, strings.TrimSpace(date))
	if err != nil {
		return LocalDateTime{}, fmt.Errorf("%w: date %q", ErrInvalidDate, date)
	}

	clock = strings.ToUpper(strings.TrimSpace(clock))
	for _, layout := range inputClockLayouts {
		c, err := time.Parse(layout, clock)
		if err != nil {
			continue
		}
		return LocalDateTime{
			Year:   d.Year(),
			Month:  d.Month(),
			Day:    d.Day(),
			Hour:   c.Hour(),
			Minute: c.Minute(),
			Second: c.Second(),
		}, nil
	}

	return LocalDateTime{}, fmt.Errorf("%w: time %q", ErrInvalidDate, clock)
}

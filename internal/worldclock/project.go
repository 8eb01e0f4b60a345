package worldclock

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
)

// Projection is one target zone's view of a projected meeting time.
type Projection struct {
	Zone         string
	Time         time.Time
	Offset       int
	Abbreviation string
	// Adjusted is set when the source wall clock fell in a DST gap or
	// overlap and was normalized instead of localized.
	Adjusted bool
}

// Resolve localizes the wall clock in source, falling back to time.Date
// normalization when it is skipped or repeated by a DST transition.
func Resolve(l LocalDateTime, source *time.Location) (t time.Time, adjusted bool) {
	t, err := Localize(l, source)
	if err == nil {
		return t, false
	}

	if !errors.Is(err, ErrNonexistentTime) && !errors.Is(err, ErrAmbiguousTime) {
		log.Warn().Err(err).Msg("Unexpected localization failure")
	}
	log.Debug().Err(err).Msg("Falling back to direct conversion")
	return l.In(source), true
}

// Project converts the wall clock l, read in zone source, into each target
// zone. Results follow the order of targets.
func Project(db Locator, l LocalDateTime, source string, targets []string) ([]Projection, error) {
	sourceLoc, err := db.Load(source)
	if err != nil {
		return nil, err
	}

	instant, adjusted := Resolve(l, sourceLoc)

	projections := make([]Projection, 0, len(targets))
	for _, id := range targets {
		loc, err := db.Load(id)
		if err != nil {
			return nil, err
		}

		t := instant.In(loc)
		abbr, offset := t.Zone()
		projections = append(projections, Projection{
			Zone:         id,
			Time:         t,
			Offset:       offset,
			Abbreviation: abbr,
			Adjusted:     adjusted,
		})
	}

	return projections, nil
}

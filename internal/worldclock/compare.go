package worldclock

import (
	"time"

	"github.com/rs/zerolog/log"
)

// OffsetAt returns the UTC offset of zone id at instant at, in seconds east
// of UTC.
func OffsetAt(db Locator, at time.Time, id string) (int, error) {
	loc, err := db.Load(id)
	if err != nil {
		return 0, err
	}
	_, offset := at.In(loc).Zone()
	return offset, nil
}

// OffsetsEqual reports whether zones a and b have the same UTC offset at
// instant at. Zones can agree in winter and differ in summer.
func OffsetsEqual(db Locator, at time.Time, a, b string) (bool, error) {
	offsetA, err := OffsetAt(db, at, a)
	if err != nil {
		return false, err
	}
	offsetB, err := OffsetAt(db, at, b)
	if err != nil {
		return false, err
	}
	return offsetA == offsetB, nil
}

// DefaultZones picks the zones shown at startup: local first, then every
// reference zone whose offset at instant at differs from local's, capped at
// limit entries in total. A limit below 1 counts as 1, so local is always
// returned. Unknown reference zones are skipped.
func DefaultZones(db Locator, local string, reference []string, at time.Time, limit int) ([]string, error) {
	if _, err := db.Load(local); err != nil {
		return nil, err
	}

	zones := []string{local}
	for _, id := range reference {
		if len(zones) >= limit {
			break
		}

		equal, err := OffsetsEqual(db, at, id, local)
		if err != nil {
			log.Warn().Err(err).Str("zone", id).Msg("Skipping reference timezone")
			continue
		}
		if equal {
			continue
		}
		zones = append(zones, id)
	}

	return zones, nil
}

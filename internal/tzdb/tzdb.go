// Package tzdb loads IANA timezones, lists the identifiers available on the
// host and detects the host's own zone.
package tzdb

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	_ "time/tzdata" // fallback for hosts without a zoneinfo directory

	lru "github.com/hashicorp/golang-lru/v2"
)

const DefaultCacheSize = 128

var ErrUnknownZone = errors.New("unknown timezone")

type Database struct {
	locations *lru.Cache[string, *time.Location]

	cacheSize int
	local     string
	dirs      []string

	zonesOnce sync.Once
	zones     []string
}

type Option func(*Database)

// WithCacheSize bounds the number of loaded locations kept in memory.
func WithCacheSize(n int) Option {
	return func(d *Database) {
		d.cacheSize = n
	}
}

// WithLocalZone overrides host zone detection.
func WithLocalZone(id string) Option {
	return func(d *Database) {
		d.local = strings.TrimSpace(id)
	}
}

// WithZoneDirs replaces the zoneinfo directories scanned by Zones.
func WithZoneDirs(dirs ...string) Option {
	return func(d *Database) {
		d.dirs = dirs
	}
}

func New(opts ...Option) (*Database, error) {
	d := &Database{
		cacheSize: DefaultCacheSize,
		dirs:      zoneDirs,
	}
	for _, opt := range opts {
		opt(d)
	}

	locations, err := lru.New[string, *time.Location](d.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create location cache: %w", err)
	}
	d.locations = locations

	if d.local != "" {
		if _, err := d.Load(d.local); err != nil {
			return nil, fmt.Errorf("invalid local timezone override: %w", err)
		}
	}

	return d, nil
}

// Load returns the location for a timezone identifier such as "US/Eastern".
// "Local" is rejected; use LocalName to resolve the host zone first.
func (d *Database) Load(id string) (*time.Location, error) {
	id = strings.TrimSpace(id)
	if id == "" || id == "Local" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, id)
	}

	if loc, ok := d.locations.Get(id); ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, id)
	}

	d.locations.Add(id, loc)
	return loc, nil
}

// Valid reports whether id names a loadable timezone.
func (d *Database) Valid(id string) bool {
	_, err := d.Load(id)
	return err == nil
}

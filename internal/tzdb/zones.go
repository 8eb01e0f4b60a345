package tzdb

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/rs/zerolog/log"
)

var zoneDirs = []string{
	"/usr/share/zoneinfo/",
	"/usr/lib/zoneinfo/",
	"/usr/share/lib/zoneinfo/",
}

// Not zones, or duplicate trees of the main one.
var skippedZonePaths = []string{
	"posix/",
	"right/",
	"localtime",
	"posixrules",
	"Factory",
}

type Zone struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type Page struct {
	Items  []Zone `json:"items"`
	Total  int    `json:"total"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
	Page   int    `json:"page"`
	Pages  int    `json:"pages"`
}

// Zones returns every timezone identifier available, sorted. The list is
// built once per Database.
func (d *Database) Zones() []string {
	d.zonesOnce.Do(func() {
		d.zones = scanZoneDirs(d.dirs)
		if len(d.zones) == 0 {
			log.Warn().Strs("dirs", d.dirs).Msg("No zoneinfo directory found, using curated timezone list")
			d.zones = curatedIDs()
			slices.Sort(d.zones)
		}
		log.Debug().Int("count", len(d.zones)).Msg("Timezone list loaded")
	})
	return d.zones
}

func scanZoneDirs(dirs []string) []string {
	seen := make(map[string]bool)
	var zones []string

	for _, dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			continue
		}

		err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if entry.IsDir() {
				return nil
			}

			name, err := filepath.Rel(dir, path)
			if err != nil {
				return nil
			}
			name = filepath.ToSlash(name)
			if skipZonePath(name) || seen[name] {
				return nil
			}

			// zone.tab, leapseconds, tzdata.zi and friends fail here
			if _, err := time.LoadLocation(name); err != nil {
				return nil
			}

			seen[name] = true
			zones = append(zones, name)
			return nil
		})
		if err != nil {
			log.Warn().Err(err).Str("dir", dir).Msg("Failed to scan zoneinfo directory")
		}
	}

	slices.Sort(zones)
	return zones
}

func skipZonePath(name string) bool {
	for _, prefix := range skippedZonePaths {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	// Uppercase-free names at the top level are data files, e.g. "leapseconds".
	return !strings.Contains(name, "/") && strings.ToLower(name) == name
}

// Search ranks zones against query with a case-insensitive fuzzy match and
// returns one page of results. An empty query pages through all zones.
func (d *Database) Search(query string, page, limit int) *Page {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	zones := d.Zones()
	offset := (page - 1) * limit

	var ids []string
	query = strings.TrimSpace(query)
	if query != "" {
		matches := fuzzy.RankFindNormalizedFold(query, zones)
		sort.Sort(matches)
		ids = make([]string, len(matches))
		for i, m := range matches {
			ids[i] = zones[m.OriginalIndex]
		}
	} else {
		ids = zones
	}

	total := len(ids)
	if offset > total {
		offset = total
	}
	end := min(offset+limit, total)

	items := make([]Zone, 0, end-offset)
	for _, id := range ids[offset:end] {
		items = append(items, Zone{ID: id, Label: Label(id)})
	}

	return &Page{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
		Page:   page,
		Pages:  (total + limit - 1) / limit,
	}
}

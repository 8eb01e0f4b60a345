package tzdb

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/thlib/go-timezone-local/tzlocal"
)

var (
	runtimeTZ    = tzlocal.RuntimeTZ
	timezoneFile = "/etc/timezone"
)

// LocalName returns the identifier of the host's timezone. The override
// given to New wins; otherwise TZ and the /etc/localtime link (through
// tzlocal), then /etc/timezone are tried, and UTC is the last resort.
func (d *Database) LocalName() string {
	if d.local != "" {
		return d.local
	}
	return detectLocalName()
}

func detectLocalName() string {
	name, err := runtimeTZ()
	if err == nil {
		if name = canonicalName(name); loadable(name) {
			return name
		}
		log.Warn().Str("zone", name).Msg("Host timezone is not a known timezone, ignoring it")
	} else {
		log.Debug().Err(err).Msg("No timezone in TZ or /etc/localtime")
	}

	// /etc/localtime may be a copy rather than a link.
	if data, err := os.ReadFile(timezoneFile); err == nil {
		name := canonicalName(string(data))
		if name != "" && loadable(name) {
			return name
		}
	}

	log.Debug().Msg("Could not detect host timezone, using UTC")
	return "UTC"
}

// canonicalName strips the posix/ and right/ trees: "posix/Asia/Tokyo" is
// "Asia/Tokyo".
func canonicalName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimPrefix(name, "posix/")
	return strings.TrimPrefix(name, "right/")
}

func loadable(name string) bool {
	if name == "" || name == "Local" {
		return false
	}
	_, err := time.LoadLocation(name)
	return err == nil
}

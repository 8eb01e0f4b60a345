package tzdb

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Label turns an identifier into a display name, e.g.
// "America/Argentina/Buenos_Aires" becomes "Buenos Aires".
func Label(id string) string {
	name := id[strings.LastIndex(id, "/")+1:]
	name = strings.ReplaceAll(name, "_", " ")
	// A Caser keeps state, so one per call.
	return cases.Title(language.English, cases.NoLower).String(name)
}

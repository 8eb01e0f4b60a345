package constants

import (
	"embed"
	"fmt"
	"html/template"
	"slices"

	"worldclock/internal/tzdb"
)

const (
	Base      = "base"
	templates = "templates/"

	BasePath  = templates + Base + ".html"
	AboutPath = templates + "about.html"
	ErrorPath = templates + "error.html"
	HomePath  = templates + "home.html"

	AboutMarkdownPath = templates + "about.md"
)

//go:embed templates
var Files embed.FS

var (
	TemplatePaths = []string{
		AboutPath,
		ErrorPath,
		HomePath,
	}

	FuncMap = template.FuncMap{
		"hasZone":  func(zones []string, id string) bool { return slices.Contains(zones, id) },
		"label":    tzdb.Label,
		"safeHTML": func(s string) template.HTML { return template.HTML(s) },
		"ms":       func(seconds int) int { return seconds * 1000 },
	}

	Tmpl = make(map[string]*template.Template)
)

// LoadTemplates parses every page together with the base layout.
func LoadTemplates() error {
	for _, path := range TemplatePaths {
		t, err := template.New(Base).Funcs(FuncMap).ParseFS(Files, path, BasePath)
		if err != nil {
			return fmt.Errorf("failed to parse template %s: %w", path, err)
		}
		Tmpl[path] = t
	}
	return nil
}

func AboutMarkdown() ([]byte, error) {
	return Files.ReadFile(AboutMarkdownPath)
}

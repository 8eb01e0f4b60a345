package constants

import (
	"io/fs"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTemplates(t *testing.T) {
	require.NoError(t, LoadTemplates())
	for _, path := range TemplatePaths {
		assert.Contains(t, Tmpl, path)
	}
}

func TestFuncMapIsUsed(t *testing.T) {
	var sources strings.Builder
	err := fs.WalkDir(Files, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".html") {
			return err
		}
		data, err := Files.ReadFile(path)
		sources.Write(data)
		return err
	})
	require.NoError(t, err)

	for name := range FuncMap {
		called := regexp.MustCompile(`[{(]\s*` + name + `\s`)
		assert.Regexp(t, called, sources.String(), "template function %q is never called", name)
	}
}

func TestHasZone(t *testing.T) {
	hasZone := FuncMap["hasZone"].(func([]string, string) bool)
	assert.True(t, hasZone([]string{"UTC", "Asia/Tokyo"}, "Asia/Tokyo"))
	assert.False(t, hasZone([]string{"UTC"}, "Europe/Berlin"))
	assert.False(t, hasZone(nil, "UTC"))
}

func TestAboutMarkdown(t *testing.T) {
	content, err := AboutMarkdown()
	require.NoError(t, err)
	assert.Contains(t, string(content), "# About World Clock")
}

package renderers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func convert(t *testing.T, input string) string {
	t.Helper()
	var buf strings.Builder
	require.NoError(t, New().Convert([]byte(input), &buf))
	return buf.String()
}

func TestLinkRenderer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "external with title",
			input: `[IANA](https://www.iana.org/time-zones "Time Zone Database")`,
			want:  `<a href="https://www.iana.org/time-zones" title="Time Zone Database" target="_blank" rel="noreferrer noopener">IANA</a>`,
		},
		{
			name:  "external without title",
			input: `[tz](http://example.com)`,
			want:  `<a href="http://example.com" target="_blank" rel="noreferrer noopener">tz</a>`,
		},
		{
			name:  "internal",
			input: `[clocks](/api/clocks)`,
			want:  `<a href="/api/clocks">clocks</a>`,
		},
		{
			name:  "escaped destination",
			input: `[search](/api/zones?q=new&limit=5)`,
			want:  `<a href="/api/zones?q=new&amp;limit=5">search</a>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, convert(t, tt.input), tt.want)
		})
	}
}

func TestNew(t *testing.T) {
	out := convert(t, "# World Clock :clock3:\n\n| a | b |\n|---|---|\n| 1 | 2 |\n")

	assert.Contains(t, out, `<h1 id="world-clock`)
	assert.Contains(t, out, "<table>")
	assert.NotContains(t, out, ":clock3:")
}

package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worldclock/internal/config"
	"worldclock/internal/tzdb"
	"worldclock/internal/worldclock"
	"worldclock/internal/worldclock/clocktest"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// useTestState points the command globals at a fixed clock and a database
// with the curated zone list, restoring them when the test ends.
func useTestState(t *testing.T) {
	t.Helper()

	oldCfg, oldDB, oldClock := cfg, db, clock
	t.Cleanup(func() {
		cfg, db, clock = oldCfg, oldDB, oldClock
	})

	var err error
	db, err = tzdb.New(tzdb.WithZoneDirs(t.TempDir()), tzdb.WithLocalZone("Europe/Paris"))
	require.NoError(t, err)

	clock = clocktest.NewFakeClock(time.Date(2024, 7, 1, 13, 0, 0, 0, time.UTC))
	cfg = &config.Config{
		Address:        ":0",
		Environment:    "development",
		SiteName:       "World Clock",
		ReferenceZones: []string{"US/Eastern", "US/Pacific", "Europe/Paris", "Asia/Kolkata", "Asia/Tokyo"},
		ClockCount:     5,
		HourFormat:     "12-hour",
		RefreshSeconds: 1,
		ZoneCacheSize:  16,
	}
}

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	return cmd, &out
}

func TestFormatOffset(t *testing.T) {
	assert.Equal(t, "UTC+00:00", formatOffset(0))
	assert.Equal(t, "UTC+05:30", formatOffset(5*3600+30*60))
	assert.Equal(t, "UTC-04:00", formatOffset(-4*3600))
}

func TestRunClocks(t *testing.T) {
	useTestState(t)

	t.Run("12-hour", func(t *testing.T) {
		cmd, out := newTestCommand()
		require.NoError(t, runClocks(cmd, []string{"UTC", "Asia/Tokyo"}))
		assert.Contains(t, out.String(), "01:00:00 PM UTC")
		assert.Contains(t, out.String(), "10:00:00 PM JST")
	})

	t.Run("24-hour", func(t *testing.T) {
		clocks24h = true
		t.Cleanup(func() { clocks24h = false })

		cmd, out := newTestCommand()
		require.NoError(t, runClocks(cmd, []string{"UTC"}))
		assert.Contains(t, out.String(), "13:00:00 UTC")
	})

	t.Run("default zones", func(t *testing.T) {
		cmd, out := newTestCommand()
		require.NoError(t, runClocks(cmd, nil))
		assert.Contains(t, out.String(), "03:00:00 PM CEST")
		assert.Contains(t, out.String(), "US/Eastern")
	})

	t.Run("unknown zone", func(t *testing.T) {
		cmd, _ := newTestCommand()
		assert.ErrorIs(t, runClocks(cmd, []string{"Nowhere"}), tzdb.ErrUnknownZone)
	})
}

func TestRunProject(t *testing.T) {
	useTestState(t)

	setFlags := func(t *testing.T, date, clockTime, source string, use24 bool) {
		projectDate, projectTime, projectSource, project24h = date, clockTime, source, use24
		t.Cleanup(func() {
			projectDate, projectTime, projectSource, project24h = "", "", "", false
		})
	}

	t.Run("explicit meeting", func(t *testing.T) {
		setFlags(t, "2024-07-01", "9:00 AM", "America/New_York", true)

		cmd, out := newTestCommand()
		require.NoError(t, runProject(cmd, []string{"Europe/Paris", "Asia/Tokyo"}))
		assert.Contains(t, out.String(), "Meeting at 2024-07-01 09:00 (America/New_York)")
		assert.Contains(t, out.String(), "15:00:00 CEST")
		assert.Contains(t, out.String(), "22:00:00 JST")
	})

	t.Run("defaults to now in local zone", func(t *testing.T) {
		cmd, out := newTestCommand()
		require.NoError(t, runProject(cmd, []string{"UTC"}))
		assert.Contains(t, out.String(), "Meeting at 2024-07-01 15:00 (Europe/Paris)")
		assert.Contains(t, out.String(), "01:00:00 PM UTC")
	})

	t.Run("dst gap", func(t *testing.T) {
		setFlags(t, "2024-03-31", "02:30", "Europe/Paris", false)

		cmd, out := newTestCommand()
		require.NoError(t, runProject(cmd, []string{"UTC"}))
		assert.Contains(t, out.String(), "adjusted")
	})

	t.Run("invalid input", func(t *testing.T) {
		setFlags(t, "2024-02-30", "10:00", "", false)
		cmd, _ := newTestCommand()
		assert.ErrorIs(t, runProject(cmd, []string{"UTC"}), worldclock.ErrInvalidDate)

		projectDate, projectSource = "", "Nowhere"
		assert.ErrorIs(t, runProject(cmd, []string{"UTC"}), tzdb.ErrUnknownZone)
	})
}

func TestRunZones(t *testing.T) {
	useTestState(t)

	cmd, out := newTestCommand()
	require.NoError(t, runZones(cmd, []string{"tokyo"}))
	assert.Contains(t, out.String(), "Asia/Tokyo")
	assert.Contains(t, out.String(), "ZONE")
	assert.Contains(t, out.String(), "page 1 of 1")
}

func TestRunEqual(t *testing.T) {
	useTestState(t)
	t.Cleanup(func() { equalAt = "" })

	cmd, out := newTestCommand()
	require.NoError(t, runEqual(cmd, []string{"Europe/London", "UTC"}))
	assert.Equal(t, "Europe/London (UTC+01:00) and UTC (UTC+00:00) differ at 2024-07-01T13:00:00Z\n", out.String())

	equalAt = "2024-01-15T12:00:00Z"
	cmd, out = newTestCommand()
	require.NoError(t, runEqual(cmd, []string{"Europe/London", "UTC"}))
	assert.Contains(t, out.String(), "equal at 2024-01-15T12:00:00Z")

	equalAt = "noon"
	assert.ErrorContains(t, runEqual(cmd, []string{"Europe/London", "UTC"}), "RFC 3339")

	equalAt = ""
	assert.ErrorIs(t, runEqual(cmd, []string{"Europe/London", "Nowhere"}), tzdb.ErrUnknownZone)
	assert.ErrorIs(t, runEqual(cmd, []string{"Nowhere", "UTC"}), tzdb.ErrUnknownZone)

	cmd, out = newTestCommand()
	require.NoError(t, runEqual(cmd, []string{"Asia/Kolkata", "Asia/Colombo"}))
	assert.Equal(t, "Asia/Kolkata (UTC+05:30) and Asia/Colombo (UTC+05:30) equal at 2024-07-01T13:00:00Z\n", out.String())
}

func TestNewRouter(t *testing.T) {
	useTestState(t)

	r, err := newRouter()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/clocks", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Contains(t, w.Body.String(), "Europe/Paris")
}

func TestSetup(t *testing.T) {
	oldCfg, oldDB := cfg, db
	t.Cleanup(func() { cfg, db = oldCfg, oldDB })

	t.Setenv("LOCAL_TIMEZONE", "Asia/Tokyo")
	t.Setenv("ZONE_CACHE_SIZE", "8")
	t.Setenv("LOG_LEVEL", "warn")

	require.NoError(t, setup(rootCmd, nil))
	assert.Equal(t, 8, cfg.ZoneCacheSize)
	assert.Equal(t, "Asia/Tokyo", db.LocalName())

	t.Setenv("LOCAL_TIMEZONE", "Nowhere")
	assert.ErrorIs(t, setup(rootCmd, nil), tzdb.ErrUnknownZone)
}

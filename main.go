package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"worldclock/internal/config"
	"worldclock/internal/logger"
	"worldclock/internal/tzdb"
	"worldclock/internal/worldclock"
)

var (
	// Global flags
	verbose bool

	cfg   *config.Config
	db    *tzdb.Database
	clock worldclock.Clock = worldclock.SystemClock{}
)

var rootCmd = &cobra.Command{
	Use:   "worldclock",
	Short: "Clocks for several timezones side by side",
	Long: `worldclock shows the current time in several timezones and projects a
meeting time, given in one timezone, into all of them.

Run without arguments to start the web interface.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runServe,
}

// setup loads configuration, the logger and the timezone database shared by
// every command.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	if !cfg.EnvFile {
		log.Warn().Msg(".env file not found, using system environment variables")
	}

	db, err = tzdb.New(
		tzdb.WithCacheSize(cfg.ZoneCacheSize),
		tzdb.WithLocalZone(cfg.LocalTimezone),
	)
	if err != nil {
		return errors.Wrap(err, "failed to open timezone database")
	}

	log.Debug().Str("local", db.LocalName()).Msg("Timezone database ready")
	return nil
}

// newBoard builds a board over zones, or over the default selection when
// zones is empty.
func newBoard(zones []string, style worldclock.HourStyle) (*worldclock.Board, error) {
	local := db.LocalName()
	if len(zones) == 0 {
		var err error
		zones, err = worldclock.DefaultZones(db, local, cfg.ReferenceZones, clock.Now(), cfg.ClockCount)
		if err != nil {
			return nil, err
		}
	}
	return worldclock.NewBoard(db, clock, local, zones, style)
}

func hourStyle(use24 bool) worldclock.HourStyle {
	if use24 {
		return worldclock.Hour24
	}
	return cfg.HourStyle()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(clocksCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(zonesCmd)
	rootCmd.AddCommand(equalCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.ErrorWithStack(err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

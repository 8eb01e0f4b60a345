package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"worldclock/internal/terminal"
	"worldclock/internal/worldclock"
)

var (
	projectDate   string
	projectTime   string
	projectSource string
	project24h    bool
)

var projectCmd = &cobra.Command{
	Use:   "project [zones...]",
	Short: "Show a meeting time in several timezones",
	Long: `Reads a date and time in the source timezone (the local one by default)
and shows the same instant in each timezone given. A missing date or time
defaults to now.

Example:
  worldclock project --date 2024-07-01 --time "9:00 AM" --source US/Eastern Europe/Paris Asia/Tokyo`,
	RunE: runProject,
}

func runProject(cmd *cobra.Command, args []string) error {
	source := projectSource
	if source == "" {
		source = db.LocalName()
	}
	loc, err := db.Load(source)
	if err != nil {
		return err
	}

	now := worldclock.FromTime(clock.Now().In(loc))
	date, clockTime := projectDate, projectTime
	if date == "" {
		date = now.Date()
	}
	if clockTime == "" {
		clockTime = now.Clock()
	}
	meeting, err := worldclock.ParseLocalDateTime(date, clockTime)
	if err != nil {
		return err
	}

	zones := args
	if len(zones) == 0 {
		zones, err = worldclock.DefaultZones(db, source, cfg.ReferenceZones, meeting.In(loc), cfg.ClockCount)
		if err != nil {
			return err
		}
	}

	projections, err := worldclock.Project(db, meeting, source, zones)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("Meeting at %s %s (%s)", meeting.Date(), meeting.Clock(), source)
	fmt.Fprintln(cmd.OutOrStdout(), terminal.Row(title, worldclock.ProjectionColumns(projections, hourStyle(project24h))))
	return nil
}

func init() {
	projectCmd.Flags().StringVar(&projectDate, "date", "", "Meeting date, YYYY-MM-DD")
	projectCmd.Flags().StringVar(&projectTime, "time", "", `Meeting time, "15:04" or "3:04 PM"`)
	projectCmd.Flags().StringVarP(&projectSource, "source", "s", "", "Timezone the meeting time is given in (default: local)")
	projectCmd.Flags().BoolVar(&project24h, "24h", false, "Use the 24-hour format")
}

package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"worldclock/internal/worldclock"
)

var equalAt string

var equalCmd = &cobra.Command{
	Use:   "equal <zone> <zone>",
	Short: "Compare the UTC offsets of two timezones",
	Long: `Reports whether two timezones have the same UTC offset at an instant,
now by default. Zones can agree in winter and differ in summer.

Example:
  worldclock equal Europe/London UTC --at 2024-01-15T12:00:00Z`,
	Args: cobra.ExactArgs(2),
	RunE: runEqual,
}

// formatOffset renders seconds east of UTC as "UTC+05:30".
func formatOffset(seconds int) string {
	sign := '+'
	if seconds < 0 {
		sign, seconds = '-', -seconds
	}
	return fmt.Sprintf("UTC%c%02d:%02d", sign, seconds/3600, seconds%3600/60)
}

func runEqual(cmd *cobra.Command, args []string) error {
	at := clock.Now()
	if equalAt != "" {
		parsed, err := time.Parse(time.RFC3339, equalAt)
		if err != nil {
			return errors.Wrap(err, "--at must be RFC 3339")
		}
		at = parsed
	}

	a, b := args[0], args[1]
	offsetA, err := worldclock.OffsetAt(db, at, a)
	if err != nil {
		return err
	}
	offsetB, err := worldclock.OffsetAt(db, at, b)
	if err != nil {
		return err
	}

	verdict := "differ"
	if offsetA == offsetB {
		verdict = "equal"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) and %s (%s) %s at %s\n",
		a, formatOffset(offsetA), b, formatOffset(offsetB), verdict, at.UTC().Format(time.RFC3339))
	return nil
}

func init() {
	equalCmd.Flags().StringVar(&equalAt, "at", "", "Instant to compare at, RFC 3339 (default: now)")
}

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"worldclock/internal/terminal"
)

var (
	clocks24h   bool
	clocksWatch bool
)

var clocksCmd = &cobra.Command{
	Use:   "clocks [zones...]",
	Short: "Print the current time in several timezones",
	Long: `Prints the current time in each timezone given, or in the default
selection: the local timezone plus the reference zones whose UTC offset
differs from it.

Example:
  worldclock clocks US/Eastern Europe/Paris Asia/Tokyo --24h`,
	RunE: runClocks,
}

func runClocks(cmd *cobra.Command, args []string) error {
	board, err := newBoard(args, hourStyle(clocks24h))
	if err != nil {
		return err
	}

	if clocksWatch {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return terminal.Watch(ctx, board, cmd.OutOrStdout(), cfg.RefreshInterval())
	}

	live, err := board.Live()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), terminal.Row("Now", live))
	return nil
}

func init() {
	clocksCmd.Flags().BoolVar(&clocks24h, "24h", false, "Use the 24-hour format")
	clocksCmd.Flags().BoolVarP(&clocksWatch, "watch", "w", false, "Keep redrawing the clocks and the meeting row")
}

// Package terminal draws clock boards for the command line.
package terminal

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"worldclock/internal/tzdb"
	"worldclock/internal/worldclock"
)

const clearScreen = "\033[H\033[2J"

var (
	Accent  = lipgloss.Color("#8BC34A")
	Muted   = lipgloss.Color("#6B7280")
	Warning = lipgloss.Color("#FFC107")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Accent).
			MarginBottom(1)

	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Muted).
			Padding(0, 1).
			MarginRight(1)

	labelStyle    = lipgloss.NewStyle().Bold(true)
	zoneStyle     = lipgloss.NewStyle().Foreground(Muted)
	adjustedStyle = lipgloss.NewStyle().Foreground(Warning).Italic(true)
)

// AdjustedNote marks a column whose meeting time fell in a daylight saving
// transition.
const AdjustedNote = "adjusted (DST)"

func column(c worldclock.Column) string {
	lines := []string{
		labelStyle.Render(tzdb.Label(c.Zone)),
		zoneStyle.Render(c.Zone),
		"",
		c.Lines.Date,
		c.Lines.Time,
	}
	if c.Adjusted {
		lines = append(lines, adjustedStyle.Render(AdjustedNote))
	}
	return columnStyle.Render(strings.Join(lines, "\n"))
}

// Row renders columns side by side under a title.
func Row(title string, columns []worldclock.Column) string {
	boxes := make([]string, len(columns))
	for i, c := range columns {
		boxes[i] = column(c)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		lipgloss.JoinHorizontal(lipgloss.Top, boxes...),
	)
}

// Frame renders the live clocks of board and, below them, its meeting time
// projected into every column.
func Frame(board *worldclock.Board) (string, error) {
	live, err := board.Live()
	if err != nil {
		return "", err
	}
	projected, err := board.Projected()
	if err != nil {
		return "", err
	}

	meeting := board.Meeting()
	title := fmt.Sprintf("Meeting at %s %s (%s)", meeting.Date(), meeting.Clock(), board.Local())
	return lipgloss.JoinVertical(lipgloss.Left,
		Row("Now", live),
		"",
		Row(title, projected),
	) + "\n", nil
}

// Watch redraws board on w every interval until ctx is done.
func Watch(ctx context.Context, board *worldclock.Board, w io.Writer, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("refresh interval must be positive, got %s", interval)
	}

	draw := func() error {
		frame, err := Frame(board)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, clearScreen+frame)
		return err
	}

	if err := draw(); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("Stopped watching clocks")
			return nil
		case <-ticker.C:
			if err := draw(); err != nil {
				return err
			}
		}
	}
}

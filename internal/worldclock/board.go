package worldclock

import (
	"fmt"
	"sync"
)

// Column is what one clock column shows: the zone and its rendered lines.
type Column struct {
	Zone     string `json:"zone"`
	Lines    Lines  `json:"lines"`
	Adjusted bool   `json:"adjusted,omitempty"`
}

// Board holds the selected zones, the hour style and the meeting time, and
// renders live and projected columns from them. The meeting time is read in
// the local zone. A Board is safe for concurrent use.
type Board struct {
	db    Locator
	clock Clock
	local string

	mu      sync.RWMutex
	zones   []string
	style   HourStyle
	meeting LocalDateTime
}

// NewBoard validates every zone and sets the meeting time to now.
func NewBoard(db Locator, clock Clock, local string, zones []string, style HourStyle) (*Board, error) {
	for _, id := range append([]string{local}, zones...) {
		if _, err := db.Load(id); err != nil {
			return nil, err
		}
	}

	b := &Board{
		db:    db,
		clock: clock,
		local: local,
		zones: append([]string(nil), zones...),
		style: style,
	}
	b.MeetingNow()
	return b, nil
}

func (b *Board) Local() string {
	return b.local
}

func (b *Board) Zones() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]string(nil), b.zones...)
}

func (b *Board) Style() HourStyle {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.style
}

func (b *Board) Meeting() LocalDateTime {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.meeting
}

// SetZone replaces the zone shown in column i.
func (b *Board) SetZone(i int, id string) error {
	if _, err := b.db.Load(id); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if i < 0 || i >= len(b.zones) {
		return fmt.Errorf("column %d out of range [0, %d)", i, len(b.zones))
	}
	b.zones[i] = id
	return nil
}

func (b *Board) SetStyle(style HourStyle) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.style = style
}

func (b *Board) SetMeeting(l LocalDateTime) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.meeting = l
}

// MeetingNow sets the meeting time to the current local wall clock.
func (b *Board) MeetingNow() {
	loc, err := b.db.Load(b.local)
	if err != nil {
		// NewBoard validated local already.
		return
	}
	now := FromTime(b.clock.Now().In(loc))
	now.Second = 0
	b.SetMeeting(now)
}

// Live renders the current time in every column.
func (b *Board) Live() ([]Column, error) {
	b.mu.RLock()
	zones, style := append([]string(nil), b.zones...), b.style
	b.mu.RUnlock()

	now := b.clock.Now()
	columns := make([]Column, 0, len(zones))
	for _, id := range zones {
		loc, err := b.db.Load(id)
		if err != nil {
			return nil, err
		}
		columns = append(columns, Column{Zone: id, Lines: Format(now.In(loc), style)})
	}
	return columns, nil
}

// Projected renders the meeting time in every column.
func (b *Board) Projected() ([]Column, error) {
	b.mu.RLock()
	zones, style, meeting := append([]string(nil), b.zones...), b.style, b.meeting
	b.mu.RUnlock()

	projections, err := Project(b.db, meeting, b.local, zones)
	if err != nil {
		return nil, err
	}
	return ProjectionColumns(projections, style), nil
}

func ProjectionColumns(projections []Projection, style HourStyle) []Column {
	columns := make([]Column, len(projections))
	for i, p := range projections {
		columns[i] = Column{
			Zone:     p.Zone,
			Lines:    Format(p.Time, style),
			Adjusted: p.Adjusted,
		}
	}
	return columns
}

package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"worldclock/internal/tzdb"
	"worldclock/internal/worldclock"
)

type clockJSON struct {
	Zone  string `json:"zone"`
	Label string `json:"label"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

type projectionJSON struct {
	clockJSON
	Instant      string `json:"instant"`
	Offset       int    `json:"offset"`
	Abbreviation string `json:"abbreviation"`
	Adjusted     bool   `json:"adjusted"`
}

// zonesParam reads a comma separated zone list, defaulting to the board's.
func (h *Handler) zonesParam(c *gin.Context) []string {
	raw := strings.TrimSpace(c.Query("zones"))
	if raw == "" {
		return h.board.Zones()
	}

	var zones []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			zones = append(zones, id)
		}
	}
	return zones
}

func (h *Handler) styleParam(c *gin.Context) (worldclock.HourStyle, error) {
	format := c.Query("format")
	if format == "" {
		return h.board.Style(), nil
	}
	return worldclock.ParseHourStyle(format)
}

// meetingParam reads date and time, each defaulting to the board's meeting.
func (h *Handler) meetingParam(c *gin.Context) (worldclock.LocalDateTime, error) {
	meeting := h.board.Meeting()
	date, clock := c.Query("date"), c.Query("time")
	if date == "" && clock == "" {
		return meeting, nil
	}
	if date == "" {
		date = meeting.Date()
	}
	if clock == "" {
		clock = meeting.Clock()
	}
	return worldclock.ParseLocalDateTime(date, clock)
}

// liveColumns renders the current time in every zone.
func (h *Handler) liveColumns(zones []string, style worldclock.HourStyle) ([]worldclock.Column, error) {
	columns := make([]worldclock.Column, 0, len(zones))
	for _, id := range zones {
		lines, err := worldclock.LiveClock(h.db, h.clock, id, style)
		if err != nil {
			return nil, err
		}
		columns = append(columns, worldclock.Column{Zone: id, Lines: lines})
	}
	return columns, nil
}

func (h *Handler) Clocks(c *gin.Context) {
	style, err := h.styleParam(c)
	if err != nil {
		h.apiError(c, err)
		return
	}

	columns, err := h.liveColumns(h.zonesParam(c), style)
	if err != nil {
		h.apiError(c, err)
		return
	}

	clocks := make([]clockJSON, len(columns))
	for i, col := range columns {
		clocks[i] = clockJSON{Zone: col.Zone, Label: tzdb.Label(col.Zone), Date: col.Lines.Date, Time: col.Lines.Time}
	}

	c.JSON(http.StatusOK, gin.H{
		"format": style.String(),
		"clocks": clocks,
	})
}

func (h *Handler) Project(c *gin.Context) {
	style, err := h.styleParam(c)
	if err != nil {
		h.apiError(c, err)
		return
	}

	meeting, err := h.meetingParam(c)
	if err != nil {
		h.apiError(c, err)
		return
	}

	source := c.DefaultQuery("source", h.board.Local())
	projections, err := worldclock.Project(h.db, meeting, source, h.zonesParam(c))
	if err != nil {
		h.apiError(c, err)
		return
	}

	results := make([]projectionJSON, len(projections))
	for i, p := range projections {
		lines := worldclock.Format(p.Time, style)
		results[i] = projectionJSON{
			clockJSON:    clockJSON{Zone: p.Zone, Label: tzdb.Label(p.Zone), Date: lines.Date, Time: lines.Time},
			Instant:      p.Time.Format(time.RFC3339),
			Offset:       p.Offset,
			Abbreviation: p.Abbreviation,
			Adjusted:     p.Adjusted,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"source":      source,
		"meeting":     meeting.String(),
		"format":      style.String(),
		"projections": results,
	})
}

func (h *Handler) Zones(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	c.JSON(http.StatusOK, h.db.Search(c.Query("q"), page, limit))
}

func (h *Handler) Equivalent(c *gin.Context) {
	a, b := c.Query("a"), c.Query("b")
	if a == "" || b == "" {
		h.apiError(c, fmt.Errorf("%w: both a and b are required", errBadRequest))
		return
	}

	at := h.clock.Now()
	if raw := c.Query("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.apiError(c, fmt.Errorf("%w: at must be RFC 3339", errBadRequest))
			return
		}
		at = parsed
	}

	offsetA, err := worldclock.OffsetAt(h.db, at, a)
	if err != nil {
		h.apiError(c, err)
		return
	}
	offsetB, err := worldclock.OffsetAt(h.db, at, b)
	if err != nil {
		h.apiError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"a":        a,
		"b":        b,
		"at":       at.UTC().Format(time.RFC3339),
		"equal":    offsetA == offsetB,
		"offset_a": offsetA,
		"offset_b": offsetB,
	})
}

func (h *Handler) Defaults(c *gin.Context) {
	local := h.db.LocalName()
	zones, err := worldclock.DefaultZones(h.db, local, h.config.ReferenceZones, h.clock.Now(), h.config.ClockCount)
	if err != nil {
		h.apiError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"local": local,
		"zones": zones,
	})
}

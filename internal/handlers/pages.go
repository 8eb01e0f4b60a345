package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	C "worldclock/internal/constants"
	"worldclock/internal/worldclock"
)

type columnView struct {
	Index    int
	Zone     string
	Date     string
	Time     string
	Adjusted bool
}

func columnViews(columns []worldclock.Column) []columnView {
	views := make([]columnView, len(columns))
	for i, col := range columns {
		views[i] = columnView{
			Index:    i,
			Zone:     col.Zone,
			Date:     col.Lines.Date,
			Time:     col.Lines.Time,
			Adjusted: col.Adjusted,
		}
	}
	return views
}

// Home renders the board. The zones, format, date and time query parameters
// override the board for this request only.
func (h *Handler) Home(c *gin.Context) {
	style, err := h.styleParam(c)
	if err != nil {
		h.renderError(c, err.Error(), http.StatusBadRequest)
		return
	}

	meeting, err := h.meetingParam(c)
	if err != nil {
		h.renderError(c, err.Error(), http.StatusBadRequest)
		return
	}

	zones := h.zonesParam(c)
	live, err := h.liveColumns(zones, style)
	if err != nil {
		h.renderError(c, err.Error(), statusFor(err))
		return
	}

	local := h.board.Local()
	projections, err := worldclock.Project(h.db, meeting, local, zones)
	if err != nil {
		h.renderError(c, "Failed to project meeting time", statusFor(err))
		return
	}

	data := map[string]any{
		"title":     "Clocks",
		"live":      columnViews(live),
		"projected": columnViews(worldclock.ProjectionColumns(projections, style)),
		"zones":     h.db.Zones(),
		"selected":  zones,
		"format":    style.String(),
		"is24":      style.Is24(),
		"local":     local,
		"date":      meeting.Date(),
		"time":      meeting.Clock(),
	}
	h.renderTemplate(c, data, C.HomePath)
}

// UpdateBoard applies the clock form: zone selections, display format and
// meeting time. Empty fields leave the current value alone.
func (h *Handler) UpdateBoard(c *gin.Context) {
	for i, current := range h.board.Zones() {
		zone := c.PostForm(fmt.Sprintf("zone_%d", i))
		if zone == "" || zone == current {
			continue
		}
		if err := h.board.SetZone(i, zone); err != nil {
			h.renderError(c, err.Error(), statusFor(err))
			return
		}
		log.Debug().Int("column", i).Str("zone", zone).Msg("Column timezone changed")
	}

	if format := c.PostForm("format"); format != "" {
		style, err := worldclock.ParseHourStyle(format)
		if err != nil {
			h.renderError(c, err.Error(), http.StatusBadRequest)
			return
		}
		h.board.SetStyle(style)
	}

	date, clock := c.PostForm("date"), c.PostForm("time")
	if date != "" && clock != "" {
		meeting, err := worldclock.ParseLocalDateTime(date, clock)
		if err != nil {
			h.renderError(c, err.Error(), http.StatusBadRequest)
			return
		}
		h.board.SetMeeting(meeting)
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) MeetingNow(c *gin.Context) {
	h.board.MeetingNow()
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) About(c *gin.Context) {
	content, err := C.AboutMarkdown()
	if err != nil {
		h.renderError(c, "Failed to load page", http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"title":   "About",
		"content": h.renderMarkdown(content),
	}
	h.renderTemplate(c, data, C.AboutPath)
}

package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yuin/goldmark"

	"worldclock/internal/config"
	C "worldclock/internal/constants"
	"worldclock/internal/renderers"
	"worldclock/internal/tzdb"
	"worldclock/internal/worldclock"
)

var errBadRequest = errors.New("bad request")

type Handler struct {
	db       *tzdb.Database
	board    *worldclock.Board
	clock    worldclock.Clock
	config   *config.Config
	markdown goldmark.Markdown
}

func New(db *tzdb.Database, board *worldclock.Board, clock worldclock.Clock, cfg *config.Config) *Handler {
	return &Handler{
		db:       db,
		board:    board,
		clock:    clock,
		config:   cfg,
		markdown: renderers.New(),
	}
}

// SetupRoutes registers every page and API route on r.
func SetupRoutes(r *gin.Engine, h *Handler) {
	r.GET("/", h.Home)
	r.GET("/about", h.About)
	r.GET("/healthz", h.Health)

	board := r.Group("/board")
	{
		board.POST("", h.UpdateBoard)
		board.POST("/now", h.MeetingNow)
	}

	api := r.Group("/api")
	{
		api.GET("/clocks", h.Clocks)
		api.GET("/project", h.Project)
		api.GET("/zones", h.Zones)
		api.GET("/equivalent", h.Equivalent)
		api.GET("/defaults", h.Defaults)
	}

	r.NoRoute(h.NotFound)
}

func (h *Handler) renderMarkdown(content []byte) string {
	var buf strings.Builder
	if err := h.markdown.Convert(content, &buf); err != nil {
		return string(content)
	}
	return buf.String()
}

func (h *Handler) renderError(c *gin.Context, message string, status int) {
	data := map[string]any{
		"title":   "Error",
		"message": message,
		"config":  h.config,
	}
	t, ok := C.Tmpl[C.ErrorPath]
	if !ok {
		c.String(status, message)
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := t.Execute(c.Writer, data); err != nil {
		log.Error().Err(err).Msg("Failed to render error page")
	}
}

func (h *Handler) renderTemplate(c *gin.Context, data map[string]any, templatePath string) {
	t, ok := C.Tmpl[templatePath]
	if !ok {
		h.renderError(c, "Template not found: "+templatePath, http.StatusInternalServerError)
		return
	}

	data["config"] = h.config

	buf := new(bytes.Buffer)
	if err := t.Execute(buf, data); err != nil {
		log.Error().Err(err).Str("template", templatePath).Msg("Failed to render template")
		h.renderError(c, "Failed to render page", http.StatusInternalServerError)
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, buf); err != nil {
		log.Debug().Err(err).Msg("Client went away")
	}
}

// statusFor maps core errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, tzdb.ErrUnknownZone),
		errors.Is(err, worldclock.ErrInvalidDate),
		errors.Is(err, worldclock.ErrInvalidHourStyle),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) apiError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func (h *Handler) NotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	h.renderError(c, "Page not found", http.StatusNotFound)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

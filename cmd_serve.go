package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	C "worldclock/internal/constants"
	"worldclock/internal/handlers"
	"worldclock/internal/middleware"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web interface",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func newRouter() (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := C.LoadTemplates(); err != nil {
		return nil, err
	}

	board, err := newBoard(nil, cfg.HourStyle())
	if err != nil {
		return nil, err
	}
	log.Info().Str("local", board.Local()).Strs("zones", board.Zones()).Msg("Clock board ready")

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger())
	handlers.SetupRoutes(r, handlers.New(db, board, clock, cfg))
	return r, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	r, err := newRouter()
	if err != nil {
		return err
	}

	log.Info().Str("address", cfg.Address).Str("environment", cfg.Environment).Msg("Starting world clock server")
	return r.Run(cfg.Address)
}

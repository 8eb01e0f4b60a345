package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger. Logs go to stderr so command
// output on stdout stays clean.
func Init(level, format string) {
	InitWithWriter(os.Stderr, level, format)
}

func InitWithWriter(w io.Writer, level, format string) {
	zerolog.TimeFieldFormat = time.RFC3339

	var output io.Writer = w
	if strings.ToLower(format) != "json" {
		output = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
		log.Debug().Str("loglevel", level).Msg("Unknown log level, using info")
	}
	zerolog.SetGlobalLevel(lvl)
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

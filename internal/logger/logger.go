package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the service logger. Local runs get a human readable console writer.
func New(service, level string, console bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	var w io.Writer = os.Stdout
	if console {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Str("service", service).
		Logger()
}

// Module returns a child logger tagged with the component name.
func Module(l zerolog.Logger, module string) zerolog.Logger {
	return l.With().Str("module", module).Logger()
}

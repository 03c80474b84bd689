package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New creates the process logger. Unknown levels fall back to info.
func New(level string, pretty bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339

	var output io.Writer = os.Stderr
	if pretty {
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: "15:04:05",
		}
	}

	return zerolog.New(output).Level(lvl).With().Timestamp().Logger()
}

package log

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Logger = zerolog.Logger

// New builds the process logger. Local runs get a human-readable console
// writer and debug level; everything else logs JSON at info.
func New(env string) Logger {
	level := zerolog.InfoLevel
	if env == "local" {
		level = zerolog.DebugLevel
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	return log.Level(level)
}

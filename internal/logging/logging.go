// Package logging configures the internal zerolog tracer. The engine
// is silent unless a level is set via config.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a console logger at the given level string. An empty or
// unparsable level disables logging entirely.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.Disabled
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

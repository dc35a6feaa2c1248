// Package logging builds the console logger shared by the CLI and the
// montage pipeline.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a console logger at a level derived from the verbosity flags.
// The logger is handed around explicitly rather than installed as a global,
// so library code only logs through what it was given. Quiet wins over
// verbose; the default level is info.
func New(quiet, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	if quiet {
		level = zerolog.ErrorLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}

	return zerolog.New(output).With().Timestamp().Logger().Level(level)
}

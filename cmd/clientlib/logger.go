package main

import (
	"io"

	"github.com/rs/zerolog"
)

// newLogger returns a human-readable logger on w. Warnings and errors are
// shown by default, debug entries with verbose, only errors with quiet.
func newLogger(w io.Writer, quiet, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case quiet:
		level = zerolog.ErrorLevel
	case verbose:
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}).
		Level(level)
}

// Package logger configures the checker's one piece of ambient
// observability: a zerolog logger for debug-level tracing of a check_all
// run. Nothing here appears in a CheckResult or CheckerError, so it has
// no bearing on determinism.
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Setup builds a zerolog.Logger writing to stdout at the given level, as
// parsed by zerolog.ParseLevel (e.g. "debug", "info", "warn", "error"); a
// level string ParseLevel rejects falls back to info.
func Setup(level string) zerolog.Logger {
	l, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		l = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(l).With().Timestamp().Logger()
}

// Disabled returns a logger that discards everything. checkall.CheckAll
// uses this when the caller passes no logger, so tracing is strictly
// opt-in.
func Disabled() zerolog.Logger {
	return zerolog.Nop()
}

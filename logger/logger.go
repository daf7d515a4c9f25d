// Package logger holds the zerolog logger shared by the circuit packages.
// By default it writes human-readable console output with timestamps and is
// silenced under `go test`; callers can redirect or replace it.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var shared zerolog.Logger

func init() {
	w := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	shared = zerolog.New(w).With().Timestamp().Logger()

	// tests stay quiet unless they install a logger through Set
	if strings.HasSuffix(os.Args[0], ".test") {
		shared = zerolog.Nop()
	}
}

// SetOutput redirects the shared logger to w, keeping its configuration.
func SetOutput(w io.Writer) {
	shared = shared.Output(w)
}

// Set replaces the shared logger.
func Set(l zerolog.Logger) {
	shared = l
}

// Disable silences the shared logger.
func Disable() {
	shared = zerolog.Nop()
}

// Logger returns the shared logger.
func Logger() zerolog.Logger {
	return shared
}

// Package logging configures zerolog for the CLI and the console layer.
// The rendering core itself never logs; only the outer surfaces do.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global logger from a verbosity count (-v flags):
// 0 warns, 1 informs, 2 debugs, 3+ traces. Output goes to stderr so it
// never interleaves with rendered output on stdout.
func Setup(verbosity int) {
	switch verbosity {
	case 0:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case 2:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	SetupWriter(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	})

	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}
}

// SetupWriter points the global logger at w. Tests use this to capture
// log output.
func SetupWriter(w io.Writer) {
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

// GetLogger returns a logger tagged with a component name.
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

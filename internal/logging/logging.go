package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/glamsuite/salon-scheduler/internal/config"
)

// New constructs the process logger. JSON to stdout by default; LOG_FORMAT=console
// switches to the human-readable writer for local development.
func New(cfg *config.Config) zerolog.Logger {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.LogLevel))); err == nil {
		level = parsed
	}

	var out = zerolog.New(os.Stdout)
	if strings.ToLower(strings.TrimSpace(cfg.LogFormat)) == "console" {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	return out.Level(level).With().
		Timestamp().
		Str("app", "salon-scheduler").
		Logger()
}

// Package logging configures the global zerolog logger used by the commands
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aouyang1/go-yieldmodel/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup sets the global log level and output. Pretty output uses the zerolog console writer,
// otherwise every line is a json object.
func Setup(cfg config.Logging) error {
	return setup(cfg, os.Stderr)
}

func setup(cfg config.Logging, out io.Writer) error {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("unable to parse log level %q, %w", cfg.Level, err)
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return nil
}

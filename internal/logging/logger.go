// Package logging builds the debug logger. The terminal belongs to the menu,
// so log output only ever goes to a file.
package logging

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New opens path for writing and returns a logger on it together with a
// function closing the file. An empty path disables logging.
func New(path string) (zerolog.Logger, func() error, error) {
	if path == "" {
		return zerolog.Nop(), func() error { return nil }, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to create log file: %w", err)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        f,
		NoColor:    true,
		TimeFormat: time.RFC3339,
	}).
		With().
		Timestamp().
		Logger().
		Level(zerolog.DebugLevel)

	logger.Info().Msg("log started")

	closeFn := func() error {
		logger.Info().Msg("log ended")

		return f.Close()
	}

	return logger, closeFn, nil
}

// Package logger provides the module-wide zerolog logger.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	logger = zerolog.New(output).With().Timestamp().Logger()
}

// Logger returns the module logger.
func Logger() zerolog.Logger {
	return logger
}

// Set overrides the module logger.
func Set(l zerolog.Logger) {
	logger = l
}

// Disable silences the module logger.
func Disable() {
	logger = zerolog.Nop()
}

// Package logging builds the logrus logger shared by the calculators.
package logging

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// New returns a text logger at the given level. An unknown level falls
// back to warn.
func New(level string, w io.Writer) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)
	logger.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
		logger.SetLevel(lvl)
		logger.WithField("level", level).Warn("unknown log level, using warn")
		return logger
	}
	logger.SetLevel(lvl)
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return New("panic", io.Discard)
}

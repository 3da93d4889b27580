// Package logger holds the process-wide structured logger. The store and
// dispatcher use it as their diagnostic channel; user-facing output goes
// through the CLI, never through here.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	log  *logrus.Logger
	once sync.Once
)

// L returns the shared logger, initializing it on first use.
func L() *logrus.Logger {
	once.Do(initLogger)
	return log
}

func initLogger() {
	log = logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})

	level := os.Getenv("STUDIO_LOG_LEVEL")
	if level == "" {
		level = "warn"
	}

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.WarnLevel
	}
	log.SetLevel(logLevel)
}

// SetOutput redirects the shared logger, used by tests to silence it.
func SetOutput(w io.Writer) {
	L().SetOutput(w)
}

// WithField is a convenience wrapper around the shared logger.
func WithField(key string, value any) *logrus.Entry {
	return L().WithField(key, value)
}

// WithFields is a convenience wrapper around the shared logger.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return L().WithFields(fields)
}

// WithError is a convenience wrapper around the shared logger.
func WithError(err error) *logrus.Entry {
	return L().WithError(err)
}

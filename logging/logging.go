// Package logging builds the logrus logger used by the tspviz command.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/MichalRedm/evolutionary-computation/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger at cfg.LogLevel writing text lines to stderr and, when
// cfg.LogFile is set, also to that file with size-based rotation.
// An unknown level falls back to info with a warning.
//
// The returned Closer releases the log file; it is a no-op without one and is
// never nil.
func New(cfg *config.Config, stderr io.Writer) (*logrus.Logger, io.Closer) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	log.SetOutput(stderr)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warnf("Invalid log level '%s', using 'info'", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.LogFile == "" {
		return log, nopCloser{}
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		log.Warnf("Cannot create log directory for %s: %v, logging to stderr only", cfg.LogFile, err)
		return log, nopCloser{}
	}
	file := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    100, // MB
		MaxBackups: 7,
		MaxAge:     30, // days
		Compress:   true,
	}
	log.SetOutput(io.MultiWriter(stderr, file))
	return log, file
}

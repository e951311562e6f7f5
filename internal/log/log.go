// Package log builds the application's logrus logger. The TUI owns the
// terminal, so logs only ever go to a file.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/scrubber/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup returns a logger configured from cfg and a closer for its file.
// With no file configured, everything logged is discarded.
func Setup(cfg config.LogConfig) (*logrus.Logger, io.Closer, error) {
	if cfg.File == "" {
		return Discard(), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	return New(f, cfg), f, nil
}

// New returns a logger writing to w with cfg's format and level.
// An unknown level falls back to info.
func New(w io.Writer, cfg config.LogConfig) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)

	if cfg.JSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	return l
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger writes to path, or discards when path is empty. The TUI owns the
// terminal, so records never go to stdout or stderr.
func newLogger(path string) (*log.Logger, func() error, error) {
	if path == "" {
		return log.NewWithOptions(io.Discard, log.Options{}), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	logger := log.NewWithOptions(f, log.Options{
		Prefix:          "codeinput",
		ReportTimestamp: true,
		Level:           log.DebugLevel,
	})
	return logger, f.Close, nil
}

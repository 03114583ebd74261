// Package logging builds the structured loggers used by the trails binary.
//
// The TUI owns stdout, so interactive commands log to a rotating file only.
// The SSH server logs to stderr and, when asked, to the same file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	// Level is one of debug, info, warn, error, fatal. Empty means info.
	Level string
	// Prefix is printed before every message.
	Prefix string
	// Console receives log lines when non-nil.
	Console io.Writer
	// FilePath enables the rotating file sink when non-empty. A leading ~
	// expands to the home directory.
	FilePath string

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// DefaultFilePath is ~/.trails/trails.log.
func DefaultFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "trails.log"
	}
	return filepath.Join(home, ".trails", "trails.log")
}

// New returns a logger writing to the configured sinks and a closer for the
// file sink. With no sinks configured the logger discards everything.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	var (
		writers []io.Writer
		closer  io.Closer = nopCloser{}
	)
	if opts.Console != nil {
		writers = append(writers, opts.Console)
	}
	if opts.FilePath != "" {
		path, err := expandHome(opts.FilePath)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		file := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    orDefault(opts.MaxSizeMB, 5),
			MaxBackups: orDefault(opts.MaxBackups, 3),
			MaxAge:     orDefault(opts.MaxAgeDays, 28),
		}
		writers = append(writers, file)
		closer = file
	}

	var out io.Writer
	switch len(writers) {
	case 0:
		out = io.Discard
	case 1:
		out = writers[0]
	default:
		out = io.MultiWriter(writers...)
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
		Level:           level,
	})
	return logger, closer, nil
}

func expandHome(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Package logging configures the structured logger shared by the strip, the
// pager and the servers. The TUI owns the terminal, so local sessions log to
// a file or nowhere at all.
package logging

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/charmbracelet/log"
)

const DefaultLevel = "info"

var levels = map[string]log.Level{
	"debug":      log.DebugLevel,
	DefaultLevel: log.InfoLevel,
	"warn":       log.WarnLevel,
	"error":      log.ErrorLevel,
}

// ValidLevels returns valid strings for choosing a log level. Returns the
// default log level first.
func ValidLevels() []string {
	keys := slices.Collect(maps.Keys(levels))
	slices.SortFunc(keys, func(a, b string) int {
		if a == DefaultLevel {
			return -1
		}
		if b == DefaultLevel {
			return 1
		}
		if levels[a] < levels[b] {
			return -1
		}
		return 1
	})
	return keys
}

// ParseLevel maps a level name onto a log level. An empty name selects the
// default level.
func ParseLevel(name string) (log.Level, error) {
	if name == "" {
		name = DefaultLevel
	}
	level, ok := levels[name]
	if !ok {
		return 0, fmt.Errorf("invalid log level %q: must be one of %v", name, ValidLevels())
	}
	return level, nil
}

// New returns a logger writing logfmt-ish text records to w.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "funtab",
	}), nil
}

// Discard returns a logger that drops every record.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// Open returns a logger appending to the file at path. An empty path yields
// a discarding logger. The returned closer must be closed on shutdown.
func Open(path, level string) (*log.Logger, io.Closer, error) {
	if path == "" {
		if _, err := ParseLevel(level); err != nil {
			return nil, nil, err
		}
		return Discard(), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	logger, err := New(f, level)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}

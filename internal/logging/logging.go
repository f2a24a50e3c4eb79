// internal/logging/logging.go
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Levels accepted by --log-level.
var Levels = []string{"debug", "info", "warn", "error"}

// ParseLevel maps a --log-level value to a log.Level.
func ParseLevel(s string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel, nil
	case "info", "":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	}
	return log.InfoLevel, fmt.Errorf("invalid --log-level %q (want %s)", s, strings.Join(Levels, " | "))
}

// New returns a timestamped logger for tool writing to w. quiet raises the
// level to error regardless of level.
func New(w io.Writer, tool, level string, quiet bool) (*log.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if quiet {
		lvl = log.ErrorLevel
	}
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          tool,
		Level:           lvl,
	})
	return l, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger { return log.New(io.Discard) }

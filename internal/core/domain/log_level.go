package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// LogLevel is the verbosity of a log line or vertex message. Values match the slog levels.
type LogLevel int

// Log levels.
const (
	LogLevelDebug LogLevel = -4
	LogLevelInfo  LogLevel = 0
	LogLevelWarn  LogLevel = 4
	LogLevelError LogLevel = 8
)

var logLevelNames = []struct {
	level LogLevel
	name  string
}{
	{LogLevelDebug, "debug"},
	{LogLevelInfo, "info"},
	{LogLevelWarn, "warn"},
	{LogLevelError, "error"},
}

// ParseLogLevel parses a level name as accepted by --log-level. Matching ignores case.
func ParseLogLevel(s string) (LogLevel, error) {
	for _, l := range logLevelNames {
		if strings.EqualFold(s, l.name) {
			return l.level, nil
		}
	}
	return LogLevelInfo, zerr.With(ErrUnknownLogLevel, "level", s)
}

// Name returns the lower-case name of l. Unknown levels are reported as info.
func (l LogLevel) Name() string {
	for _, n := range logLevelNames {
		if n.level == l {
			return n.name
		}
	}
	return "info"
}

// String returns the upper-case name of l.
func (l LogLevel) String() string {
	return strings.ToUpper(l.Name())
}

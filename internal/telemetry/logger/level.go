// Package logger provides structured logging for AgentFlow.
package logger

import (
	"fmt"
	"strings"
)

// Level is the record severity. Levels are ordered; a sink drops every
// record below its configured minimum.
type Level int

// Severity scale, lowest to highest.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelCritical
)

var levelNames = map[Level]string{
	LevelDebug:    "DEBUG",
	LevelInfo:     "INFO",
	LevelWarning:  "WARNING",
	LevelError:    "ERROR",
	LevelCritical: "CRITICAL",
}

// String returns the canonical upper-case level name.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// lower returns the level name as emitted on JSON records.
func (l Level) lower() string {
	return strings.ToLower(l.String())
}

// ParseLevel converts a level name to a Level, case-insensitively.
// Unknown names fail with ErrInvalidConfiguration; this is the only
// way configuration can fail.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarning, nil
	case "ERROR":
		return LevelError, nil
	case "CRITICAL":
		return LevelCritical, nil
	default:
		return LevelInfo, fmt.Errorf("%w: unknown level %q", ErrInvalidConfiguration, s)
	}
}

// Package logger provides structured logging for AgentFlow.
package logger

import (
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

// Output format names accepted by Configure.
const (
	FormatJSON  = "json"
	FormatHuman = "human"
	FormatAuto  = "auto"
)

// Environment signals consulted when the format is "auto".
const (
	// EnvFormatOverride forces JSON output when set to "json".
	EnvFormatOverride = "LOG_FORMAT"
	// EnvMode selects JSON output when set to "production".
	EnvMode = "ENV"
)

// ErrInvalidConfiguration is returned by Configure for an unknown
// severity level. It is the only failure this package surfaces.
var ErrInvalidConfiguration = errors.New("logger: invalid configuration")

// Config holds logger configuration.
type Config struct {
	// Level is the minimum severity (DEBUG, INFO, WARNING, ERROR,
	// CRITICAL, case-insensitive). Records below it are dropped
	// before formatting is attempted.
	Level string
	// Format is the output format: json, human or auto.
	Format string
	// Output is the output sink (defaults to os.Stderr).
	Output io.Writer
}

// DefaultConfig returns the default logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:  "INFO",
		Format: FormatAuto,
		Output: os.Stderr,
	}
}

// sink is one immutable formatter/level/writer binding. Configure
// swaps the whole binding atomically, so a reconfigured process never
// emits through two bindings at once.
type sink struct {
	mu        sync.Mutex
	formatter Formatter
	min       Level
	out       io.Writer
}

var current atomic.Pointer[sink]

func init() {
	// Records emitted before Configure still need somewhere to go.
	current.Store(&sink{
		formatter: HumanFormatter{},
		min:       LevelInfo,
		out:       os.Stderr,
	})
}

// Configure binds formatter, minimum level and output sink. It is
// idempotent and last-call-wins: the previous binding is replaced,
// never added to. Called once at application startup.
func Configure(cfg Config) error {
	min, err := ParseLevel(cfg.Level)
	if err != nil {
		return err
	}

	format := strings.ToLower(cfg.Format)
	if format == "" || format == FormatAuto {
		format = detectFormat()
	}

	var f Formatter
	if format == FormatJSON {
		f = JSONFormatter{}
	} else {
		f = HumanFormatter{}
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	current.Store(&sink{formatter: f, min: min, out: out})
	return nil
}

// detectFormat resolves the "auto" format from the environment:
// JSON when LOG_FORMAT=json or ENV=production, human otherwise.
func detectFormat() string {
	if strings.ToLower(os.Getenv(EnvFormatOverride)) == FormatJSON {
		return FormatJSON
	}
	if strings.ToLower(os.Getenv(EnvMode)) == "production" {
		return FormatJSON
	}
	return FormatHuman
}

// SetLevel adjusts the minimum severity of the current binding without
// touching formatter or sink (e.g. on config reload).
func SetLevel(level string) error {
	min, err := ParseLevel(level)
	if err != nil {
		return err
	}

	s := current.Load()
	current.Store(&sink{formatter: s.formatter, min: min, out: s.out})
	return nil
}

// GetLevel returns the current minimum severity name.
func GetLevel() string {
	return current.Load().min.String()
}

// emit renders the event through the current binding and writes one
// newline-terminated line. Severity filtering happened at the call
// site; emit only formats and writes.
func emit(s *sink, e Event, snapshot map[string]any) {
	line := s.formatter.Render(e, snapshot)

	s.mu.Lock()
	defer s.mu.Unlock()
	io.WriteString(s.out, line+"\n")
}

// Package logger provides structured logging for AgentFlow.
package logger

import (
	"fmt"
	"strings"
)

// ANSI color per level, reset after the bracketed level tag.
var levelColors = map[Level]string{
	LevelDebug:    "\033[36m", // cyan
	LevelInfo:     "\033[32m", // green
	LevelWarning:  "\033[33m", // yellow
	LevelError:    "\033[31m", // red
	LevelCritical: "\033[35m", // magenta
}

const colorReset = "\033[0m"

// HumanFormatter produces one colorized line for development:
//
//	[LEVEL   ] [trace:01234567 | exec:00000001 | agent:planner] message [event]
//
// The bracketed prefix carries only the identifiers present on the
// merged record, in trace/exec/agent order; with none present no
// brackets are emitted at all. trace_id is shortened to its first 8
// characters and execution_id to its last 8 (execution ids share a
// run-id prefix, the entropy is at the tail). Failure text is
// intentionally not rendered on the one-line format; use JSON output
// when stack detail matters.
type HumanFormatter struct{}

func (HumanFormatter) Render(e Event, snapshot map[string]any) string {
	rec := e.merged(snapshot)

	var parts []string
	if v := stringField(rec, "trace_id"); v != "" {
		parts = append(parts, "trace:"+firstN(v, 8))
	}
	if v := stringField(rec, "execution_id"); v != "" {
		parts = append(parts, "exec:"+lastN(v, 8))
	}
	if v := stringField(rec, "agent_id"); v != "" {
		parts = append(parts, "agent:"+v)
	}

	prefix := ""
	if len(parts) > 0 {
		prefix = "[" + strings.Join(parts, " | ") + "] "
	}

	suffix := ""
	if v := stringField(rec, "event"); v != "" {
		suffix = " [" + v + "]"
	}

	level := fmt.Sprintf("%-8s", e.Level.String())
	if len(level) > 8 {
		level = level[:8]
	}

	return fmt.Sprintf("%s[%s]%s %s%s%s",
		levelColors[e.Level], level, colorReset, prefix, e.Message, suffix)
}

// stringField reads a record value as a string; non-string scalars are
// rendered with fmt, absent or empty values read as "".
func stringField(rec map[string]any, key string) string {
	v, ok := rec[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func firstN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

package logger

import (
	"strings"
	"testing"
	"time"
)

func humanEvent(level Level, msg string, fields Fields) Event {
	return Event{
		Time:    time.Now().UTC(),
		Level:   level,
		Logger:  "runtime",
		Message: msg,
		Fields:  fields,
	}
}

func TestHumanFormatter_Truncation(t *testing.T) {
	snapshot := map[string]any{
		"trace_id":     "0123456789ab",
		"execution_id": "run_00000001",
	}

	line := HumanFormatter{}.Render(humanEvent(LevelInfo, "hello", nil), snapshot)

	if !strings.Contains(line, "[trace:01234567 | exec:00000001]") {
		t.Errorf("line = %q, want prefix [trace:01234567 | exec:00000001]", line)
	}
}

func TestHumanFormatter_PrefixOrderAndAgent(t *testing.T) {
	snapshot := map[string]any{
		"agent_id":     "planner-agent",
		"trace_id":     "aaaabbbbcccc",
		"execution_id": "run_xyz_1234abcd",
	}

	line := HumanFormatter{}.Render(humanEvent(LevelInfo, "hello", nil), snapshot)

	// Fixed order trace -> exec -> agent, agent unabridged.
	want := "[trace:aaaabbbb | exec:1234abcd | agent:planner-agent]"
	if !strings.Contains(line, want) {
		t.Errorf("line = %q, want prefix %q", line, want)
	}
}

func TestHumanFormatter_PartialPrefix(t *testing.T) {
	tests := []struct {
		name     string
		snapshot map[string]any
		want     string
	}{
		{
			name:     "agent only",
			snapshot: map[string]any{"agent_id": "a1"},
			want:     "[agent:a1]",
		},
		{
			name:     "trace only",
			snapshot: map[string]any{"trace_id": "0123456789"},
			want:     "[trace:01234567]",
		},
		{
			name:     "short ids not truncated",
			snapshot: map[string]any{"trace_id": "abc", "execution_id": "xyz"},
			want:     "[trace:abc | exec:xyz]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := HumanFormatter{}.Render(humanEvent(LevelInfo, "m", nil), tt.snapshot)
			if !strings.Contains(line, tt.want) {
				t.Errorf("line = %q, want %q", line, tt.want)
			}
		})
	}
}

func TestHumanFormatter_NoContextNoBrackets(t *testing.T) {
	line := HumanFormatter{}.Render(humanEvent(LevelInfo, "bare message", nil), nil)

	if strings.Contains(line, "[]") {
		t.Errorf("line = %q, empty brackets must not be emitted", line)
	}
	want := "\033[32m[INFO    ]\033[0m bare message"
	if line != want {
		t.Errorf("line = %q, want %q", line, want)
	}
}

func TestHumanFormatter_EmptyValuesSkipped(t *testing.T) {
	snapshot := map[string]any{"trace_id": "", "agent_id": "a1"}

	line := HumanFormatter{}.Render(humanEvent(LevelInfo, "m", nil), snapshot)

	if strings.Contains(line, "trace:") {
		t.Errorf("line = %q, empty trace_id must not produce a segment", line)
	}
	if !strings.Contains(line, "[agent:a1]") {
		t.Errorf("line = %q, want [agent:a1]", line)
	}
}

func TestHumanFormatter_LevelColorsAndPadding(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "\033[36m[DEBUG   ]\033[0m"},
		{LevelInfo, "\033[32m[INFO    ]\033[0m"},
		{LevelWarning, "\033[33m[WARNING ]\033[0m"},
		{LevelError, "\033[31m[ERROR   ]\033[0m"},
		{LevelCritical, "\033[35m[CRITICAL]\033[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			line := HumanFormatter{}.Render(humanEvent(tt.level, "m", nil), nil)
			if !strings.HasPrefix(line, tt.want) {
				t.Errorf("line = %q, want prefix %q", line, tt.want)
			}
		})
	}
}

func TestHumanFormatter_EventSuffix(t *testing.T) {
	line := HumanFormatter{}.Render(
		humanEvent(LevelInfo, "node done", Fields{"event": "node_complete"}), nil)

	if !strings.HasSuffix(line, "node done [node_complete]") {
		t.Errorf("line = %q, want trailing [node_complete]", line)
	}
}

func TestHumanFormatter_EventFieldWinsOverContext(t *testing.T) {
	snapshot := map[string]any{"agent_id": "from-context", "event": "ctx_event"}
	line := HumanFormatter{}.Render(
		humanEvent(LevelInfo, "m", Fields{"agent_id": "from-event", "event": "ev_event"}), snapshot)

	if !strings.Contains(line, "[agent:from-event]") {
		t.Errorf("line = %q, event field must win over context", line)
	}
	if !strings.HasSuffix(line, " [ev_event]") {
		t.Errorf("line = %q, event field must win over context", line)
	}
}

func TestHumanFormatter_FailureOmitted(t *testing.T) {
	e := humanEvent(LevelError, "node failed", nil)
	e.Failure = "stack trace here"

	line := HumanFormatter{}.Render(e, nil)
	if strings.Contains(line, "stack trace here") {
		t.Errorf("line = %q, human format must omit failure text", line)
	}
}

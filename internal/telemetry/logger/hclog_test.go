package logger

import (
	"context"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/veyra/agentflow-go/internal/telemetry/tracectx"
)

func TestHCLogAdapter_Levels(t *testing.T) {
	buf := jsonSink(t)

	hl := NewHCLog(context.Background(), "dep")
	hl.Debug("d")
	hl.Info("i")
	hl.Warn("w")
	hl.Error("e")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}

	want := []string{"debug", "info", "warning", "error"}
	for i, line := range lines {
		if entry := parseLine(t, line); entry["level"] != want[i] {
			t.Errorf("line %d level = %v, want %q", i, entry["level"], want[i])
		}
	}
}

func TestHCLogAdapter_CarriesTaskContext(t *testing.T) {
	buf := jsonSink(t)

	ctx := tracectx.NewTask(context.Background())
	tracectx.Merge(ctx, map[string]any{"trace_id": "tr_dep"})

	NewHCLog(ctx, "dep").Info("from dependency")

	entry := parseLine(t, strings.TrimSpace(buf.String()))
	if got := entry["trace_id"]; got != "tr_dep" {
		t.Errorf("trace_id = %v, want %q", got, "tr_dep")
	}
	if got := entry["logger"]; got != "dep" {
		t.Errorf("logger = %v, want %q", got, "dep")
	}
}

func TestHCLogAdapter_With(t *testing.T) {
	buf := jsonSink(t)

	hl := NewHCLog(context.Background(), "dep").With("component", "transport")
	hl.Info("bound args")

	entry := parseLine(t, strings.TrimSpace(buf.String()))
	if got := entry["component"]; got != "transport" {
		t.Errorf("component = %v, want %q", got, "transport")
	}
}

func TestHCLogAdapter_Named(t *testing.T) {
	hl := NewHCLog(context.Background(), "dep").Named("raft")
	if hl.Name() != "dep.raft" {
		t.Errorf("Name() = %q, want %q", hl.Name(), "dep.raft")
	}

	hl = hl.ResetNamed("fresh")
	if hl.Name() != "fresh" {
		t.Errorf("Name() = %q, want %q", hl.Name(), "fresh")
	}
}

func TestHCLogAdapter_LevelChecks(t *testing.T) {
	reset(t)
	if err := Configure(Config{Level: "WARNING", Format: FormatJSON, Output: nil}); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}

	hl := NewHCLog(context.Background(), "dep")
	if hl.IsDebug() {
		t.Error("IsDebug() = true at WARNING threshold")
	}
	if hl.IsInfo() {
		t.Error("IsInfo() = true at WARNING threshold")
	}
	if !hl.IsWarn() {
		t.Error("IsWarn() = false at WARNING threshold")
	}
	if got := hl.GetLevel(); got != hclog.Warn {
		t.Errorf("GetLevel() = %v, want hclog.Warn", got)
	}
}

func TestHCLogAdapter_StandardWriter(t *testing.T) {
	buf := jsonSink(t)

	std := NewHCLog(context.Background(), "dep").StandardLogger(nil)
	std.Println("legacy line")

	entry := parseLine(t, strings.TrimSpace(buf.String()))
	if got := entry["message"]; got != "legacy line" {
		t.Errorf("message = %v, want %q", got, "legacy line")
	}
	if got := entry["level"]; got != "info" {
		t.Errorf("level = %v, want info", got)
	}
}

package logger

import (
	"errors"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"INFO", LevelInfo},
		{"warn", LevelWarning},
		{"warning", LevelWarning},
		{"WARNING", LevelWarning},
		{"error", LevelError},
		{"critical", LevelCritical},
		{"CRITICAL", LevelCritical},
		{" info ", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if err != nil {
				t.Fatalf("ParseLevel(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLevel_Invalid(t *testing.T) {
	for _, input := range []string{"", "verbose", "trace", "INFO2"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseLevel(input)
			if err == nil {
				t.Fatalf("ParseLevel(%q) expected error", input)
			}
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("ParseLevel(%q) error = %v, want ErrInvalidConfiguration", input, err)
			}
		})
	}
}

func TestLevel_Ordering(t *testing.T) {
	ordered := []Level{LevelDebug, LevelInfo, LevelWarning, LevelError, LevelCritical}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Errorf("%v should order below %v", ordered[i-1], ordered[i])
		}
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
		lower string
	}{
		{LevelDebug, "DEBUG", "debug"},
		{LevelInfo, "INFO", "info"},
		{LevelWarning, "WARNING", "warning"},
		{LevelError, "ERROR", "error"},
		{LevelCritical, "CRITICAL", "critical"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if got := tt.level.lower(); got != tt.lower {
			t.Errorf("lower() = %q, want %q", got, tt.lower)
		}
	}
}

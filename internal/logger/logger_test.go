package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{Level(999), "UNKNOWN"},
	}

	for _, test := range tests {
		if result := test.level.String(); result != test.expected {
			t.Errorf("Level.String() = %v, expected %v", result, test.expected)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	Initialize(Config{Level: WarnLevel})
	var buf bytes.Buffer
	SetOutput(&buf)

	Debug("debug message")
	Info("info message")
	Warn("warn message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("messages below the configured level leaked: %q", out)
	}
	if !strings.Contains(out, "warn message") {
		t.Errorf("expected warn message in output, got %q", out)
	}
}

func TestFields(t *testing.T) {
	Initialize(Config{Level: InfoLevel})
	var buf bytes.Buffer
	SetOutput(&buf)

	Warn("conversion failed", String("file", "a.md"), Int("line", 3))

	out := buf.String()
	if !strings.Contains(out, "file=a.md") || !strings.Contains(out, "line=3") {
		t.Errorf("expected fields in output, got %q", out)
	}
	if !strings.Contains(out, "[WARN]") {
		t.Errorf("expected level tag in output, got %q", out)
	}
}

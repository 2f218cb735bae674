// ABOUTME: Tests for the leveled diagnostic logger
// ABOUTME: Validates level parsing, filtering, and output redirection

package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", LevelWarn, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) err = %v; wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

// The remaining tests mutate package state and must not run in parallel.

func TestFiltering(t *testing.T) {
	var buf bytes.Buffer
	prevOut := SetOutput(&buf)
	prevLevel := GetLevel()
	defer func() {
		SetOutput(prevOut)
		SetLevel(prevLevel)
	}()

	SetLevel(LevelInfo)
	Debug("hidden %d", 1)
	Info("shown %d", 2)
	Warn("shown %d", 3)

	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("debug message emitted at info level: %q", got)
	}
	if !strings.Contains(got, "[INFO] shown 2") || !strings.Contains(got, "[WARN] shown 3") {
		t.Errorf("missing info/warn lines: %q", got)
	}
}

func TestErrorAlwaysEmitted(t *testing.T) {
	var buf bytes.Buffer
	prevOut := SetOutput(&buf)
	prevLevel := GetLevel()
	defer func() {
		SetOutput(prevOut)
		SetLevel(prevLevel)
	}()

	SetLevel(LevelError)
	Warn("quiet")
	Error("boom: %s", "disk")

	if got := buf.String(); got != "[ERROR] boom: disk\n" {
		t.Errorf("output = %q", got)
	}
}

package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"", log.WarnLevel},
		{"chatty", log.WarnLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFormatter(t *testing.T) {
	if ParseFormatter("json") != log.JSONFormatter {
		t.Error("json should map to JSONFormatter")
	}
	if ParseFormatter("logfmt") != log.LogfmtFormatter {
		t.Error("logfmt should map to LogfmtFormatter")
	}
	if ParseFormatter("") != log.TextFormatter {
		t.Error("empty should map to TextFormatter")
	}
}

func TestSetup_FiltersByLevel(t *testing.T) {
	t.Cleanup(func() { Setup(os.Stderr, DefaultLevel, "") })

	var buf bytes.Buffer
	Setup(&buf, "warn", "")
	log.Debug("hidden message")
	log.Warn("visible message", "path", "todos.json")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Errorf("debug line leaked at warn level: %q", out)
	}
	if !strings.Contains(out, "visible message") || !strings.Contains(out, "todos.json") {
		t.Errorf("expected warn line with fields, got %q", out)
	}
}

func TestSetup_DebugIncludesDebug(t *testing.T) {
	t.Cleanup(func() { Setup(os.Stderr, DefaultLevel, "") })

	var buf bytes.Buffer
	Setup(&buf, "debug", "logfmt")
	log.Debug("loaded tasks", "count", 3)

	out := buf.String()
	if !strings.Contains(out, "loaded tasks") || !strings.Contains(out, "count=3") {
		t.Errorf("unexpected debug output %q", out)
	}
}

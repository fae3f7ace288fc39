package app

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		result := tt.level.String()
		if result != tt.expected {
			t.Errorf("LogLevel(%d).String() = '%s', expected '%s'", tt.level, result, tt.expected)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
		known    bool
	}{
		{"debug", LogLevelDebug, true},
		{"DEBUG", LogLevelDebug, true},
		{"info", LogLevelInfo, true},
		{"Warn", LogLevelWarn, true},
		{"warning", LogLevelWarn, true},
		{"ERROR", LogLevelError, true},
		{"unknown", LogLevelInfo, false},
		{"", LogLevelInfo, false},
	}

	for _, tt := range tests {
		if result := ParseLogLevel(tt.input); result != tt.expected {
			t.Errorf("ParseLogLevel('%s') = %d, expected %d", tt.input, result, tt.expected)
		}
		if _, ok := LookupLogLevel(tt.input); ok != tt.known {
			t.Errorf("LookupLogLevel('%s') ok = %v, expected %v", tt.input, ok, tt.known)
		}
	}
}

func newTestLogger(buf *bytes.Buffer, level LogLevel) *Logger {
	l := NewLogger(LoggerConfig{Level: level, Output: buf, Prefix: "test"})
	l.shared.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	return l
}

func TestLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LogLevelInfo)

	logger.Info("formatted %s %d", "test", 42)

	want := "2024-01-02T03:04:05.000 [INFO] test: formatted test 42\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestLogger_LogLevel_Filtering(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LogLevelWarn)

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")

	output := buf.String()
	if strings.Contains(output, "[DEBUG]") || strings.Contains(output, "[INFO]") {
		t.Error("expected DEBUG and INFO to be filtered out")
	}
	if !strings.Contains(output, "[WARN]") || !strings.Contains(output, "[ERROR]") {
		t.Error("expected WARN and ERROR in output")
	}
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LogLevelInfo).
		WithComponent("config").
		WithFields(map[string]any{"path": "/tmp/c.toml", "attempt": 2})

	logger.Info("reloaded")

	if !strings.HasSuffix(buf.String(), "reloaded {attempt=2, component=config, path=/tmp/c.toml}\n") {
		t.Errorf("fields not rendered in key order: %q", buf.String())
	}
}

func TestLogger_DerivedSharesLevel(t *testing.T) {
	var buf bytes.Buffer
	root := newTestLogger(&buf, LogLevelInfo)
	child := root.WithComponent("dispatcher")

	child.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatal("debug should be filtered at info level")
	}

	root.SetLevel(LogLevelDebug)
	child.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Error("level change on the root should reach derived loggers")
	}
	if child.Level() != LogLevelDebug {
		t.Errorf("child level = %v, want DEBUG", child.Level())
	}
}

func TestLogger_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	logger := newTestLogger(&first, LogLevelInfo)

	logger.SetOutput(&second)
	logger.Info("moved")

	if first.Len() != 0 || !strings.Contains(second.String(), "moved") {
		t.Error("output should go to the new writer")
	}
}

func TestLogger_DisableEnable(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LogLevelDebug)

	logger.Disable()
	logger.Error("dropped")
	if buf.Len() != 0 {
		t.Error("disabled logger should not write")
	}

	logger.Enable()
	logger.Error("written")
	if !strings.Contains(buf.String(), "written") {
		t.Error("enabled logger should write")
	}
}

func TestNullLogger(t *testing.T) {
	// Must not panic.
	l := NewNullLogger()
	l.Error("nothing")
	l.WithComponent("x").Info("nothing")
}

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig()
	if cfg.Level != LogLevelInfo {
		t.Errorf("Level = %v, want INFO", cfg.Level)
	}
	if cfg.Prefix != "sneak" {
		t.Errorf("Prefix = %q, want sneak", cfg.Prefix)
	}
	if cfg.Output == nil {
		t.Error("Output should default to stderr")
	}
}

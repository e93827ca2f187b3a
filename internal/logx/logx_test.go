package logx

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"WARN", zapcore.WarnLevel},
		{" error ", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"loud", zapcore.InfoLevel},
	}

	for _, test := range tests {
		if got := ParseLevel(test.input); got != test.expected {
			t.Errorf("ParseLevel(%q): expected %v, got %v", test.input, test.expected, got)
		}
	}
}

func TestNew_ConsoleRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New("snl", Config{Level: "warn"}, &buf)

	logger.Info("hidden")
	logger.Warn("shown", zap.Int("cell", 4))
	logger.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected info entry to be filtered, got %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "WARN") || !strings.Contains(out, `"cell": 4`) {
		t.Errorf("Expected warn entry with fields, got %q", out)
	}
	if !strings.Contains(out, "snl") {
		t.Errorf("Expected logger name in output, got %q", out)
	}
}

func TestNew_FileOutputIsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snl.log")
	logger := New("snl", Config{Level: "debug", File: path}, nil)

	logger.Debug("bumping resident", zap.String("resident", "A"))
	logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	var entry map[string]interface{}
	line := strings.TrimSpace(strings.SplitN(string(data), "\n", 2)[0])
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("Expected JSON log line, got %q: %v", line, err)
	}
	if entry["msg"] != "bumping resident" || entry["resident"] != "A" || entry["level"] != "DEBUG" {
		t.Errorf("Unexpected entry %v", entry)
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Error("Expected a no-op logger for nil")
	}
	l := zap.NewExample()
	if OrNop(l) != l {
		t.Error("Expected the given logger to be returned")
	}
}

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
		wantErr   bool
	}{
		{"", false, true, false},
		{"debug", true, true, false},
		{"info", false, true, false},
		{"warn", false, false, false},
		{"error", false, false, false},
		{"loud", false, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(&buf, "test", tc.level)
			if tc.wantErr {
				if err == nil {
					t.Fatal("New() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}

			logger.Debug("debug line")
			logger.Info("info line")
			out := buf.String()
			if strings.Contains(out, "debug line") != tc.wantDebug {
				t.Errorf("debug output = %v, expected %v", strings.Contains(out, "debug line"), tc.wantDebug)
			}
			if strings.Contains(out, "info line") != tc.wantInfo {
				t.Errorf("info output = %v, expected %v", strings.Contains(out, "info line"), tc.wantInfo)
			}
		})
	}
}

func TestNewPrefix(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "arcade-ssh", "info")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	logger.Info("session started", "user", "alice")

	out := buf.String()
	for _, want := range []string{"arcade-ssh", "session started", "user=alice"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestOpenFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "arcade.log")

	for _, line := range []string{"first\n", "second\n"} {
		f, err := OpenFile(path)
		if err != nil {
			t.Fatalf("OpenFile() error: %v", err)
		}
		f.WriteString(line) //nolint:errcheck
		f.Close()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "first\nsecond\n" {
		t.Errorf("log file = %q", data)
	}
}

func TestDiscard(t *testing.T) {
	Discard().Error("dropped")
}

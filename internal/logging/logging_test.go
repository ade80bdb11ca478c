package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"nonsense", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn)
	l.SetOutput(&buf)

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown %d", 1)
	l.Error("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("filtered messages leaked: %q", out)
	}
	if !strings.Contains(out, "[WARN] shown 1") || !strings.Contains(out, "[ERROR] shown 2") {
		t.Errorf("missing messages: %q", out)
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	root := New(LevelDebug)
	root.SetOutput(&buf)

	child := root.With("scene")
	child.Info("stage %d", 3)

	if !strings.Contains(buf.String(), "[INFO] [scene] stage 3") {
		t.Errorf("component prefix missing: %q", buf.String())
	}

	// Children follow the parent's level.
	buf.Reset()
	root.SetLevel(LevelError)
	child.Info("quiet")
	if buf.Len() != 0 {
		t.Errorf("child ignored parent level: %q", buf.String())
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbix.log")
	l, closer, err := OpenFile(path, LevelInfo)
	if err != nil {
		t.Fatalf("OpenFile() error: %v", err)
	}
	l.Info("hello")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[INFO] hello") {
		t.Errorf("log file = %q", data)
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("nothing")
	l.With("x").Error("nothing")
}

package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "globe.log")
	l, err := New(path, false, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Named("arc").Infow("arc respawned", "respawns", 3)
	l.Debugw("hidden at info level")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "arc respawned") || !strings.Contains(out, `"respawns":3`) {
		t.Errorf("log missing entry: %s", out)
	}
	if !strings.Contains(out, `"logger":"arc"`) {
		t.Errorf("log missing logger name: %s", out)
	}
	if strings.Contains(out, "hidden at info level") {
		t.Error("debug entry written at info level")
	}
}

func TestNew_DebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	l, err := New(path, true, true)
	if err != nil {
		t.Fatal(err)
	}
	l.Debugw("frame", "n", 1)
	_ = l.Sync()

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "frame") {
		t.Errorf("debug entry missing: %s", data)
	}
}

func TestNew_BadPath(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "no", "such", "dir", "x.log"), false, false); err == nil {
		t.Error("expected error for unwritable path")
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Infow("dropped")
	if err := l.Sync(); err != nil {
		t.Errorf("Sync: %v", err)
	}
}

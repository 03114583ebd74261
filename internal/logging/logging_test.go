package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToConsoleAndFile(t *testing.T) {
	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "trails.log")

	logger, closer, err := New(Options{
		Level:    "debug",
		Prefix:   "trails",
		Console:  &console,
		FilePath: path,
	})
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("level started", "maze_level", 2)
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for name, out := range map[string]string{"console": console.String(), "file": string(data)} {
		if !strings.Contains(out, "level started") || !strings.Contains(out, "maze_level=2") {
			t.Errorf("%s output missing record: %q", name, out)
		}
		if !strings.Contains(out, "trails") {
			t.Errorf("%s output missing prefix: %q", name, out)
		}
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var console bytes.Buffer
	logger, _, err := New(Options{Level: "warn", Console: &console})
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(console.String(), "hidden") {
		t.Error("info record written at warn level")
	}
	if !strings.Contains(console.String(), "shown") {
		t.Error("warn record missing")
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, _, err := New(Options{Level: "loud"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNewWithoutSinks(t *testing.T) {
	logger, closer, err := New(Options{})
	if err != nil {
		t.Fatal(err)
	}
	logger.Error("dropped")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := expandHome("~/.trails/trails.log")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".trails", "trails.log"); got != want {
		t.Errorf("expandHome = %q, want %q", got, want)
	}
	if got, _ := expandHome("/tmp/x.log"); got != "/tmp/x.log" {
		t.Errorf("absolute path changed: %q", got)
	}
}

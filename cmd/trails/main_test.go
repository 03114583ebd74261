package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/trails/internal/storage"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	flagScoresClear = false
	flagScoresLimit = 10

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListShowsVariants(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"trails", "trails_fit", "Trails: Classic"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestScoresFlow(t *testing.T) {
	db := filepath.Join(t.TempDir(), "scores.db")

	out, err := execute(t, "scores", "--db", db)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "No runs recorded yet.") {
		t.Errorf("empty summary = %q", out)
	}

	store, err := storage.Open(db)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveRun(storage.RunResult{GameID: "trails", Player: "carol", Score: 55, Level: 3, Gems: 16}); err != nil {
		t.Fatal(err)
	}
	store.Close()

	out, err = execute(t, "scores", "trails", "--db", db)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "carol") || !strings.Contains(out, "Best: 55") {
		t.Errorf("top scores output:\n%s", out)
	}

	out, err = execute(t, "scores", "--db", db)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "trails") || !strings.Contains(out, "55") {
		t.Errorf("summary output:\n%s", out)
	}

	if _, err := execute(t, "scores", "trails", "--clear", "--db", db); err != nil {
		t.Fatal(err)
	}
	out, _ = execute(t, "scores", "trails", "--db", db)
	if !strings.Contains(out, "No runs recorded yet.") {
		t.Errorf("scores should be cleared:\n%s", out)
	}
}

func TestUnknownVariant(t *testing.T) {
	_, err := execute(t, "scores", "pacman", "--db", filepath.Join(t.TempDir(), "s.db"))
	if err == nil || !strings.Contains(err.Error(), "unknown variant") {
		t.Errorf("err = %v", err)
	}
}

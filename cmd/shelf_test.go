package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunReportsUnopenableLibrary(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	notDir := filepath.Join(t.TempDir(), "books")
	if err := os.WriteFile(notDir, []byte("not a directory"), 0o644); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	if code := run([]string{"--library", notDir, "history", "list"}); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}

func TestRunSucceeds(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if code := run([]string{"--library", filepath.Join(home, "books"), "history", "list"}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
}
